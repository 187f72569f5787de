package utils

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	ConfigureJWT("access-secret", "refresh-secret", time.Hour, 2*time.Hour)

	userID := primitive.NewObjectID()
	token, err := GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID.Hex())
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	ConfigureJWT("access-secret", "refresh-secret", time.Hour, 2*time.Hour)

	userID := primitive.NewObjectID()
	token, err := GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if claims.UserID != userID.Hex() {
		t.Errorf("UserID = %q, want %q", claims.UserID, userID.Hex())
	}
}

// The two token families use distinct secrets, so one must never validate as
// the other.
func TestTokenSecretsAreNotInterchangeable(t *testing.T) {
	ConfigureJWT("access-secret", "refresh-secret", time.Hour, 2*time.Hour)

	userID := primitive.NewObjectID()

	access, err := GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	refresh, err := GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	if _, err := ValidateRefreshToken(access); err == nil {
		t.Error("access token validated against refresh secret")
	}
	if _, err := ValidateAccessToken(refresh); err == nil {
		t.Error("refresh token validated against access secret")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	ConfigureJWT("access-secret", "refresh-secret", -time.Minute, 2*time.Hour)
	defer ConfigureJWT("access-secret", "refresh-secret", time.Hour, 2*time.Hour)

	token, err := GenerateAccessToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := ValidateAccessToken(token); err == nil {
		t.Error("expired token validated")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	ConfigureJWT("access-secret", "refresh-secret", time.Hour, 2*time.Hour)

	if _, err := ValidateAccessToken("not-a-token"); err == nil {
		t.Error("garbage token validated")
	}
}

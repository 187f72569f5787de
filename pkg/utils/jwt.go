package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	accessSecret  = []byte("your-secret-key")
	refreshSecret = []byte("your-refresh-secret-key")
	accessExpire  = 24 * time.Hour
	refreshExpire = 7 * 24 * time.Hour
)

// ConfigureJWT injects the secrets and expiries from config
func ConfigureJWT(secret, refresh string, expire, refreshExp time.Duration) {
	accessSecret = []byte(secret)
	refreshSecret = []byte(refresh)
	accessExpire = expire
	refreshExpire = refreshExp
}

type UserClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived token used on every API call.
func GenerateAccessToken(userID primitive.ObjectID) (string, error) {
	return generate(userID, accessSecret, accessExpire)
}

// GenerateRefreshToken signs the longer-lived token used only to mint new
// access tokens. It uses a secret distinct from the access secret so one
// cannot stand in for the other.
func GenerateRefreshToken(userID primitive.ObjectID) (string, error) {
	return generate(userID, refreshSecret, refreshExpire)
}

func generate(userID primitive.ObjectID, secret []byte, expire time.Duration) (string, error) {
	claims := UserClaims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateAccessToken verifies signature and expiry against the access secret.
func ValidateAccessToken(tokenString string) (*UserClaims, error) {
	return validate(tokenString, accessSecret)
}

// ValidateRefreshToken verifies signature and expiry against the refresh secret.
func ValidateRefreshToken(tokenString string) (*UserClaims, error) {
	return validate(tokenString, refreshSecret)
}

func validate(tokenString string, secret []byte) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenSignatureInvalid
}

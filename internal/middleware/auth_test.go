package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"kisanmitra/internal/common/models"
	"kisanmitra/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserFinder struct {
	users map[string]*models.User
}

func (f *fakeUserFinder) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func setupTestUser(t *testing.T, role models.UserRole) (*fakeUserFinder, *models.User, string) {
	t.Helper()
	utils.ConfigureJWT("test-access-secret", "test-refresh-secret", time.Hour, 2*time.Hour)

	usr := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ravi Kumar",
		Email: "ravi@example.com",
		Role:  role,
	}
	token, err := utils.GenerateAccessToken(usr.ID)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	finder := &fakeUserFinder{users: map[string]*models.User{usr.ID.Hex(): usr}}
	return finder, usr, token
}

func TestAuthenticate(t *testing.T) {
	finder, usr, token := setupTestUser(t, models.RoleFarmer)

	app := fiber.New()
	app.Get("/protected", Authenticate(finder), func(c *fiber.Ctx) error {
		current := CurrentUser(c)
		if current == nil || current.ID != usr.ID {
			t.Error("authenticated user not attached to request")
		}
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "Valid Token", authHeader: "Bearer " + token, wantStatus: 200},
		{name: "Missing Header", authHeader: "", wantStatus: 401},
		{name: "Not Bearer", authHeader: "Basic abc123", wantStatus: 401},
		{name: "Garbage Token", authHeader: "Bearer garbage", wantStatus: 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	utils.ConfigureJWT("test-access-secret", "test-refresh-secret", time.Hour, 2*time.Hour)

	// Token is valid but the user no longer exists.
	token, err := utils.GenerateAccessToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	app := fiber.New()
	finder := &fakeUserFinder{users: map[string]*models.User{}}
	app.Get("/protected", Authenticate(finder), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestOptionalAuth(t *testing.T) {
	finder, usr, token := setupTestUser(t, models.RoleFarmer)

	var attached *models.User
	app := fiber.New()
	app.Get("/public", OptionalAuth(finder), func(c *fiber.Ctx) error {
		attached = CurrentUser(c)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name       string
		authHeader string
		wantUser   bool
	}{
		{name: "No Token", authHeader: "", wantUser: false},
		{name: "Valid Token", authHeader: "Bearer " + token, wantUser: true},
		{name: "Garbage Token", authHeader: "Bearer garbage", wantUser: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attached = nil
			req := httptest.NewRequest("GET", "/public", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != 200 {
				t.Errorf("status = %d, want 200: OptionalAuth must never reject", resp.StatusCode)
			}
			if tt.wantUser && (attached == nil || attached.ID != usr.ID) {
				t.Error("expected user to be attached")
			}
			if !tt.wantUser && attached != nil {
				t.Error("expected no user to be attached")
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		role       models.UserRole
		allowed    []models.UserRole
		wantStatus int
	}{
		{name: "Admin Allowed", role: models.RoleAdmin, allowed: []models.UserRole{models.RoleAdmin}, wantStatus: 200},
		{name: "Farmer Forbidden", role: models.RoleFarmer, allowed: []models.UserRole{models.RoleAdmin}, wantStatus: 403},
		{name: "One Of Several", role: models.RoleBuyer, allowed: []models.UserRole{models.RoleFarmer, models.RoleBuyer}, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder, _, token := setupTestUser(t, tt.role)

			app := fiber.New()
			app.Get("/admin", Authenticate(finder), Authorize(tt.allowed...), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAuthorizeWithoutAuthenticate(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", Authorize(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

package middleware

import (
	"context"
	"strings"

	"kisanmitra/internal/common/models"
	"kisanmitra/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the Locals key the authenticated user is stored under.
const UserKey = "currentUser"

// UserFinder resolves token claims to a user document. Satisfied by the user
// repository; declared here to keep the middleware free of feature imports.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Authenticate requires a valid bearer access token and attaches the resolved
// user to the request. Missing/invalid token or unknown user -> 401.
func Authenticate(users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		claims, err := utils.ValidateAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		usr, err := users.FindByID(c.Context(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals(UserKey, usr)
		return c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present but never
// rejects; public read endpoints use it to personalize results.
func OptionalAuth(users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		claims, err := utils.ValidateAccessToken(token)
		if err != nil {
			return c.Next()
		}

		if usr, err := users.FindByID(c.Context(), claims.UserID); err == nil {
			c.Locals(UserKey, usr)
		}
		return c.Next()
	}
}

// Authorize rejects with 403 unless the attached user's role is allowed.
// Must run after Authenticate.
func Authorize(roles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usr := CurrentUser(c)
		if usr == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		for _, role := range roles {
			if usr.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: insufficient role",
		})
	}
}

// CurrentUser returns the user attached by Authenticate/OptionalAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	usr, _ := c.Locals(UserKey).(*models.User)
	return usr
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

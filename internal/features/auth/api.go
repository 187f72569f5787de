package auth

import (
	"kisanmitra/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	controller *AuthController
	users      middleware.UserFinder
}

func NewAuthApi(controller *AuthController, users middleware.UserFinder) *AuthApi {
	return &AuthApi{
		controller: controller,
		users:      users,
	}
}

// Setup registers all auth-related routes
func (h *AuthApi) Setup(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", h.controller.Register)
	auth.Post("/login", h.controller.Login)
	auth.Post("/refresh", h.controller.Refresh)

	auth.Post("/logout", middleware.Authenticate(h.users), h.controller.Logout)
	auth.Get("/profile", middleware.Authenticate(h.users), h.controller.Profile)
}

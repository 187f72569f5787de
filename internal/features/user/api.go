package user

import (
	"kisanmitra/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	controller *UserController
	users      middleware.UserFinder
}

func NewUserApi(controller *UserController, users middleware.UserFinder) *UserApi {
	return &UserApi{
		controller: controller,
		users:      users,
	}
}

// Setup registers all user-related routes
func (h *UserApi) Setup(app *fiber.App) {
	users := app.Group("/api/users", middleware.Authenticate(h.users))

	users.Get("/", h.controller.GetSettings)
	users.Put("/profile", h.controller.UpdateProfile)
	users.Put("/password", h.controller.ChangePassword)
	users.Delete("/account", h.controller.DeleteAccount)
}

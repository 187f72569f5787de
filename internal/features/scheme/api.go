package scheme

import (
	"kisanmitra/internal/common/models"
	"kisanmitra/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SchemeApi struct {
	controller *SchemeController
	users      middleware.UserFinder
}

func NewSchemeApi(controller *SchemeController, users middleware.UserFinder) *SchemeApi {
	return &SchemeApi{
		controller: controller,
		users:      users,
	}
}

// Setup registers all scheme routes. Writes are admin-only.
func (h *SchemeApi) Setup(app *fiber.App) {
	schemes := app.Group("/api/schemes")

	schemes.Get("/", h.controller.List)
	schemes.Get("/:id", h.controller.Get)

	admin := []fiber.Handler{
		middleware.Authenticate(h.users),
		middleware.Authorize(models.RoleAdmin),
	}
	schemes.Post("/", append(admin, h.controller.Create)...)
	schemes.Put("/:id", append(admin, h.controller.Update)...)
	schemes.Delete("/:id", append(admin, h.controller.Delete)...)
}

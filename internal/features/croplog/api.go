package croplog

import (
	"kisanmitra/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CropLogApi struct {
	controller *CropLogController
	users      middleware.UserFinder
}

func NewCropLogApi(controller *CropLogController, users middleware.UserFinder) *CropLogApi {
	return &CropLogApi{
		controller: controller,
		users:      users,
	}
}

// Setup registers all crop log routes. Every route requires authentication
// and is scoped to the caller's own logs.
func (h *CropLogApi) Setup(app *fiber.App) {
	crops := app.Group("/api/crops", middleware.Authenticate(h.users))

	crops.Post("/", h.controller.Create)
	crops.Get("/", h.controller.List)
	crops.Get("/statistics", h.controller.Statistics)
	crops.Get("/export", h.controller.Export)
	crops.Get("/:id", h.controller.Get)
	crops.Put("/:id", h.controller.Update)
	crops.Delete("/:id", h.controller.Delete)
	crops.Post("/:id/activities", h.controller.AddActivity)
}

package weatheralert

import (
	"kisanmitra/internal/common/models"
	"kisanmitra/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type AlertApi struct {
	controller *AlertController
	hub        *AlertHub
	users      middleware.UserFinder
}

func NewAlertApi(controller *AlertController, hub *AlertHub, users middleware.UserFinder) *AlertApi {
	return &AlertApi{
		controller: controller,
		hub:        hub,
		users:      users,
	}
}

// Setup registers the weather alert routes and the live alert feed.
func (h *AlertApi) Setup(app *fiber.App) {
	alerts := app.Group("/api/weather-alerts")

	alerts.Get("/", h.controller.List)
	alerts.Get("/my-alerts", middleware.Authenticate(h.users), h.controller.MyAlerts)
	alerts.Get("/:id", h.controller.Get)
	alerts.Post("/",
		middleware.Authenticate(h.users),
		middleware.Authorize(models.RoleAdmin),
		h.controller.Create,
	)

	app.Get("/api/ws/alerts", websocket.New(h.hub.HandleConnection))
}

package system

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	startedAt time.Time
}

func NewHealthApi() *HealthApi {
	return &HealthApi{startedAt: time.Now()}
}

// Setup registers the welcome and health routes
func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/", h.welcome)
	app.Get("/health", h.health)
}

func (h *HealthApi) welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to KisanMitra API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"auth":          "/api/auth",
			"users":         "/api/users",
			"crops":         "/api/crops",
			"marketplace":   "/api/marketplace",
			"community":     "/api/community",
			"schemes":       "/api/schemes",
			"weatherAlerts": "/api/weather-alerts",
		},
	})
}

// health godoc
// @Summary      Service health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthApi) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
	})
}

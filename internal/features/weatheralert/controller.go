package weatheralert

import (
	"time"

	"kisanmitra/internal/middleware"
	"kisanmitra/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AlertController struct {
	Service AlertService
}

func NewAlertController(service AlertService) *AlertController {
	return &AlertController{Service: service}
}

type CreateAlertRequest struct {
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	AlertType       AlertType     `json:"alertType"`
	Severity        Severity      `json:"severity"`
	Location        AlertLocation `json:"location"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
	Recommendations []string      `json:"recommendations,omitempty"`
	Source          string        `json:"source,omitempty"`
}

// List godoc
// @Summary      Browse active weather alerts
// @Tags         weather-alerts
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Param        alertType query string false "Filter by alert type"
// @Param        severity query string false "Filter by severity"
// @Param        state query string false "Filter by state"
// @Success      200  {object} utils.PaginationResult
// @Router       /api/weather-alerts [get]
func (ctrl *AlertController) List(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)

	alerts, total, err := ctrl.Service.List(c.Context(), ListFilter{
		AlertType: c.Query("alertType"),
		Severity:  c.Query("severity"),
		State:     c.Query("state"),
		District:  c.Query("district"),
	}, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(utils.NewPaginationResult(alerts, total, params.Page, params.Limit))
}

// MyAlerts returns current advisories for the caller's registered farm
// location.
func (ctrl *AlertController) MyAlerts(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)
	if usr.Location == nil || usr.Location.State == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "User location not set"})
	}

	alerts, err := ctrl.Service.ForLocation(c.Context(), usr.Location.State, usr.Location.District)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"alerts": alerts})
}

func (ctrl *AlertController) Get(c *fiber.Ctx) error {
	alert, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Weather alert not found"})
	}

	return c.JSON(fiber.Map{"alert": alert})
}

func (ctrl *AlertController) Create(c *fiber.Ctx) error {
	var req CreateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}
	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Description is required"})
	}
	if !ValidAlertType(req.AlertType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid alert type"})
	}
	if !ValidSeverity(req.Severity) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid severity"})
	}
	if req.Location.State == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Location state is required"})
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start and end dates are required"})
	}
	if !req.EndDate.After(req.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End date must be after start date"})
	}

	alert := &WeatherAlert{
		Title:           req.Title,
		Description:     req.Description,
		AlertType:       req.AlertType,
		Severity:        req.Severity,
		Location:        req.Location,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Recommendations: req.Recommendations,
		Source:          req.Source,
	}

	if err := ctrl.Service.Create(c.Context(), alert); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Weather alert published successfully",
		"alert":   alert,
	})
}

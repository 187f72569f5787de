package croplog

import (
	"bytes"
	"errors"
	"time"

	"kisanmitra/internal/middleware"
	"kisanmitra/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type CropLogController struct {
	Service CropLogService
}

func NewCropLogController(service CropLogService) *CropLogController {
	return &CropLogController{Service: service}
}

type CreateCropLogRequest struct {
	CropName            string     `json:"cropName"`
	Variety             string     `json:"variety,omitempty"`
	Area                float64    `json:"area"`
	Unit                string     `json:"unit,omitempty"`
	PlantingDate        time.Time  `json:"plantingDate"`
	ExpectedHarvestDate *time.Time `json:"expectedHarvestDate,omitempty"`
	Status              CropStatus `json:"status,omitempty"`
	Expenses            *Expenses  `json:"expenses,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	Images              []string   `json:"images,omitempty"`
}

type AddActivityRequest struct {
	Type        ActivityType `json:"type"`
	Description string       `json:"description,omitempty"`
	Date        time.Time    `json:"date,omitempty"`
	Cost        float64      `json:"cost,omitempty"`
}

// Create godoc
// @Summary      Create a crop log
// @Tags         crops
// @Accept       json
// @Produce      json
// @Param        input body CreateCropLogRequest true "Crop Log"
// @Success      201  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /api/crops [post]
func (ctrl *CropLogController) Create(c *fiber.Ctx) error {
	var req CreateCropLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.CropName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Crop name is required"})
	}
	if req.Area <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Area must be a number"})
	}
	if req.PlantingDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valid planting date is required"})
	}
	if req.Status != "" && !ValidStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	usr := middleware.CurrentUser(c)
	log := &CropLog{
		UserID:              usr.ID,
		CropName:            req.CropName,
		Variety:             req.Variety,
		Area:                req.Area,
		Unit:                req.Unit,
		PlantingDate:        req.PlantingDate,
		ExpectedHarvestDate: req.ExpectedHarvestDate,
		Status:              req.Status,
		Notes:               req.Notes,
		Images:              req.Images,
	}
	if req.Expenses != nil {
		log.Expenses = *req.Expenses
	}

	if err := ctrl.Service.Create(c.Context(), log); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Crop log created successfully",
		"cropLog": log,
	})
}

// List godoc
// @Summary      List the caller's crop logs
// @Tags         crops
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Param        status query string false "Filter by status"
// @Param        cropName query string false "Filter by crop name (substring)"
// @Success      200  {object} utils.PaginationResult
// @Router       /api/crops [get]
func (ctrl *CropLogController) List(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	usr := middleware.CurrentUser(c)

	logs, total, err := ctrl.Service.List(c.Context(), usr.ID, c.Query("status"), c.Query("cropName"), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(utils.NewPaginationResult(logs, total, params.Page, params.Limit))
}

func (ctrl *CropLogController) Get(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)

	log, err := ctrl.Service.Get(c.Context(), c.Params("id"), usr.ID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Crop log not found"})
	}

	return c.JSON(fiber.Map{"cropLog": log})
}

func (ctrl *CropLogController) Update(c *fiber.Ctx) error {
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Status != nil && !ValidStatus(*input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	usr := middleware.CurrentUser(c)
	log, err := ctrl.Service.Update(c.Context(), c.Params("id"), usr.ID, input)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Crop log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Crop log updated successfully",
		"cropLog": log,
	})
}

func (ctrl *CropLogController) Delete(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)

	if err := ctrl.Service.Delete(c.Context(), c.Params("id"), usr.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Crop log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Crop log deleted successfully"})
}

func (ctrl *CropLogController) AddActivity(c *fiber.Ctx) error {
	var req AddActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !ValidActivityType(req.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid activity type"})
	}

	usr := middleware.CurrentUser(c)
	log, err := ctrl.Service.AddActivity(c.Context(), c.Params("id"), usr.ID, Activity{
		Type:        req.Type,
		Description: req.Description,
		Date:        req.Date,
		Cost:        req.Cost,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Crop log not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Activity added successfully",
		"cropLog": log,
	})
}

func (ctrl *CropLogController) Statistics(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)

	stats, err := ctrl.Service.Statistics(c.Context(), usr.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"statistics": stats})
}

// Export streams the caller's crop logs as an xlsx workbook.
func (ctrl *CropLogController) Export(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)

	workbook, err := ctrl.Service.ExportWorkbook(c.Context(), usr.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="crop-logs.xlsx"`)
	return c.Send(buf.Bytes())
}

package scheme

import (
	"errors"
	"time"

	"kisanmitra/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type SchemeController struct {
	Service SchemeService
}

func NewSchemeController(service SchemeService) *SchemeController {
	return &SchemeController{Service: service}
}

type CreateSchemeRequest struct {
	Name               string         `json:"name"`
	NameHindi          string         `json:"nameHindi,omitempty"`
	Description        string         `json:"description"`
	DescriptionHindi   string         `json:"descriptionHindi,omitempty"`
	Category           SchemeCategory `json:"category"`
	Eligibility        []string       `json:"eligibility,omitempty"`
	Benefits           []string       `json:"benefits,omitempty"`
	ApplicationProcess []string       `json:"applicationProcess,omitempty"`
	Documents          []string       `json:"documents,omitempty"`
	OfficialWebsite    string         `json:"officialWebsite,omitempty"`
	ContactInfo        *ContactInfo   `json:"contactInfo,omitempty"`
	State              string         `json:"state,omitempty"`
	District           string         `json:"district,omitempty"`
	TargetAudience     []string       `json:"targetAudience,omitempty"`
	Budget             float64        `json:"budget,omitempty"`
	Deadline           *time.Time     `json:"deadline,omitempty"`
}

// List godoc
// @Summary      Browse government schemes
// @Tags         schemes
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Param        category query string false "Filter by category"
// @Param        state query string false "Filter by eligible state"
// @Param        search query string false "Full-text search"
// @Success      200  {object} utils.PaginationResult
// @Router       /api/schemes [get]
func (ctrl *SchemeController) List(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)

	schemes, total, err := ctrl.Service.List(c.Context(), ListFilter{
		Category: c.Query("category"),
		State:    c.Query("state"),
		District: c.Query("district"),
		Search:   c.Query("search"),
	}, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(utils.NewPaginationResult(schemes, total, params.Page, params.Limit))
}

func (ctrl *SchemeController) Get(c *fiber.Ctx) error {
	scheme, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Scheme not found"})
	}

	return c.JSON(fiber.Map{"scheme": scheme})
}

func (ctrl *SchemeController) Create(c *fiber.Ctx) error {
	var req CreateSchemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Description is required"})
	}
	if !ValidCategory(req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
	}

	scheme := &Scheme{
		Name:               req.Name,
		NameHindi:          req.NameHindi,
		Description:        req.Description,
		DescriptionHindi:   req.DescriptionHindi,
		Category:           req.Category,
		Eligibility:        req.Eligibility,
		Benefits:           req.Benefits,
		ApplicationProcess: req.ApplicationProcess,
		Documents:          req.Documents,
		OfficialWebsite:    req.OfficialWebsite,
		ContactInfo:        req.ContactInfo,
		State:              req.State,
		District:           req.District,
		TargetAudience:     req.TargetAudience,
		Budget:             req.Budget,
		Deadline:           req.Deadline,
	}

	if err := ctrl.Service.Create(c.Context(), scheme); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Scheme created successfully",
		"scheme":  scheme,
	})
}

func (ctrl *SchemeController) Update(c *fiber.Ctx) error {
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Category != nil && !ValidCategory(*input.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
	}

	scheme, err := ctrl.Service.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Scheme not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Scheme updated successfully",
		"scheme":  scheme,
	})
}

func (ctrl *SchemeController) Delete(c *fiber.Ctx) error {
	if err := ctrl.Service.Deactivate(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Scheme not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Scheme deactivated successfully"})
}

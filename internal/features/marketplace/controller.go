package marketplace

import (
	"errors"
	"time"

	"kisanmitra/internal/common/models"
	"kisanmitra/internal/middleware"
	"kisanmitra/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type ListingController struct {
	Service ListingService
}

func NewListingController(service ListingService) *ListingController {
	return &ListingController{Service: service}
}

type CreateListingRequest struct {
	ProductName    string          `json:"productName"`
	Category       ListingCategory `json:"category"`
	Description    string          `json:"description"`
	Quantity       float64         `json:"quantity"`
	Unit           string          `json:"unit"`
	PricePerUnit   float64         `json:"pricePerUnit"`
	Images         []string        `json:"images,omitempty"`
	Location       models.Location `json:"location"`
	Quality        string          `json:"quality,omitempty"`
	HarvestDate    *time.Time      `json:"harvestDate,omitempty"`
	AvailableFrom  *time.Time      `json:"availableFrom,omitempty"`
	AvailableUntil *time.Time      `json:"availableUntil,omitempty"`
}

// Create godoc
// @Summary      Create a marketplace listing
// @Tags         marketplace
// @Accept       json
// @Produce      json
// @Param        input body CreateListingRequest true "Listing"
// @Success      201  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /api/marketplace [post]
func (ctrl *ListingController) Create(c *fiber.Ctx) error {
	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Product name is required"})
	}
	if !ValidCategory(req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
	}
	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Description is required"})
	}
	if req.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity must be a non-negative number"})
	}
	if req.Unit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unit is required"})
	}
	if req.PricePerUnit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Price per unit must be a non-negative number"})
	}
	if req.Location.State == "" || req.Location.District == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Location state and district are required"})
	}

	usr := middleware.CurrentUser(c)
	listing := &Listing{
		SellerID:       usr.ID,
		ProductName:    req.ProductName,
		Category:       req.Category,
		Description:    req.Description,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		PricePerUnit:   req.PricePerUnit,
		Images:         req.Images,
		Location:       req.Location,
		Quality:        req.Quality,
		HarvestDate:    req.HarvestDate,
		AvailableUntil: req.AvailableUntil,
	}
	if req.AvailableFrom != nil {
		listing.AvailableFrom = *req.AvailableFrom
	}

	if err := ctrl.Service.Create(c.Context(), listing); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Listing created successfully",
		"listing": listing,
	})
}

// List godoc
// @Summary      Browse listings
// @Tags         marketplace
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Param        category query string false "Filter by category"
// @Param        status query string false "Filter by status (defaults to active)"
// @Param        search query string false "Full-text search"
// @Success      200  {object} utils.PaginationResult
// @Router       /api/marketplace [get]
func (ctrl *ListingController) List(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)

	listings, total, err := ctrl.Service.List(c.Context(), ListFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		State:    c.Query("state"),
		District: c.Query("district"),
	}, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(utils.NewPaginationResult(listings, total, params.Page, params.Limit))
}

func (ctrl *ListingController) MyListings(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	usr := middleware.CurrentUser(c)

	listings, total, err := ctrl.Service.ListBySeller(c.Context(), usr.ID, c.Query("status"), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(utils.NewPaginationResult(listings, total, params.Page, params.Limit))
}

func (ctrl *ListingController) Get(c *fiber.Ctx) error {
	listing, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
	}

	return c.JSON(fiber.Map{"listing": listing})
}

func (ctrl *ListingController) Update(c *fiber.Ctx) error {
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Category != nil && !ValidCategory(*input.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
	}
	if input.Status != nil && !ValidStatus(*input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	usr := middleware.CurrentUser(c)
	listing, err := ctrl.Service.Update(c.Context(), c.Params("id"), usr.ID, input)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found or unauthorized"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Listing updated successfully",
		"listing": listing,
	})
}

func (ctrl *ListingController) Delete(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)

	if err := ctrl.Service.Delete(c.Context(), c.Params("id"), usr.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found or unauthorized"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Listing deleted successfully"})
}

func (ctrl *ListingController) Inquire(c *fiber.Ctx) error {
	if err := ctrl.Service.Inquire(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Listing not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Inquiry recorded successfully"})
}

package marketplace

import (
	"kisanmitra/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ListingApi struct {
	controller *ListingController
	users      middleware.UserFinder
}

func NewListingApi(controller *ListingController, users middleware.UserFinder) *ListingApi {
	return &ListingApi{
		controller: controller,
		users:      users,
	}
}

// Setup registers all marketplace routes
func (h *ListingApi) Setup(app *fiber.App) {
	listings := app.Group("/api/marketplace")

	listings.Get("/", middleware.OptionalAuth(h.users), h.controller.List)
	listings.Get("/my-listings", middleware.Authenticate(h.users), h.controller.MyListings)
	listings.Get("/:id", middleware.OptionalAuth(h.users), h.controller.Get)
	listings.Post("/", middleware.Authenticate(h.users), h.controller.Create)
	listings.Put("/:id", middleware.Authenticate(h.users), h.controller.Update)
	listings.Delete("/:id", middleware.Authenticate(h.users), h.controller.Delete)
	listings.Post("/:id/inquire", middleware.Authenticate(h.users), h.controller.Inquire)
}

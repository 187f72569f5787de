package community

import (
	"kisanmitra/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PostApi struct {
	controller *PostController
	users      middleware.UserFinder
}

func NewPostApi(controller *PostController, users middleware.UserFinder) *PostApi {
	return &PostApi{
		controller: controller,
		users:      users,
	}
}

// Setup registers all community routes
func (h *PostApi) Setup(app *fiber.App) {
	posts := app.Group("/api/community")

	posts.Get("/", middleware.OptionalAuth(h.users), h.controller.List)
	posts.Get("/my-posts", middleware.Authenticate(h.users), h.controller.MyPosts)
	posts.Get("/:id", middleware.OptionalAuth(h.users), h.controller.Get)
	posts.Post("/", middleware.Authenticate(h.users), h.controller.Create)
	posts.Put("/:id", middleware.Authenticate(h.users), h.controller.Update)
	posts.Delete("/:id", middleware.Authenticate(h.users), h.controller.Delete)
	posts.Post("/:id/like", middleware.Authenticate(h.users), h.controller.ToggleLike)
	posts.Post("/:id/comments", middleware.Authenticate(h.users), h.controller.AddComment)
}

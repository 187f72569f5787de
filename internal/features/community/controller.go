package community

import (
	"errors"
	"strings"

	"kisanmitra/internal/middleware"
	"kisanmitra/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

type PostController struct {
	Service PostService
}

func NewPostController(service PostService) *PostController {
	return &PostController{Service: service}
}

type CreatePostRequest struct {
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Category PostCategory `json:"category"`
	Tags     []string     `json:"tags,omitempty"`
	Images   []string     `json:"images,omitempty"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

// Create godoc
// @Summary      Create a community post
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        input body CreatePostRequest true "Post"
// @Success      201  {object} map[string]interface{}
// @Failure      400  {object} map[string]string
// @Router       /api/community [post]
func (ctrl *PostController) Create(c *fiber.Ctx) error {
	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if strings.TrimSpace(req.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title is required"})
	}
	if len(req.Title) > 200 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Title must be at most 200 characters"})
	}
	if strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Content is required"})
	}
	if !ValidCategory(req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
	}

	usr := middleware.CurrentUser(c)
	post := &Post{
		UserID:   usr.ID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
		Images:   req.Images,
	}

	if err := ctrl.Service.Create(c.Context(), post); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// List godoc
// @Summary      Browse the community feed
// @Tags         community
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Items per page" default(10)
// @Param        category query string false "Filter by category"
// @Param        tag query string false "Filter by tag"
// @Param        search query string false "Full-text search"
// @Success      200  {object} utils.PaginationResult
// @Router       /api/community [get]
func (ctrl *PostController) List(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)

	posts, total, err := ctrl.Service.List(c.Context(), ListFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
	}, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(utils.NewPaginationResult(posts, total, params.Page, params.Limit))
}

func (ctrl *PostController) MyPosts(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	usr := middleware.CurrentUser(c)

	posts, total, err := ctrl.Service.ListByAuthor(c.Context(), usr.ID, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(utils.NewPaginationResult(posts, total, params.Page, params.Limit))
}

func (ctrl *PostController) Get(c *fiber.Ctx) error {
	post, err := ctrl.Service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}

	return c.JSON(fiber.Map{"post": post})
}

func (ctrl *PostController) Update(c *fiber.Ctx) error {
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Category != nil && !ValidCategory(*input.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category"})
	}
	if input.Status != nil && *input.Status != StatusActive && *input.Status != StatusClosed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	usr := middleware.CurrentUser(c)
	post, err := ctrl.Service.Update(c.Context(), c.Params("id"), usr.ID, input)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found or unauthorized"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

func (ctrl *PostController) Delete(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)

	if err := ctrl.Service.Delete(c.Context(), c.Params("id"), usr.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found or unauthorized"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

func (ctrl *PostController) ToggleLike(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)

	liked, count, err := ctrl.Service.ToggleLike(c.Context(), c.Params("id"), usr.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}

	return c.JSON(fiber.Map{
		"message": message,
		"likes":   count,
	})
}

func (ctrl *PostController) AddComment(c *fiber.Ctx) error {
	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Comment content is required"})
	}

	usr := middleware.CurrentUser(c)
	comment, err := ctrl.Service.AddComment(c.Context(), c.Params("id"), usr.ID, strings.TrimSpace(req.Content))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

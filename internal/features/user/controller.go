package user

import (
	"errors"
	"strings"

	"kisanmitra/internal/common/models"
	"kisanmitra/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{UserService: userService}
}

type UpdateProfileRequest struct {
	Name        string              `json:"name,omitempty"`
	Phone       *string             `json:"phone,omitempty"`
	Avatar      string              `json:"avatar,omitempty"`
	Location    *models.Location    `json:"location,omitempty"`
	FarmDetails *models.FarmDetails `json:"farmDetails,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// GetSettings godoc
// @Summary      Get the caller's account settings
// @Tags         users
// @Produce      json
// @Success      200  {object} map[string]interface{}
// @Router       /api/users [get]
func (ctrl *UserController) GetSettings(c *fiber.Ctx) error {
	usr := middleware.CurrentUser(c)

	return c.JSON(fiber.Map{
		"settings": fiber.Map{
			"name":        usr.Name,
			"email":       usr.Email,
			"phone":       usr.Phone,
			"role":        usr.Role,
			"avatar":      usr.Avatar,
			"location":    usr.Location,
			"farmDetails": usr.FarmDetails,
			"verified":    usr.Verified,
		},
	})
}

func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)

	usr := middleware.CurrentUser(c)
	updated, err := ctrl.UserService.UpdateProfile(c.Context(), usr.ID.Hex(), UpdateProfileInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		Location:    req.Location,
		FarmDetails: req.FarmDetails,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

func (ctrl *UserController) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Current and new password are required"})
	}
	if len(req.NewPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "New password must be at least 6 characters"})
	}

	usr := middleware.CurrentUser(c)
	if err := ctrl.UserService.ChangePassword(c.Context(), usr.ID.Hex(), req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Current password is incorrect"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

func (ctrl *UserController) DeleteAccount(c *fiber.Ctx) error {
	var req DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password is required to delete account"})
	}

	usr := middleware.CurrentUser(c)
	if err := ctrl.UserService.DeleteAccount(c.Context(), usr.ID.Hex(), req.Password); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Password is incorrect"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Account deleted successfully"})
}

package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// Create handles POST /users/ (public sign-up).
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	user, err := h.authService.Register(req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Me handles GET /users/me. The record was already loaded by the
// CurrentUser middleware, so no extra query happens here.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := middleware.UserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(user)
}

// UpdateMe handles PUT /users/me with partial-update semantics.
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	user, err := middleware.UserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	updated, err := h.userService.UpdateSelf(user, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update user",
		})
	}

	return c.JSON(updated)
}

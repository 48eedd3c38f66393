package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// List handles GET /listings/ (public browse).
func (h *ListingHandler) List(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 100
	}

	listings, err := h.listingService.List(skip, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list listings",
		})
	}

	return c.JSON(listings)
}

// ListMine handles GET /listings/me.
func (h *ListingHandler) ListMine(c *fiber.Ctx) error {
	user, err := middleware.UserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 100
	}

	listings, err := h.listingService.ListOwned(user.ID, skip, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list listings",
		})
	}

	return c.JSON(listings)
}

// Create handles POST /listings/.
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	user, err := middleware.UserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ListingCreateRequest
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

	listing, err := h.listingService.Create(user, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create listing",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(listing)
}

// Update handles PUT /listings/:id (owner only, partial update).
func (h *ListingHandler) Update(c *fiber.Ctx) error {
	user, err := middleware.UserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid listing ID",
		})
	}

	var req dto.ListingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	listing, err := h.listingService.Update(user, uint(id), &req)
	if err != nil {
		return listingError(c, err)
	}

	return c.JSON(listing)
}

// Delete handles DELETE /listings/:id (owner only). The deleted record's
// last state is returned to the caller.
func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	user, err := middleware.UserFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid listing ID",
		})
	}

	listing, err := h.listingService.Delete(user, uint(id))
	if err != nil {
		return listingError(c, err)
	}

	return c.JSON(listing)
}

func listingError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrListingNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Listing not found",
		})
	}
	if errors.Is(err, services.ErrNotOwner) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not enough permissions",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

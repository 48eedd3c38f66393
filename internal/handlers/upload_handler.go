package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /upload/: multipart "files" parts in, URL list out.
// The batch is all-or-nothing; the first rejected file fails the call.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid multipart form",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No files provided",
		})
	}

	urls, err := h.uploadService.SaveAll(files)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrFileTooLarge) {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("file upload failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to upload file",
		})
	}

	return c.JSON(urls)
}

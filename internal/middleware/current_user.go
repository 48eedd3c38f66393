package middleware

import (
	"errors"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const currentUserKey = "current_user"

// CurrentUser resolves the authenticated user behind a validated JWT. It
// runs after JWTProtected: the token signature is already checked, so the
// remaining failures are a missing subject, a deleted user, or an
// inactive account.
func CurrentUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := subjectFromToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Could not validate credentials",
			})
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}

		if !user.IsActive {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Inactive user",
			})
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// UserFromCtx returns the user stored by CurrentUser.
func UserFromCtx(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(currentUserKey).(*models.User)
	if !ok || user == nil {
		return nil, errors.New("no authenticated user in context")
	}
	return user, nil
}

func subjectFromToken(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("missing sub claim")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

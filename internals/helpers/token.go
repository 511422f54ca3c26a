package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads the user id the auth middleware stored in Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}
	return id, nil
}

func GetUserEmailFromToken(c *fiber.Ctx) string {
	email, _ := c.Locals("user_email").(string)
	return email
}

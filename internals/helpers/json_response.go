// file: internals/helpers/json_response.go
package helper

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error responses
=================================*/

// JsonError writes the flat {"message": ...} error body the mobile client
// expects on every non-2xx response.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// JsonServerError logs the underlying cause and returns a generic 500.
// Callers never see storage errors.
func JsonServerError(c *fiber.Ctx, scope string, err error) error {
	log.Printf("[ERROR] %s: %v", scope, err)
	return JsonError(c, fiber.StatusInternalServerError, "Server error")
}

/* ===============================
   Success responses
=================================*/

// JsonOK: generic 200 with an arbitrary body.
func JsonOK(c *fiber.Ctx, body fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(body)
}

// JsonCreated: 201 with an arbitrary body.
func JsonCreated(c *fiber.Ctx, body fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(body)
}

// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoute "bookswap_backend/internals/features/books/book/route"
	requestRoute "bookswap_backend/internals/features/books/request/route"
	authRoute "bookswap_backend/internals/features/users/auth/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Request routes go first: /api/books/requests/* must win over the
	// catalog's /:id wildcards.
	log.Println("[INFO] Setting up RequestRoutes...")
	requestRoute.RequestRoutes(app, db)

	log.Println("[INFO] Setting up BookRoutes...")
	bookRoute.BookRoutes(app, db)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
}

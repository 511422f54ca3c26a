// internals/features/books/request/route/request_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookswap_backend/internals/features/books/request/controller"
	authMiddleware "bookswap_backend/internals/middlewares/auth"
)

// RequestRoutes mounts the exchange-request endpoints. Everything here is
// bearer-protected. Mount BEFORE the book routes so /api/books/requests/*
// wins over the catalog's /:id wildcards.
func RequestRoutes(app *fiber.App, db *gorm.DB) {
	requestController := &controller.RequestController{DB: db}

	auth := authMiddleware.AuthMiddleware()

	requests := app.Group("/api/books/requests")
	requests.Get("/sent", auth, requestController.Sent)
	requests.Get("/received", auth, requestController.Received)
	requests.Patch("/:id/accept", auth, requestController.Accept)
	requests.Patch("/:id/reject", auth, requestController.Reject)

	// Creating a request lives under the book it targets.
	app.Post("/api/books/:id/request", auth, requestController.Create)
}

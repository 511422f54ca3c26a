// internals/features/books/book/route/book_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookswap_backend/internals/features/books/book/controller"
	authMiddleware "bookswap_backend/internals/middlewares/auth"
)

// BookRoutes mounts the catalog. Mount AFTER the request routes so
// /api/books/requests/* is matched before the /:id wildcards here.
func BookRoutes(app *fiber.App, db *gorm.DB) {
	bookController := &controller.BookController{DB: db}

	books := app.Group("/api/books")

	// 🔓 Public: covers are fetched without a token.
	books.Get("/:id/image", bookController.GetImage)

	// 🔒 Bearer-protected
	auth := authMiddleware.AuthMiddleware()
	books.Post("/", auth, bookController.Create)
	books.Get("/available", auth, bookController.ListAvailable)
	books.Get("/", auth, bookController.ListMine)
	books.Put("/:id", auth, bookController.Update)
	books.Delete("/:id", auth, bookController.Delete)
}

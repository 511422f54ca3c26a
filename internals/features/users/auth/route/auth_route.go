// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bookswap_backend/internals/features/users/auth/controller"
	rateLimiter "bookswap_backend/internals/middlewares"
	authMiddleware "bookswap_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)

	// 🔒 Bearer-protected
	baseAuth.Post("/logout", authMiddleware.AuthMiddleware(), authController.Logout)
	baseAuth.Get("/me", authMiddleware.AuthMiddleware(), authController.Me)
}

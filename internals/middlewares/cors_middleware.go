package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"bookswap_backend/internals/configs"
)

// CorsMiddleware builds the CORS middleware. The mobile client runs from
// arbitrary origins, so the default is wide open; override with
// CORS_ALLOW_ORIGINS when a web build gets a fixed host.
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ALLOW_ORIGINS", "*")
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
	})
}

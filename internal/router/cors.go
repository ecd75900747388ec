package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware configures CORS for the given origin (defaults to *).
func CorsMiddleware(origin string) fiber.Handler {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		origin = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: false,
	})
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows the configured origins plus the headers htmx sends.
func CORS(origins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,HX-Request,HX-Target,HX-Trigger,HX-Current-URL",
		MaxAge:       300, // 5 minutes preflight cache
	})
}

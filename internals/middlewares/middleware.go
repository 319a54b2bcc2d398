package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares memasang middleware global (urutan penting:
// recovery dulu, baru CORS & limiter).
func SetupMiddlewares(app *fiber.App) {
	log.Println("[INFO] Setup global middlewares...")
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}

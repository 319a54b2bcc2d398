// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/route/details"
)

// SetupRoutes: susunan route aplikasi.
//   - /api/public : tanpa JWT (webhook gateway)
//   - /api        : JWT + branch scope, semua fitur school & finance
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	secret := configs.GetEnv("JWT_SECRET")

	api := app.Group("/api")

	// publik — notifikasi gateway pembayaran
	public := api.Group("/public")
	details.PublicRoutes(public, db)

	// terproteksi
	details.SchoolRoutes(api, db, secret)
	details.FinanceRoutes(api, db, secret)
}

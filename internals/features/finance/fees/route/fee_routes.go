package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feectl "schoolku_backend/internals/features/finance/fees/controller"
	"schoolku_backend/internals/middlewares"
)

// Routes tagihan siswa. Collect diberi rate limiter khusus — endpoint
// ini yang paling rawan dipanggil dobel.
func FeeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feectl.NewFeeHandler(db)

	{
		r.Get("/fees", ctl.List)
		r.Get("/fees/:id", ctl.GetByID)
		r.Post("/fees", ctl.Assign) // bulk-assign fee type ke banyak siswa
		r.Post("/fees/:id/collect", middlewares.CollectRateLimiter(), ctl.Collect)
		r.Patch("/fees/:id", ctl.Adjust)
		r.Delete("/fees/:id", ctl.Delete)
	}
}

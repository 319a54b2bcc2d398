package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feetypectl "schoolku_backend/internals/features/finance/fee_types/controller"
)

// Admin routes (katalog fee type).
func FeeTypeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := feetypectl.NewFeeTypeHandler(db)

	{
		admin.Get("/fee-types", ctl.List)
		admin.Get("/fee-types/:id", ctl.GetByID)
		admin.Post("/fee-types", ctl.Create)
		admin.Put("/fee-types/:id", ctl.Update)
		admin.Patch("/fee-types/:id", ctl.Update)
		admin.Delete("/fee-types/:id", ctl.Delete)
	}
}

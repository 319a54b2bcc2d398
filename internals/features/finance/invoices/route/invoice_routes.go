package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoicectl "schoolku_backend/internals/features/finance/invoices/controller"
)

func InvoiceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := invoicectl.NewInvoiceHandler(db)

	{
		r.Get("/invoices/student/:id", ctl.StudentInvoice)
	}
}

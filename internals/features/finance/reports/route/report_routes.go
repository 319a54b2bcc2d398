package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportctl "schoolku_backend/internals/features/finance/reports/controller"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportctl.NewReportHandler(db)

	{
		r.Get("/reports", ctl.Run) // ?report_type=collection_summary|outstanding_fees|fee_type_analysis
		r.Get("/reports/collections", ctl.Collections)
		r.Get("/reports/outstanding", ctl.Outstanding)
		r.Get("/reports/fee-types", ctl.FeeTypes)
	}
}

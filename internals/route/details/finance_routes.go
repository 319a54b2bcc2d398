// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feetyperoute "schoolku_backend/internals/features/finance/fee_types/route"
	feeroute "schoolku_backend/internals/features/finance/fees/route"
	invoiceroute "schoolku_backend/internals/features/finance/invoices/route"
	paymentroute "schoolku_backend/internals/features/finance/payments/route"
	reportroute "schoolku_backend/internals/features/finance/reports/route"
	authmw "schoolku_backend/internals/middlewares/auth"
	featuremw "schoolku_backend/internals/middlewares/features"
)

// FinanceRoutes: tagihan, pembayaran, invoice, laporan.
func FinanceRoutes(api fiber.Router, db *gorm.DB, jwtSecret string) {
	// katalog fee type hidup di /api/fee-types, bukan di bawah /finance
	catalog := api.Group("",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: jwtSecret, AllowCookieFallback: true}),
		featuremw.UseBranchScope(),
	)
	feetyperoute.FeeTypeAdminRoutes(catalog, db)

	finance := api.Group("/finance",
		authmw.AuthJWT(authmw.AuthJWTOpts{Secret: jwtSecret, AllowCookieFallback: true}),
		featuremw.UseBranchScope(),
	)

	feeroute.FeeRoutes(finance, db)
	invoiceroute.InvoiceRoutes(finance, db)

	// kasir & laporan — teacher/student tidak punya urusan di sini
	staff := finance.Group("", featuremw.IsBranchStaff())
	paymentroute.PaymentRoutes(staff, db)
	reportroute.ReportRoutes(staff, db)
}

// PublicRoutes: endpoint tanpa JWT.
func PublicRoutes(public fiber.Router, db *gorm.DB) {
	paymentroute.PaymentPublicRoutes(public, db)
}

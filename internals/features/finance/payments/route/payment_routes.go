package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentctl "schoolku_backend/internals/features/finance/payments/controller"
)

// Routes riwayat pembayaran & checkout online.
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentctl.NewPaymentHandler(db)

	{
		r.Get("/payments", ctl.List)
		r.Post("/payments/checkout", ctl.Checkout)
	}
}

// Public routes — endpoint notifikasi gateway, tanpa JWT.
func PaymentPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := paymentctl.NewPaymentHandler(db)

	{
		public.Post("/payments/notification", ctl.GatewayNotification)
	}
}

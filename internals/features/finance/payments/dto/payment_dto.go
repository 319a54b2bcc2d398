// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"github.com/google/uuid"
)

type OnlineCheckoutDTO struct {
	FeeID  uuid.UUID `json:"fee_id" validate:"required"`
	Amount int64     `json:"amount" validate:"required,gt=0"`
}

type OnlineCheckoutResponse struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}

// payload notifikasi midtrans — hanya field yang dipakai
type GatewayNotificationDTO struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
}

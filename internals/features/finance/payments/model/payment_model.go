// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodUPI          PaymentMethod = "upi"
	MethodCheque       PaymentMethod = "cheque"
	MethodOnline       PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// ValidMethod: whitelist metode pembayaran.
func ValidMethod(m string) bool {
	switch PaymentMethod(m) {
	case MethodCash, MethodCard, MethodBankTransfer, MethodUPI, MethodCheque, MethodOnline:
		return true
	}
	return false
}

// Payment: satu transaksi pembayaran terhadap satu fee. Append-only —
// koreksi lewat refund, bukan edit.
type Payment struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`
	PaymentBranchID  uuid.UUID `gorm:"column:payment_branch_id;type:uuid;not null;index:ix_payment_branch" json:"payment_branch_id"`
	PaymentFeeID     uuid.UUID `gorm:"column:payment_fee_id;type:uuid;not null;index:ix_payment_fee" json:"payment_fee_id"`
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index:ix_payment_student" json:"payment_student_id"`

	PaymentAmount    int64         `gorm:"column:payment_amount;not null;check:payment_amount > 0" json:"payment_amount"`
	PaymentMethod    PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null" json:"payment_method"`
	PaymentStatus    PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index:ix_payment_status" json:"payment_status"`
	PaymentReceiptNo string        `gorm:"column:payment_receipt_no;type:varchar(40);not null;uniqueIndex:uniq_payment_receipt" json:"payment_receipt_no"`

	// referensi bebas (no cek, no transfer, dsb) + catatan kasir
	PaymentReference *string `gorm:"column:payment_reference;type:varchar(100)" json:"payment_reference,omitempty"`
	PaymentNote      *string `gorm:"column:payment_note;type:varchar(255)" json:"payment_note,omitempty"`

	// kasir / operator yang menerima
	PaymentCollectorID *uuid.UUID `gorm:"column:payment_collector_id;type:uuid" json:"payment_collector_id,omitempty"`

	// integrasi gateway (metode online)
	PaymentGatewayOrderID *string `gorm:"column:payment_gateway_order_id;type:varchar(64);index" json:"payment_gateway_order_id,omitempty"`
	PaymentGatewayToken   *string `gorm:"column:payment_gateway_token;type:varchar(255)" json:"payment_gateway_token,omitempty"`

	PaymentMeta datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	PaymentPaidAt    *time.Time     `gorm:"column:payment_paid_at;index" json:"payment_paid_at,omitempty"`
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;not null;default:now();index:ix_payment_created_at" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;not null;default:now()" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (Payment) TableName() string { return "payments" }

func (m *Payment) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentStatusPending
	}
	return nil
}

func (m *Payment) BeforeUpdate(tx *gorm.DB) error {
	m.PaymentUpdatedAt = time.Now()
	return nil
}

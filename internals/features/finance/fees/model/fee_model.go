// file: internals/features/finance/fees/model/fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPartial FeeStatus = "partial"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

// Fee: tagihan satu siswa untuk satu fee type. Amount/fine/discount/paid
// semuanya int64 satuan terkecil — tidak ada float di jalur uang.
// Amount adalah snapshot dari fee type saat alokasi.
type Fee struct {
	FeeID        uuid.UUID `gorm:"column:fee_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_id"`
	FeeBranchID  uuid.UUID `gorm:"column:fee_branch_id;type:uuid;not null;index:ix_fee_branch" json:"fee_branch_id"`
	FeeStudentID uuid.UUID `gorm:"column:fee_student_id;type:uuid;not null;index:ix_fee_student;uniqueIndex:uniq_fee_alloc,priority:1" json:"fee_student_id"`
	FeeFeeTypeID uuid.UUID `gorm:"column:fee_fee_type_id;type:uuid;not null;index:ix_fee_fee_type;uniqueIndex:uniq_fee_alloc,priority:2" json:"fee_fee_type_id"`

	// tahun ajaran + term — bagian dari kunci alokasi supaya fee berulang
	// bisa dialokasikan per periode tanpa duplikat.
	FeeAcademicYear string `gorm:"column:fee_academic_year;type:varchar(9);not null;default:'';uniqueIndex:uniq_fee_alloc,priority:3" json:"fee_academic_year"`
	FeeTerm         string `gorm:"column:fee_term;type:varchar(20);not null;default:'';uniqueIndex:uniq_fee_alloc,priority:4" json:"fee_term"`

	FeeAmount     int64 `gorm:"column:fee_amount;not null;check:fee_amount >= 0" json:"fee_amount"`
	FeeFine       int64 `gorm:"column:fee_fine;not null;default:0;check:fee_fine >= 0" json:"fee_fine"`
	FeeDiscount   int64 `gorm:"column:fee_discount;not null;default:0;check:fee_discount >= 0" json:"fee_discount"`
	FeePaidAmount int64 `gorm:"column:fee_paid_amount;not null;default:0;check:fee_paid_amount >= 0" json:"fee_paid_amount"`

	FeeStatus  FeeStatus  `gorm:"column:fee_status;type:varchar(20);not null;default:'pending';index:ix_fee_status" json:"fee_status"`
	FeeDueDate *time.Time `gorm:"column:fee_due_date;index:ix_fee_due_date" json:"fee_due_date,omitempty"`

	FeeNote *string `gorm:"column:fee_note;type:varchar(255)" json:"fee_note,omitempty"`

	FeeCreatedBy *uuid.UUID `gorm:"column:fee_created_by;type:uuid" json:"fee_created_by,omitempty"`

	FeeCreatedAt time.Time      `gorm:"column:fee_created_at;not null;default:now();index:ix_fee_created_at" json:"fee_created_at"`
	FeeUpdatedAt time.Time      `gorm:"column:fee_updated_at;not null;default:now()" json:"fee_updated_at"`
	FeeDeletedAt gorm.DeletedAt `gorm:"column:fee_deleted_at;index" json:"-"`
}

func (Fee) TableName() string { return "fees" }

func (m *Fee) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeCreatedAt.IsZero() {
		m.FeeCreatedAt = now
	}
	m.FeeUpdatedAt = now
	if m.FeeStatus == "" {
		m.FeeStatus = FeeStatusPending
	}
	return nil
}

func (m *Fee) BeforeUpdate(tx *gorm.DB) error {
	m.FeeUpdatedAt = time.Now()
	return nil
}

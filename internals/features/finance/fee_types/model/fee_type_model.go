// file: internals/features/finance/fee_types/model/fee_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeFrequency string

const (
	FrequencyOneTime    FeeFrequency = "one_time"
	FrequencyMonthly    FeeFrequency = "monthly"
	FrequencyQuarterly  FeeFrequency = "quarterly"
	FrequencySemiAnnual FeeFrequency = "semi_annual"
	FrequencyAnnual     FeeFrequency = "annual"
)

type FeeApplicability string

const (
	ApplicableAll     FeeApplicability = "all"
	ApplicableClass   FeeApplicability = "class"
	ApplicableStudent FeeApplicability = "student"
)

// FeeType: katalog jenis biaya per branch (SPP, ujian, seragam, dst).
// Amount default dalam satuan terkecil (mis. rupiah penuh, tanpa desimal).
type FeeType struct {
	FeeTypeID       uuid.UUID `gorm:"column:fee_type_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_type_id"`
	FeeTypeBranchID uuid.UUID `gorm:"column:fee_type_branch_id;type:uuid;not null;index:ix_fee_type_branch;uniqueIndex:uniq_fee_type_branch_name,priority:1" json:"fee_type_branch_id"`

	FeeTypeName        string       `gorm:"column:fee_type_name;type:varchar(100);not null;uniqueIndex:uniq_fee_type_branch_name,priority:2" json:"fee_type_name"`
	FeeTypeDescription *string      `gorm:"column:fee_type_description;type:varchar(255)" json:"fee_type_description,omitempty"`
	FeeTypeAmount      int64        `gorm:"column:fee_type_amount;not null;check:fee_type_amount >= 0" json:"fee_type_amount"`
	FeeTypeFrequency   FeeFrequency `gorm:"column:fee_type_frequency;type:varchar(20);not null;default:'one_time'" json:"fee_type_frequency"`

	// sasaran alokasi: semua siswa, satu class, atau siswa pilihan
	FeeTypeApplicableTo FeeApplicability `gorm:"column:fee_type_applicable_to;type:varchar(10);not null;default:'all'" json:"fee_type_applicable_to"`
	FeeTypeClassID      *uuid.UUID       `gorm:"column:fee_type_class_id;type:uuid;index" json:"fee_type_class_id,omitempty"`

	FeeTypeIsActive bool `gorm:"column:fee_type_is_active;not null;default:true;index" json:"fee_type_is_active"`

	FeeTypeCreatedAt time.Time      `gorm:"column:fee_type_created_at;not null;default:now();index" json:"fee_type_created_at"`
	FeeTypeUpdatedAt time.Time      `gorm:"column:fee_type_updated_at;not null;default:now()" json:"fee_type_updated_at"`
	FeeTypeDeletedAt gorm.DeletedAt `gorm:"column:fee_type_deleted_at;index" json:"-"`
}

func (FeeType) TableName() string { return "fee_types" }

func (m *FeeType) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeTypeCreatedAt.IsZero() {
		m.FeeTypeCreatedAt = now
	}
	m.FeeTypeUpdatedAt = now
	return nil
}

func (m *FeeType) BeforeUpdate(tx *gorm.DB) error {
	m.FeeTypeUpdatedAt = time.Now()
	return nil
}

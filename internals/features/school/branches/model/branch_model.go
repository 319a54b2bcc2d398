// file: internals/features/school/branches/model/branch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Branch: tenant/lokasi sekolah — scoping boundary hampir semua data.
type Branch struct {
	// PK
	BranchID uuid.UUID `gorm:"column:branch_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"branch_id"`

	BranchName string `gorm:"column:branch_name;type:varchar(120);not null" json:"branch_name"`
	BranchCode string `gorm:"column:branch_code;type:varchar(20);not null;uniqueIndex:uniq_branch_code" json:"branch_code"`

	BranchAddress *string `gorm:"column:branch_address" json:"branch_address,omitempty"`
	BranchPhone   *string `gorm:"column:branch_phone;type:varchar(30)" json:"branch_phone,omitempty"`
	BranchEmail   *string `gorm:"column:branch_email;type:varchar(120)" json:"branch_email,omitempty"`

	BranchIsActive bool `gorm:"column:branch_is_active;not null;default:true;index:ix_branch_active" json:"branch_is_active"`

	// Timestamps (eksplisit)
	BranchCreatedAt time.Time      `gorm:"column:branch_created_at;not null;default:now()" json:"branch_created_at"`
	BranchUpdatedAt time.Time      `gorm:"column:branch_updated_at;not null;default:now()" json:"branch_updated_at"`
	BranchDeletedAt gorm.DeletedAt `gorm:"column:branch_deleted_at;index" json:"-"`
}

func (Branch) TableName() string { return "branches" }

func (m *Branch) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.BranchCreatedAt.IsZero() {
		m.BranchCreatedAt = now
	}
	m.BranchUpdatedAt = now
	return nil
}

func (m *Branch) BeforeUpdate(tx *gorm.DB) error {
	m.BranchUpdatedAt = time.Now()
	return nil
}

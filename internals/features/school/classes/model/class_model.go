// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class: tingkat/kelas (mis. "Grade 7") pada satu branch.
type Class struct {
	ClassID       uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	ClassBranchID uuid.UUID `gorm:"column:class_branch_id;type:uuid;not null;index:ix_class_branch;uniqueIndex:uniq_class_branch_name,priority:1" json:"class_branch_id"`

	// Unique (branch_id + name)
	ClassName  string `gorm:"column:class_name;type:varchar(60);not null;uniqueIndex:uniq_class_branch_name,priority:2" json:"class_name"`
	ClassLevel *int   `gorm:"column:class_level" json:"class_level,omitempty"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;not null;default:now()" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;not null;default:now()" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (Class) TableName() string { return "classes" }

func (m *Class) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ClassCreatedAt.IsZero() {
		m.ClassCreatedAt = now
	}
	m.ClassUpdatedAt = now
	return nil
}

func (m *Class) BeforeUpdate(tx *gorm.DB) error {
	m.ClassUpdatedAt = time.Now()
	return nil
}

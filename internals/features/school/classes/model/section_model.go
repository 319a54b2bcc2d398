// file: internals/features/school/classes/model/section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section: rombel di dalam sebuah class (mis. "7A").
type Section struct {
	SectionID       uuid.UUID `gorm:"column:section_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"section_id"`
	SectionBranchID uuid.UUID `gorm:"column:section_branch_id;type:uuid;not null;index:ix_section_branch" json:"section_branch_id"`
	SectionClassID  uuid.UUID `gorm:"column:section_class_id;type:uuid;not null;index;uniqueIndex:uniq_section_class_name,priority:1" json:"section_class_id"`

	SectionName     string `gorm:"column:section_name;type:varchar(30);not null;uniqueIndex:uniq_section_class_name,priority:2" json:"section_name"`
	SectionCapacity *int   `gorm:"column:section_capacity" json:"section_capacity,omitempty"`

	SectionCreatedAt time.Time      `gorm:"column:section_created_at;not null;default:now()" json:"section_created_at"`
	SectionUpdatedAt time.Time      `gorm:"column:section_updated_at;not null;default:now()" json:"section_updated_at"`
	SectionDeletedAt gorm.DeletedAt `gorm:"column:section_deleted_at;index" json:"-"`
}

func (Section) TableName() string { return "sections" }

func (m *Section) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.SectionCreatedAt.IsZero() {
		m.SectionCreatedAt = now
	}
	m.SectionUpdatedAt = now
	return nil
}

func (m *Section) BeforeUpdate(tx *gorm.DB) error {
	m.SectionUpdatedAt = time.Now()
	return nil
}

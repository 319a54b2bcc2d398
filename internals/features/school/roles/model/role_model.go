// file: internals/features/school/roles/model/role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RoleDefinition: definisi role per branch beserta daftar capability-nya.
// Capabilities disimpan sebagai text[] (pq.StringArray) supaya bisa
// di-query langsung dengan operator array Postgres.
type RoleDefinition struct {
	RoleID       uuid.UUID `gorm:"column:role_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"role_id"`
	RoleBranchID uuid.UUID `gorm:"column:role_branch_id;type:uuid;not null;index:ix_role_branch;uniqueIndex:uniq_role_branch_name,priority:1" json:"role_branch_id"`

	RoleName        string         `gorm:"column:role_name;type:varchar(50);not null;uniqueIndex:uniq_role_branch_name,priority:2" json:"role_name"`
	RoleDescription *string        `gorm:"column:role_description;type:varchar(255)" json:"role_description,omitempty"`
	RoleCapabilities pq.StringArray `gorm:"column:role_capabilities;type:text[];not null" json:"role_capabilities"`

	RoleIsSystem bool `gorm:"column:role_is_system;not null;default:false" json:"role_is_system"`

	RoleCreatedAt time.Time      `gorm:"column:role_created_at;not null;default:now()" json:"role_created_at"`
	RoleUpdatedAt time.Time      `gorm:"column:role_updated_at;not null;default:now()" json:"role_updated_at"`
	RoleDeletedAt gorm.DeletedAt `gorm:"column:role_deleted_at;index" json:"-"`
}

func (RoleDefinition) TableName() string { return "role_definitions" }

func (m *RoleDefinition) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.RoleCreatedAt.IsZero() {
		m.RoleCreatedAt = now
	}
	m.RoleUpdatedAt = now
	return nil
}

func (m *RoleDefinition) BeforeUpdate(tx *gorm.DB) error {
	m.RoleUpdatedAt = time.Now()
	return nil
}

// UserBranchRole: penugasan role ke user pada satu branch.
type UserBranchRole struct {
	UBRID       uuid.UUID `gorm:"column:ubr_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"ubr_id"`
	UBRUserID   uuid.UUID `gorm:"column:ubr_user_id;type:uuid;not null;index:ix_ubr_user;uniqueIndex:uniq_ubr,priority:1" json:"ubr_user_id"`
	UBRBranchID uuid.UUID `gorm:"column:ubr_branch_id;type:uuid;not null;index:ix_ubr_branch;uniqueIndex:uniq_ubr,priority:2" json:"ubr_branch_id"`
	UBRRoleName string    `gorm:"column:ubr_role_name;type:varchar(50);not null;uniqueIndex:uniq_ubr,priority:3" json:"ubr_role_name"`

	UBRCreatedAt time.Time      `gorm:"column:ubr_created_at;not null;default:now()" json:"ubr_created_at"`
	UBRDeletedAt gorm.DeletedAt `gorm:"column:ubr_deleted_at;index" json:"-"`
}

func (UserBranchRole) TableName() string { return "user_branch_roles" }

// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusGraduated StudentStatus = "graduated"
)

// Student: siswa terdaftar pada satu branch, opsional terikat class/section.
type Student struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentBranchID uuid.UUID `gorm:"column:student_branch_id;type:uuid;not null;index:ix_student_branch;uniqueIndex:uniq_student_admission,priority:1" json:"student_branch_id"`

	StudentAdmissionNo string `gorm:"column:student_admission_no;type:varchar(30);not null;uniqueIndex:uniq_student_admission,priority:2" json:"student_admission_no"`
	StudentName        string `gorm:"column:student_name;type:varchar(120);not null;index:ix_student_name" json:"student_name"`

	StudentClassID   *uuid.UUID `gorm:"column:student_class_id;type:uuid;index" json:"student_class_id,omitempty"`
	StudentSectionID *uuid.UUID `gorm:"column:student_section_id;type:uuid;index" json:"student_section_id,omitempty"`

	StudentGuardianName  *string `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:varchar(30)" json:"student_guardian_phone,omitempty"`
	StudentEmail         *string `gorm:"column:student_email;type:varchar(120)" json:"student_email,omitempty"`

	StudentStatus StudentStatus `gorm:"column:student_status;type:varchar(20);not null;default:'active';index:ix_student_status" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now();index:ix_student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}

// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	studentmodel "schoolku_backend/internals/features/school/students/model"
)

type StudentCreateDTO struct {
	StudentAdmissionNo   string     `json:"student_admission_no" validate:"required,min=3,max=30"`
	StudentName          string     `json:"student_name" validate:"required,min=2,max=120"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentSectionID     *uuid.UUID `json:"student_section_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty" validate:"omitempty,max=30"`
	StudentEmail         *string    `json:"student_email,omitempty" validate:"omitempty,email"`
}

// partial update — pindah class/section lewat sini juga
type StudentUpdateDTO struct {
	StudentName          *string    `json:"student_name,omitempty" validate:"omitempty,min=2,max=120"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentSectionID     *uuid.UUID `json:"student_section_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty" validate:"omitempty,max=30"`
	StudentEmail         *string    `json:"student_email,omitempty" validate:"omitempty,email"`
	StudentStatus        *string    `json:"student_status,omitempty" validate:"omitempty,oneof=active inactive graduated"`
}

type StudentResponse struct {
	StudentID            uuid.UUID  `json:"student_id"`
	StudentBranchID      uuid.UUID  `json:"student_branch_id"`
	StudentAdmissionNo   string     `json:"student_admission_no"`
	StudentName          string     `json:"student_name"`
	StudentClassID       *uuid.UUID `json:"student_class_id,omitempty"`
	StudentSectionID     *uuid.UUID `json:"student_section_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty"`
	StudentEmail         *string    `json:"student_email,omitempty"`
	StudentStatus        string     `json:"student_status"`
	StudentCreatedAt     time.Time  `json:"student_created_at"`
	StudentUpdatedAt     time.Time  `json:"student_updated_at"`
}

func ToStudentResponse(m studentmodel.Student) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentBranchID:      m.StudentBranchID,
		StudentAdmissionNo:   m.StudentAdmissionNo,
		StudentName:          m.StudentName,
		StudentClassID:       m.StudentClassID,
		StudentSectionID:     m.StudentSectionID,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentEmail:         m.StudentEmail,
		StudentStatus:        string(m.StudentStatus),
		StudentCreatedAt:     m.StudentCreatedAt,
		StudentUpdatedAt:     m.StudentUpdatedAt,
	}
}

func ToStudentResponses(list []studentmodel.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO, branchID uuid.UUID) studentmodel.Student {
	return studentmodel.Student{
		StudentBranchID:      branchID,
		StudentAdmissionNo:   d.StudentAdmissionNo,
		StudentName:          d.StudentName,
		StudentClassID:       d.StudentClassID,
		StudentSectionID:     d.StudentSectionID,
		StudentGuardianName:  d.StudentGuardianName,
		StudentGuardianPhone: d.StudentGuardianPhone,
		StudentEmail:         d.StudentEmail,
		StudentStatus:        studentmodel.StudentStatusActive,
	}
}

func ApplyStudentUpdate(m *studentmodel.Student, d StudentUpdateDTO) {
	if d.StudentName != nil {
		m.StudentName = *d.StudentName
	}
	if d.StudentClassID != nil {
		m.StudentClassID = d.StudentClassID
	}
	if d.StudentSectionID != nil {
		m.StudentSectionID = d.StudentSectionID
	}
	if d.StudentGuardianName != nil {
		m.StudentGuardianName = d.StudentGuardianName
	}
	if d.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = d.StudentGuardianPhone
	}
	if d.StudentEmail != nil {
		m.StudentEmail = d.StudentEmail
	}
	if d.StudentStatus != nil {
		m.StudentStatus = studentmodel.StudentStatus(*d.StudentStatus)
	}
}

// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classmodel "schoolku_backend/internals/features/school/classes/model"
)

////////////////////////////////////////////////////////////////////////////////
// CLASS — DTO
////////////////////////////////////////////////////////////////////////////////

type ClassCreateDTO struct {
	ClassName  string `json:"class_name" validate:"required,min=1,max=60"`
	ClassLevel *int   `json:"class_level,omitempty" validate:"omitempty,min=0,max=20"`
}

type ClassUpdateDTO struct {
	ClassName  *string `json:"class_name,omitempty" validate:"omitempty,min=1,max=60"`
	ClassLevel *int    `json:"class_level,omitempty" validate:"omitempty,min=0,max=20"`
}

type ClassResponse struct {
	ClassID        uuid.UUID `json:"class_id"`
	ClassBranchID  uuid.UUID `json:"class_branch_id"`
	ClassName      string    `json:"class_name"`
	ClassLevel     *int      `json:"class_level,omitempty"`
	ClassCreatedAt time.Time `json:"class_created_at"`
	ClassUpdatedAt time.Time `json:"class_updated_at"`
}

func ToClassResponse(m classmodel.Class) ClassResponse {
	return ClassResponse{
		ClassID:        m.ClassID,
		ClassBranchID:  m.ClassBranchID,
		ClassName:      m.ClassName,
		ClassLevel:     m.ClassLevel,
		ClassCreatedAt: m.ClassCreatedAt,
		ClassUpdatedAt: m.ClassUpdatedAt,
	}
}

func ToClassResponses(list []classmodel.Class) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToClassResponse(v))
	}
	return out
}

func ApplyClassUpdate(m *classmodel.Class, d ClassUpdateDTO) {
	if d.ClassName != nil {
		m.ClassName = *d.ClassName
	}
	if d.ClassLevel != nil {
		m.ClassLevel = d.ClassLevel
	}
}

////////////////////////////////////////////////////////////////////////////////
// SECTION — DTO
////////////////////////////////////////////////////////////////////////////////

type SectionCreateDTO struct {
	SectionClassID  uuid.UUID `json:"section_class_id" validate:"required"`
	SectionName     string    `json:"section_name" validate:"required,min=1,max=30"`
	SectionCapacity *int      `json:"section_capacity,omitempty" validate:"omitempty,min=1,max=500"`
}

type SectionUpdateDTO struct {
	SectionName     *string `json:"section_name,omitempty" validate:"omitempty,min=1,max=30"`
	SectionCapacity *int    `json:"section_capacity,omitempty" validate:"omitempty,min=1,max=500"`
}

type SectionResponse struct {
	SectionID        uuid.UUID `json:"section_id"`
	SectionBranchID  uuid.UUID `json:"section_branch_id"`
	SectionClassID   uuid.UUID `json:"section_class_id"`
	SectionName      string    `json:"section_name"`
	SectionCapacity  *int      `json:"section_capacity,omitempty"`
	SectionCreatedAt time.Time `json:"section_created_at"`
	SectionUpdatedAt time.Time `json:"section_updated_at"`
}

func ToSectionResponse(m classmodel.Section) SectionResponse {
	return SectionResponse{
		SectionID:        m.SectionID,
		SectionBranchID:  m.SectionBranchID,
		SectionClassID:   m.SectionClassID,
		SectionName:      m.SectionName,
		SectionCapacity:  m.SectionCapacity,
		SectionCreatedAt: m.SectionCreatedAt,
		SectionUpdatedAt: m.SectionUpdatedAt,
	}
}

func ToSectionResponses(list []classmodel.Section) []SectionResponse {
	out := make([]SectionResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToSectionResponse(v))
	}
	return out
}

func ApplySectionUpdate(m *classmodel.Section, d SectionUpdateDTO) {
	if d.SectionName != nil {
		m.SectionName = *d.SectionName
	}
	if d.SectionCapacity != nil {
		m.SectionCapacity = d.SectionCapacity
	}
}

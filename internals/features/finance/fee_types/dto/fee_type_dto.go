// file: internals/features/finance/fee_types/dto/fee_type_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	feetypemodel "schoolku_backend/internals/features/finance/fee_types/model"
)

type FeeTypeCreateDTO struct {
	FeeTypeName         string     `json:"fee_type_name" validate:"required,min=2,max=100"`
	FeeTypeDescription  *string    `json:"fee_type_description,omitempty" validate:"omitempty,max=255"`
	FeeTypeAmount       int64      `json:"fee_type_amount" validate:"required,gt=0"`
	FeeTypeFrequency    string     `json:"fee_type_frequency" validate:"required,oneof=one_time monthly quarterly semi_annual annual"`
	FeeTypeApplicableTo string     `json:"fee_type_applicable_to" validate:"required,oneof=all class student"`
	FeeTypeClassID      *uuid.UUID `json:"fee_type_class_id,omitempty"`
}

type FeeTypeUpdateDTO struct {
	FeeTypeName         *string    `json:"fee_type_name,omitempty" validate:"omitempty,min=2,max=100"`
	FeeTypeDescription  *string    `json:"fee_type_description,omitempty" validate:"omitempty,max=255"`
	FeeTypeAmount       *int64     `json:"fee_type_amount,omitempty" validate:"omitempty,gt=0"`
	FeeTypeFrequency    *string    `json:"fee_type_frequency,omitempty" validate:"omitempty,oneof=one_time monthly quarterly semi_annual annual"`
	FeeTypeApplicableTo *string    `json:"fee_type_applicable_to,omitempty" validate:"omitempty,oneof=all class student"`
	FeeTypeClassID      *uuid.UUID `json:"fee_type_class_id,omitempty"`
	FeeTypeIsActive     *bool      `json:"fee_type_is_active,omitempty"`
}

type FeeTypeResponse struct {
	FeeTypeID           uuid.UUID  `json:"fee_type_id"`
	FeeTypeBranchID     uuid.UUID  `json:"fee_type_branch_id"`
	FeeTypeName         string     `json:"fee_type_name"`
	FeeTypeDescription  *string    `json:"fee_type_description,omitempty"`
	FeeTypeAmount       int64      `json:"fee_type_amount"`
	FeeTypeFrequency    string     `json:"fee_type_frequency"`
	FeeTypeApplicableTo string     `json:"fee_type_applicable_to"`
	FeeTypeClassID      *uuid.UUID `json:"fee_type_class_id,omitempty"`
	FeeTypeIsActive     bool       `json:"fee_type_is_active"`
	FeeTypeCreatedAt    time.Time  `json:"fee_type_created_at"`
	FeeTypeUpdatedAt    time.Time  `json:"fee_type_updated_at"`
}

func ToFeeTypeResponse(m feetypemodel.FeeType) FeeTypeResponse {
	return FeeTypeResponse{
		FeeTypeID:           m.FeeTypeID,
		FeeTypeBranchID:     m.FeeTypeBranchID,
		FeeTypeName:         m.FeeTypeName,
		FeeTypeDescription:  m.FeeTypeDescription,
		FeeTypeAmount:       m.FeeTypeAmount,
		FeeTypeFrequency:    string(m.FeeTypeFrequency),
		FeeTypeApplicableTo: string(m.FeeTypeApplicableTo),
		FeeTypeClassID:      m.FeeTypeClassID,
		FeeTypeIsActive:     m.FeeTypeIsActive,
		FeeTypeCreatedAt:    m.FeeTypeCreatedAt,
		FeeTypeUpdatedAt:    m.FeeTypeUpdatedAt,
	}
}

func ToFeeTypeResponses(list []feetypemodel.FeeType) []FeeTypeResponse {
	out := make([]FeeTypeResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeTypeResponse(v))
	}
	return out
}

func FeeTypeCreateDTOToModel(d FeeTypeCreateDTO, branchID uuid.UUID) feetypemodel.FeeType {
	return feetypemodel.FeeType{
		FeeTypeBranchID:     branchID,
		FeeTypeName:         d.FeeTypeName,
		FeeTypeDescription:  d.FeeTypeDescription,
		FeeTypeAmount:       d.FeeTypeAmount,
		FeeTypeFrequency:    feetypemodel.FeeFrequency(d.FeeTypeFrequency),
		FeeTypeApplicableTo: feetypemodel.FeeApplicability(d.FeeTypeApplicableTo),
		FeeTypeClassID:      d.FeeTypeClassID,
		FeeTypeIsActive:     true,
	}
}

func ApplyFeeTypeUpdate(m *feetypemodel.FeeType, d FeeTypeUpdateDTO) {
	if d.FeeTypeName != nil {
		m.FeeTypeName = *d.FeeTypeName
	}
	if d.FeeTypeDescription != nil {
		m.FeeTypeDescription = d.FeeTypeDescription
	}
	if d.FeeTypeAmount != nil {
		m.FeeTypeAmount = *d.FeeTypeAmount
	}
	if d.FeeTypeFrequency != nil {
		m.FeeTypeFrequency = feetypemodel.FeeFrequency(*d.FeeTypeFrequency)
	}
	if d.FeeTypeApplicableTo != nil {
		m.FeeTypeApplicableTo = feetypemodel.FeeApplicability(*d.FeeTypeApplicableTo)
	}
	if d.FeeTypeClassID != nil {
		m.FeeTypeClassID = d.FeeTypeClassID
	}
	if d.FeeTypeIsActive != nil {
		m.FeeTypeIsActive = *d.FeeTypeIsActive
	}
}

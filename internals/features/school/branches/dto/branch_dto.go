// file: internals/features/school/branches/dto/branch_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	branchmodel "schoolku_backend/internals/features/school/branches/model"
)

type BranchCreateDTO struct {
	BranchName    string  `json:"branch_name" validate:"required,min=3,max=120"`
	BranchCode    string  `json:"branch_code" validate:"required,min=2,max=20"`
	BranchAddress *string `json:"branch_address,omitempty"`
	BranchPhone   *string `json:"branch_phone,omitempty" validate:"omitempty,max=30"`
	BranchEmail   *string `json:"branch_email,omitempty" validate:"omitempty,email"`
}

// partial update
type BranchUpdateDTO struct {
	BranchName     *string `json:"branch_name,omitempty" validate:"omitempty,min=3,max=120"`
	BranchAddress  *string `json:"branch_address,omitempty"`
	BranchPhone    *string `json:"branch_phone,omitempty" validate:"omitempty,max=30"`
	BranchEmail    *string `json:"branch_email,omitempty" validate:"omitempty,email"`
	BranchIsActive *bool   `json:"branch_is_active,omitempty"`
}

type BranchResponse struct {
	BranchID       uuid.UUID `json:"branch_id"`
	BranchName     string    `json:"branch_name"`
	BranchCode     string    `json:"branch_code"`
	BranchAddress  *string   `json:"branch_address,omitempty"`
	BranchPhone    *string   `json:"branch_phone,omitempty"`
	BranchEmail    *string   `json:"branch_email,omitempty"`
	BranchIsActive bool      `json:"branch_is_active"`
	BranchCreatedAt time.Time `json:"branch_created_at"`
	BranchUpdatedAt time.Time `json:"branch_updated_at"`
}

func ToBranchResponse(m branchmodel.Branch) BranchResponse {
	return BranchResponse{
		BranchID:        m.BranchID,
		BranchName:      m.BranchName,
		BranchCode:      m.BranchCode,
		BranchAddress:   m.BranchAddress,
		BranchPhone:     m.BranchPhone,
		BranchEmail:     m.BranchEmail,
		BranchIsActive:  m.BranchIsActive,
		BranchCreatedAt: m.BranchCreatedAt,
		BranchUpdatedAt: m.BranchUpdatedAt,
	}
}

func ToBranchResponses(list []branchmodel.Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToBranchResponse(v))
	}
	return out
}

func BranchCreateDTOToModel(d BranchCreateDTO) branchmodel.Branch {
	return branchmodel.Branch{
		BranchName:     d.BranchName,
		BranchCode:     d.BranchCode,
		BranchAddress:  d.BranchAddress,
		BranchPhone:    d.BranchPhone,
		BranchEmail:    d.BranchEmail,
		BranchIsActive: true,
	}
}

func ApplyBranchUpdate(m *branchmodel.Branch, d BranchUpdateDTO) {
	if d.BranchName != nil {
		m.BranchName = *d.BranchName
	}
	if d.BranchAddress != nil {
		m.BranchAddress = d.BranchAddress
	}
	if d.BranchPhone != nil {
		m.BranchPhone = d.BranchPhone
	}
	if d.BranchEmail != nil {
		m.BranchEmail = d.BranchEmail
	}
	if d.BranchIsActive != nil {
		m.BranchIsActive = *d.BranchIsActive
	}
}

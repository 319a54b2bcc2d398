// file: internals/features/school/roles/dto/role_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	rolemodel "schoolku_backend/internals/features/school/roles/model"
)

type RoleCreateDTO struct {
	RoleName         string   `json:"role_name" validate:"required,min=2,max=50,lowercase"`
	RoleDescription  *string  `json:"role_description,omitempty" validate:"omitempty,max=255"`
	RoleCapabilities []string `json:"role_capabilities" validate:"required,min=1,dive,required"`
}

type RoleUpdateDTO struct {
	RoleDescription  *string  `json:"role_description,omitempty" validate:"omitempty,max=255"`
	RoleCapabilities []string `json:"role_capabilities,omitempty" validate:"omitempty,min=1,dive,required"`
}

type RoleResponse struct {
	RoleID           uuid.UUID `json:"role_id"`
	RoleBranchID     uuid.UUID `json:"role_branch_id"`
	RoleName         string    `json:"role_name"`
	RoleDescription  *string   `json:"role_description,omitempty"`
	RoleCapabilities []string  `json:"role_capabilities"`
	RoleIsSystem     bool      `json:"role_is_system"`
	RoleCreatedAt    time.Time `json:"role_created_at"`
	RoleUpdatedAt    time.Time `json:"role_updated_at"`
}

func ToRoleResponse(m rolemodel.RoleDefinition) RoleResponse {
	return RoleResponse{
		RoleID:           m.RoleID,
		RoleBranchID:     m.RoleBranchID,
		RoleName:         m.RoleName,
		RoleDescription:  m.RoleDescription,
		RoleCapabilities: []string(m.RoleCapabilities),
		RoleIsSystem:     m.RoleIsSystem,
		RoleCreatedAt:    m.RoleCreatedAt,
		RoleUpdatedAt:    m.RoleUpdatedAt,
	}
}

func ToRoleResponses(list []rolemodel.RoleDefinition) []RoleResponse {
	out := make([]RoleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToRoleResponse(v))
	}
	return out
}

func RoleCreateDTOToModel(d RoleCreateDTO, branchID uuid.UUID) rolemodel.RoleDefinition {
	return rolemodel.RoleDefinition{
		RoleBranchID:     branchID,
		RoleName:         d.RoleName,
		RoleDescription:  d.RoleDescription,
		RoleCapabilities: pq.StringArray(d.RoleCapabilities),
	}
}

type AssignRoleDTO struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	RoleName string    `json:"role_name" validate:"required,min=2,max=50"`
}

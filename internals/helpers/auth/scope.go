// file: internals/helpers/auth/scope.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// Keys di fiber Locals — diisi oleh middleware AuthJWT & UseBranchScope.
const (
	LocUserID       = "user_id"
	LocIsOwner      = "is_owner"
	LocBranchRoles  = "branch_roles"
	LocActiveBranch = "active_branch_id"
	LocActiveRole   = "active_role"
	LocClaims       = "jwt_claims"
)

// BranchRole: role yang dimiliki user pada satu branch (dari claims).
type BranchRole struct {
	BranchID string   `json:"branch_id"`
	Roles    []string `json:"roles"`
}

// Scope: konteks otorisasi eksplisit — dipass ke service, bukan dibaca
// diam-diam dari request. Memudahkan unit test tanpa HTTP layer.
type Scope struct {
	UserID   uuid.UUID
	Role     string
	BranchID uuid.UUID
}

// IsAdmin: role admin global (owner) — bypass pembatasan branch.
func (s Scope) IsAdmin() bool {
	return s.Role == constants.RoleOwner
}

// CanAccessBranch: admin global boleh semua; selain itu harus branch sendiri.
func (s Scope) CanAccessBranch(branchID uuid.UUID) bool {
	if s.Role == constants.RoleOwner {
		return true
	}
	return s.BranchID == branchID
}

// Has: typed capability check untuk role aktif.
func (s Scope) Has(cap constants.Capability) bool {
	return constants.RoleHas(s.Role, cap)
}

// ScopeFromLocals: bangun Scope dari locals yang sudah diisi middleware.
func ScopeFromLocals(c *fiber.Ctx) (Scope, error) {
	uid, err := uuid.Parse(localString(c, LocUserID))
	if err != nil {
		return Scope{}, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}

	role := strings.ToLower(strings.TrimSpace(localString(c, LocActiveRole)))
	if role == "" {
		role = constants.RoleUser
	}

	sc := Scope{UserID: uid, Role: role}

	if raw := localString(c, LocActiveBranch); raw != "" {
		bid, err := uuid.Parse(raw)
		if err != nil {
			return Scope{}, fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
		}
		sc.BranchID = bid
	}

	// owner global tidak wajib punya branch; role lain wajib
	if sc.BranchID == uuid.Nil && sc.Role != constants.RoleOwner {
		return Scope{}, fiber.NewError(fiber.StatusBadRequest, "branch_id wajib di path, parameter, atau token")
	}
	return sc, nil
}

// EnsureBranch: 403 kalau scope tidak boleh menyentuh branch target.
func EnsureBranch(sc Scope, branchID uuid.UUID) error {
	if !sc.CanAccessBranch(branchID) {
		return fiber.NewError(fiber.StatusForbidden, "Akses lintas branch ditolak")
	}
	return nil
}

// EnsureCapability: 403 kalau role aktif tidak punya capability.
func EnsureCapability(sc Scope, cap constants.Capability) error {
	if !sc.Has(cap) {
		return fiber.NewError(fiber.StatusForbidden, "Role tidak berhak mengakses endpoint ini")
	}
	return nil
}

// IsOwner: cek flag owner global dari locals.
func IsOwner(c *fiber.Ctx) bool {
	if v, ok := c.Locals(LocIsOwner).(bool); ok {
		return v
	}
	return false
}

// BranchRolesFromLocals: normalisasi branch_roles dari claims (bisa
// []BranchRole, []interface{} hasil decode JWT, dst).
func BranchRolesFromLocals(c *fiber.Ctx) []BranchRole {
	v := c.Locals(LocBranchRoles)
	if v == nil {
		return nil
	}
	if xs, ok := v.([]BranchRole); ok {
		return xs
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]BranchRole, 0, len(arr))
	for _, it := range arr {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		bid, _ := m["branch_id"].(string)
		if strings.TrimSpace(bid) == "" {
			continue
		}
		var roles []string
		switch rr := m["roles"].(type) {
		case []interface{}:
			for _, r := range rr {
				if s, ok := r.(string); ok && strings.TrimSpace(s) != "" {
					roles = append(roles, strings.ToLower(strings.TrimSpace(s)))
				}
			}
		case []string:
			for _, s := range rr {
				if strings.TrimSpace(s) != "" {
					roles = append(roles, strings.ToLower(strings.TrimSpace(s)))
				}
			}
		}
		out = append(out, BranchRole{BranchID: bid, Roles: roles})
	}
	return out
}

// RolesAtBranch: roles user pada branch tertentu.
func RolesAtBranch(c *fiber.Ctx, branchID string) []string {
	for _, br := range BranchRolesFromLocals(c) {
		if strings.EqualFold(br.BranchID, branchID) {
			return br.Roles
		}
	}
	return nil
}

// BestRoleFor: pilih role dengan prioritas tertinggi.
func BestRoleFor(roles []string) string {
	best := ""
	bestScore := -1
	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		if sc := constants.RolePriority[r]; sc > bestScore {
			best, bestScore = r, sc
		}
	}
	return best
}

func localString(c *fiber.Ctx, key string) string {
	if s, ok := c.Locals(key).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

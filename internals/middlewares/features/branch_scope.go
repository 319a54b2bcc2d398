// file: internals/middlewares/features/branch_scope.go
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

func trimLower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

/* ==========================
   Ekstraksi branch_id & role dari request
========================== */

// extractBranchID: hanya balikin kalau benar-benar UUID.
func extractBranchID(c *fiber.Ctx) string {
	// 1) param (/:branch_id)
	if v := strings.TrimSpace(c.Params("branch_id")); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	// 2) query (?branch_id=)
	if v := strings.TrimSpace(c.Query("branch_id")); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	// 3) header (X-Branch-ID)
	if v := strings.TrimSpace(c.Get("X-Branch-ID")); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	return ""
}

func extractRole(c *fiber.Ctx) string {
	if v := trimLower(c.Query("role")); v != "" {
		return v
	}
	if v := trimLower(c.Get("X-Role")); v != "" {
		return v
	}
	return ""
}

/* ==========================
   SCOPE — by path/query/header + token fallback
========================== */

// UseBranchScope:
// - Ambil branch_id dari path/query/header (UUID), fallback ke token.
// - Non-owner: branch harus ada di branch_roles token.
// - Role: jika dikirim user, harus valid di branch tsb; kalau tidak, pilih best role.
// - Set locals: active_branch_id, active_role.
func UseBranchScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isOwner := helperAuth.IsOwner(c)

		reqBranch := extractBranchID(c)

		// fallback: branch aktif dari token (1 sesi = 1 branch)
		if reqBranch == "" {
			reqBranch = strings.TrimSpace(asString(c.Locals(helperAuth.LocActiveBranch)))
		}
		if reqBranch == "" && !isOwner {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id wajib di path, parameter, atau token")
		}
		if reqBranch != "" {
			if _, err := uuid.Parse(reqBranch); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
			}
		}

		reqRole := extractRole(c)

		// OWNER bypass — boleh branch mana pun (atau tanpa branch sama sekali)
		if isOwner {
			if reqRole == "" {
				reqRole = constants.RoleOwner
			}
			if reqBranch != "" {
				c.Locals(helperAuth.LocActiveBranch, reqBranch)
			}
			c.Locals(helperAuth.LocActiveRole, reqRole)
			log.Println("🔧 owner scope | branch_id:", reqBranch, "| role:", reqRole)
			return c.Next()
		}

		rolesAtBranch := helperAuth.RolesAtBranch(c, reqBranch)
		if len(rolesAtBranch) == 0 {
			return fiber.NewError(fiber.StatusForbidden, "Bukan anggota pada branch yang diminta")
		}

		activeRole := reqRole
		if activeRole != "" {
			found := false
			for _, r := range rolesAtBranch {
				if strings.EqualFold(r, activeRole) {
					found = true
					break
				}
			}
			if !found {
				return fiber.NewError(fiber.StatusForbidden, "Role tidak tersedia pada branch tersebut")
			}
		} else {
			activeRole = helperAuth.BestRoleFor(rolesAtBranch)
			if activeRole == "" {
				return fiber.NewError(fiber.StatusForbidden, "Tidak memiliki peran pada branch tersebut")
			}
		}

		c.Locals(helperAuth.LocActiveBranch, reqBranch)
		c.Locals(helperAuth.LocActiveRole, activeRole)
		return c.Next()
	}
}

/* ==========================
   STRICT ROLE CHECK
========================== */

// IsBranchAdmin (strict): hanya owner/admin.
func IsBranchAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		role := trimLower(asString(c.Locals(helperAuth.LocActiveRole)))
		bid := strings.TrimSpace(asString(c.Locals(helperAuth.LocActiveBranch)))
		if bid == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Scope branch/role belum ditentukan")
		}
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Role tidak berhak mengakses endpoint ini")
		}
		return c.Next()
	}
}

// IsBranchStaff: owner/admin/accountant (teacher TIDAK lolos).
func IsBranchStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		role := trimLower(asString(c.Locals(helperAuth.LocActiveRole)))
		bid := strings.TrimSpace(asString(c.Locals(helperAuth.LocActiveBranch)))
		if bid == "" || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Scope branch/role belum ditentukan")
		}
		switch role {
		case constants.RoleAdmin, constants.RoleAccountant:
			return c.Next()
		default:
			return fiber.NewError(fiber.StatusForbidden, "Role tidak berhak mengakses endpoint ini")
		}
	}
}

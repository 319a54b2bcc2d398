// file: internals/features/school/roles/controller/role_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/roles/dto"
	rolemodel "schoolku_backend/internals/features/school/roles/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type RoleHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRoleHandler(db *gorm.DB) *RoleHandler {
	return &RoleHandler{DB: db, Validator: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}

func validationMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}

func invalidCapabilities(caps []string) []string {
	var bad []string
	for _, s := range caps {
		if !constants.IsValidCapability(s) {
			bad = append(bad, s)
		}
	}
	return bad
}

// -----------------------------------------
// List (GET /roles)
// -----------------------------------------
func (h *RoleHandler) List(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapRoleManage); err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&rolemodel.RoleDefinition{}).Where("role_branch_id = ?", sc.BranchID)
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("role_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "role_created_at",
		"name":       "role_name",
	}
	var list []rolemodel.RoleDefinition
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToRoleResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Create (POST /roles)
// -----------------------------------------
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapRoleManage); err != nil {
		return err
	}
	var in dto.RoleCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	if bad := invalidCapabilities(in.RoleCapabilities); len(bad) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"capability tidak dikenal: "+strings.Join(bad, ", "))
	}

	m := dto.RoleCreateDTOToModel(in, sc.BranchID)
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nama role sudah dipakai di branch ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "role created", dto.ToRoleResponse(m))
}

// -----------------------------------------
// Update (PATCH /roles/:id)
// -----------------------------------------
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapRoleManage); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.RoleUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	if bad := invalidCapabilities(in.RoleCapabilities); len(bad) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"capability tidak dikenal: "+strings.Join(bad, ", "))
	}

	var m rolemodel.RoleDefinition
	if err := h.DB.First(&m, "role_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "role not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.RoleBranchID); err != nil {
		return err
	}
	if m.RoleIsSystem {
		return helper.JsonError(c, fiber.StatusForbidden, "role bawaan tidak bisa diubah")
	}

	if in.RoleDescription != nil {
		m.RoleDescription = in.RoleDescription
	}
	if len(in.RoleCapabilities) > 0 {
		m.RoleCapabilities = pq.StringArray(in.RoleCapabilities)
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "role updated", dto.ToRoleResponse(m))
}

// -----------------------------------------
// Delete (DELETE /roles/:id) — soft delete
// -----------------------------------------
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapRoleManage); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m rolemodel.RoleDefinition
	if err := h.DB.First(&m, "role_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "role not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.RoleBranchID); err != nil {
		return err
	}
	if m.RoleIsSystem {
		return helper.JsonError(c, fiber.StatusForbidden, "role bawaan tidak bisa dihapus")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "role deleted", fiber.Map{"role_id": id})
}

// -----------------------------------------
// Assign (POST /roles/assign) — tugaskan role ke user di branch aktif
// -----------------------------------------
func (h *RoleHandler) Assign(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapRoleManage); err != nil {
		return err
	}
	var in dto.AssignRoleDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	roleName := strings.ToLower(strings.TrimSpace(in.RoleName))
	if _, ok := constants.RolePriority[roleName]; !ok {
		// bukan role bawaan — harus terdaftar di role_definitions branch ini
		var cnt int64
		if err := h.DB.Model(&rolemodel.RoleDefinition{}).
			Where("role_branch_id = ? AND role_name = ?", sc.BranchID, roleName).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if cnt == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "role tidak dikenal di branch ini")
		}
	}

	m := rolemodel.UserBranchRole{
		UBRUserID:   in.UserID,
		UBRBranchID: sc.BranchID,
		UBRRoleName: roleName,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "user sudah punya role ini di branch tersebut")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "role assigned", m)
}

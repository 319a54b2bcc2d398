// file: internals/features/school/branches/controller/branch_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/branches/dto"
	branchmodel "schoolku_backend/internals/features/school/branches/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type BranchHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{DB: db, Validator: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint"))
}

// -----------------------------------------
// List (GET /branches) — owner only; non-owner cuma lihat branch sendiri
// -----------------------------------------
func (h *BranchHandler) List(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&branchmodel.Branch{})
	if !sc.IsAdmin() {
		q = q.Where("branch_id = ?", sc.BranchID)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("branch_name ILIKE ? OR branch_code ILIKE ?", "%"+v+"%", "%"+v+"%")
	}
	if v := c.Query("is_active"); v != "" {
		q = q.Where("branch_is_active = ?", strings.EqualFold(v, "true"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "branch_created_at",
		"name":       "branch_name",
		"code":       "branch_code",
	}
	var list []branchmodel.Branch
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToBranchResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Detail (GET /branches/:id)
// -----------------------------------------
func (h *BranchHandler) GetByID(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := helperAuth.EnsureBranch(sc, id); err != nil {
		return err
	}

	var m branchmodel.Branch
	if err := h.DB.First(&m, "branch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToBranchResponse(m))
}

// -----------------------------------------
// Create (POST /branches) — owner only
// -----------------------------------------
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if !sc.IsAdmin() {
		return helper.JsonError(c, fiber.StatusForbidden, "hanya admin global yang boleh membuat branch")
	}

	var in dto.BranchCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	m := dto.BranchCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "branch_code sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "branch created", dto.ToBranchResponse(m))
}

// -----------------------------------------
// Update (PATCH /branches/:id)
// -----------------------------------------
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	if err := helperAuth.EnsureBranch(sc, id); err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapBranchManage); err != nil {
		return err
	}

	var in dto.BranchUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var m branchmodel.Branch
	if err := h.DB.First(&m, "branch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyBranchUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "branch updated", dto.ToBranchResponse(m))
}

// -----------------------------------------
// Delete (DELETE /branches/:id) — soft delete, owner only
// -----------------------------------------
func (h *BranchHandler) Delete(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if !sc.IsAdmin() {
		return helper.JsonError(c, fiber.StatusForbidden, "hanya admin global yang boleh menghapus branch")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m branchmodel.Branch
	if err := h.DB.First(&m, "branch_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "branch not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "branch deleted", fiber.Map{"branch_id": id})
}

// validationMap: validator.ValidationErrors → map field → pesan
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

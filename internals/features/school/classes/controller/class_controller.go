// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/classes/dto"
	classmodel "schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ClassHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassHandler(db *gorm.DB) *ClassHandler {
	return &ClassHandler{DB: db, Validator: validator.New()}
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

// -----------------------------------------
// List (GET /classes)
// -----------------------------------------
func (h *ClassHandler) List(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&classmodel.Class{}).Where("class_branch_id = ?", sc.BranchID)
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("class_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "class_created_at",
		"name":       "class_name",
		"level":      "class_level",
	}
	var list []classmodel.Class
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToClassResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Create (POST /classes)
// -----------------------------------------
func (h *ClassHandler) Create(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapClassManage); err != nil {
		return err
	}
	var in dto.ClassCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	m := classmodel.Class{
		ClassBranchID: sc.BranchID,
		ClassName:     in.ClassName,
		ClassLevel:    in.ClassLevel,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nama class sudah dipakai di branch ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "class created", dto.ToClassResponse(m))
}

// -----------------------------------------
// Update (PATCH /classes/:id)
// -----------------------------------------
func (h *ClassHandler) Update(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapClassManage); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.ClassUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var m classmodel.Class
	if err := h.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.ClassBranchID); err != nil {
		return err
	}
	dto.ApplyClassUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "class updated", dto.ToClassResponse(m))
}

// -----------------------------------------
// Delete (DELETE /classes/:id) — soft delete
// -----------------------------------------
func (h *ClassHandler) Delete(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapClassManage); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m classmodel.Class
	if err := h.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.ClassBranchID); err != nil {
		return err
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "class deleted", fiber.Map{"class_id": id})
}

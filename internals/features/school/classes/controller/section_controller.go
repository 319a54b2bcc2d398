// file: internals/features/school/classes/controller/section_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/school/classes/dto"
	classmodel "schoolku_backend/internals/features/school/classes/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type SectionHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSectionHandler(db *gorm.DB) *SectionHandler {
	return &SectionHandler{DB: db, Validator: validator.New()}
}

// -----------------------------------------
// List (GET /sections?class_id=)
// -----------------------------------------
func (h *SectionHandler) List(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&classmodel.Section{}).Where("section_branch_id = ?", sc.BranchID)
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		q = q.Where("section_class_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("section_name ILIKE ?", "%"+v+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "section_created_at",
		"name":       "section_name",
	}
	var list []classmodel.Section
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToSectionResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Create (POST /sections)
// -----------------------------------------
func (h *SectionHandler) Create(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapClassManage); err != nil {
		return err
	}
	var in dto.SectionCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	// class harus ada di branch yang sama
	var cls classmodel.Class
	if err := h.DB.First(&cls, "class_id = ?", in.SectionClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, cls.ClassBranchID); err != nil {
		return err
	}

	m := classmodel.Section{
		SectionBranchID: cls.ClassBranchID,
		SectionClassID:  in.SectionClassID,
		SectionName:     in.SectionName,
		SectionCapacity: in.SectionCapacity,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nama section sudah dipakai di class ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "section created", dto.ToSectionResponse(m))
}

// -----------------------------------------
// Update (PATCH /sections/:id)
// -----------------------------------------
func (h *SectionHandler) Update(c *fiber.Ctx) error {
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
	var in dto.SectionUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var m classmodel.Section
	if err := h.DB.First(&m, "section_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "section not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.SectionBranchID); err != nil {
		return err
	}
	dto.ApplySectionUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "section updated", dto.ToSectionResponse(m))
}

// -----------------------------------------
// Delete (DELETE /sections/:id) — soft delete
// -----------------------------------------
func (h *SectionHandler) Delete(c *fiber.Ctx) error {
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

	var m classmodel.Section
	if err := h.DB.First(&m, "section_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "section not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.SectionBranchID); err != nil {
		return err
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "section deleted", fiber.Map{"section_id": id})
}

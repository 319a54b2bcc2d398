// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	classmodel "schoolku_backend/internals/features/school/classes/model"
	"schoolku_backend/internals/features/school/students/dto"
	studentmodel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type StudentHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentHandler(db *gorm.DB) *StudentHandler {
	return &StudentHandler{DB: db, Validator: validator.New()}
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

// class & section (kalau diisi) harus milik branch yang sama
func (h *StudentHandler) checkClassSection(sc helperAuth.Scope, classID, sectionID *uuid.UUID) error {
	if classID != nil {
		var cls classmodel.Class
		if err := h.DB.First(&cls, "class_id = ?", *classID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "class not found")
			}
			return err
		}
		if err := helperAuth.EnsureBranch(sc, cls.ClassBranchID); err != nil {
			return err
		}
	}
	if sectionID != nil {
		var sec classmodel.Section
		if err := h.DB.First(&sec, "section_id = ?", *sectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "section not found")
			}
			return err
		}
		if err := helperAuth.EnsureBranch(sc, sec.SectionBranchID); err != nil {
			return err
		}
		if classID != nil && sec.SectionClassID != *classID {
			return fiber.NewError(fiber.StatusBadRequest, "section bukan bagian dari class tersebut")
		}
	}
	return nil
}

// -----------------------------------------
// List (GET /students)
// -----------------------------------------
func (h *StudentHandler) List(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&studentmodel.Student{}).Where("student_branch_id = ?", sc.BranchID)
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("(student_name ILIKE ? OR student_admission_no ILIKE ?)", "%"+v+"%", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		q = q.Where("student_class_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("section_id")); v != "" {
		q = q.Where("student_section_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("student_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at":   "student_created_at",
		"name":         "student_name",
		"admission_no": "student_admission_no",
	}
	var list []studentmodel.Student
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToStudentResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Detail (GET /students/:id)
// -----------------------------------------
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m studentmodel.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.StudentBranchID); err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Create (POST /students)
// -----------------------------------------
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapStudentManage); err != nil {
		return err
	}
	var in dto.StudentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	if err := h.checkClassSection(sc, in.StudentClassID, in.StudentSectionID); err != nil {
		return err
	}

	m := dto.StudentCreateDTOToModel(in, sc.BranchID)
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "admission no sudah terdaftar di branch ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /students/:id)
// -----------------------------------------
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapStudentManage); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.StudentUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var m studentmodel.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.StudentBranchID); err != nil {
		return err
	}
	if err := h.checkClassSection(sc, in.StudentClassID, in.StudentSectionID); err != nil {
		return err
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Delete (DELETE /students/:id) — soft delete
// -----------------------------------------
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapStudentManage); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m studentmodel.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.StudentBranchID); err != nil {
		return err
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": id})
}

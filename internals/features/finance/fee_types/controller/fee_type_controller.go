// file: internals/features/finance/fee_types/controller/fee_type_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/finance/fee_types/dto"
	feetypemodel "schoolku_backend/internals/features/finance/fee_types/model"
	feemodel "schoolku_backend/internals/features/finance/fees/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FeeTypeHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeTypeHandler(db *gorm.DB) *FeeTypeHandler {
	return &FeeTypeHandler{DB: db, Validator: validator.New()}
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
// List (GET /fee-types)
// -----------------------------------------
func (h *FeeTypeHandler) List(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeView); err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&feetypemodel.FeeType{}).Where("fee_type_branch_id = ?", sc.BranchID)
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Where("fee_type_name ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("is_active")); v != "" {
		q = q.Where("fee_type_is_active = ?", v == "true")
	}
	if v := strings.TrimSpace(c.Query("frequency")); v != "" {
		q = q.Where("fee_type_frequency = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "fee_type_created_at",
		"name":       "fee_type_name",
		"amount":     "fee_type_amount",
	}
	var list []feetypemodel.FeeType
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToFeeTypeResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Detail (GET /fee-types/:id)
// -----------------------------------------
func (h *FeeTypeHandler) GetByID(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeView); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m feetypemodel.FeeType
	if err := h.DB.First(&m, "fee_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.FeeTypeBranchID); err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToFeeTypeResponse(m))
}

// -----------------------------------------
// Create (POST /fee-types)
// -----------------------------------------
func (h *FeeTypeHandler) Create(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeTypeManage); err != nil {
		return err
	}
	var in dto.FeeTypeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	if in.FeeTypeApplicableTo == string(feetypemodel.ApplicableClass) && in.FeeTypeClassID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id wajib untuk applicable_to=class")
	}

	m := dto.FeeTypeCreateDTOToModel(in, sc.BranchID)
	if err := h.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nama fee type sudah dipakai di branch ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee type created", dto.ToFeeTypeResponse(m))
}

// -----------------------------------------
// Update (PUT/PATCH /fee-types/:id)
// Perubahan amount TIDAK menyentuh fee yang sudah dialokasikan —
// amount tersalin (snapshot) saat alokasi.
// -----------------------------------------
func (h *FeeTypeHandler) Update(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeTypeManage); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.FeeTypeUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var m feetypemodel.FeeType
	if err := h.DB.First(&m, "fee_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.FeeTypeBranchID); err != nil {
		return err
	}
	dto.ApplyFeeTypeUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "nama fee type sudah dipakai di branch ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee type updated", dto.ToFeeTypeResponse(m))
}

// -----------------------------------------
// Delete (DELETE /fee-types/:id)
// Ditolak 409 selama masih ada fee yang mereferensikan fee type ini.
// -----------------------------------------
func (h *FeeTypeHandler) Delete(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeTypeManage); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m feetypemodel.FeeType
	if err := h.DB.First(&m, "fee_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee type not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.FeeTypeBranchID); err != nil {
		return err
	}

	var refCount int64
	if err := h.DB.Model(&feemodel.Fee{}).
		Where("fee_fee_type_id = ?", id).
		Count(&refCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if refCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"fee type masih dipakai oleh fee yang sudah dialokasikan")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "fee type deleted", fiber.Map{"fee_type_id": id})
}

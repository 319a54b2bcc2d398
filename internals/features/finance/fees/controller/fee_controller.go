// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	"schoolku_backend/internals/features/finance/fees/dto"
	feemodel "schoolku_backend/internals/features/finance/fees/model"
	feeservice "schoolku_backend/internals/features/finance/fees/service"
	paymentmodel "schoolku_backend/internals/features/finance/payments/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type FeeHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeHandler(db *gorm.DB) *FeeHandler {
	return &FeeHandler{DB: db, Validator: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
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

// map error service → status HTTP
func serviceError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	switch {
	case errors.Is(err, feeservice.ErrFeeNotFound),
		errors.Is(err, feeservice.ErrFeeTypeNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, feeservice.ErrFeeAlreadyPaid),
		errors.Is(err, feeservice.ErrExceedsRemaining),
		errors.Is(err, feeservice.ErrInvalidAmount),
		errors.Is(err, feeservice.ErrInvalidMethod),
		errors.Is(err, feeservice.ErrFeeTypeInactive),
		errors.Is(err, feeservice.ErrNoTargets):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// -----------------------------------------
// List (GET /fees)
// Filter: search (nama/admission siswa), status, class_id, fee_type_id,
// student_id, academic_year, term, due_from, due_to, overdue_only.
// -----------------------------------------
func (h *FeeHandler) List(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeView); err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&feemodel.Fee{}).Where("fees.fee_branch_id = ?", sc.BranchID)

	if v := strings.TrimSpace(c.Query("search")); v != "" {
		q = q.Joins("JOIN students ON students.student_id = fees.fee_student_id").
			Where("(students.student_name ILIKE ? OR students.student_admission_no ILIKE ?)",
				"%"+v+"%", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("class_id")); v != "" {
		q = q.Where("fees.fee_student_id IN (SELECT student_id FROM students WHERE student_class_id = ?)", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("fees.fee_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("fee_type_id")); v != "" {
		q = q.Where("fees.fee_fee_type_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		q = q.Where("fees.fee_student_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("academic_year")); v != "" {
		q = q.Where("fees.fee_academic_year = ?", v)
	}
	if v := strings.TrimSpace(c.Query("term")); v != "" {
		q = q.Where("fees.fee_term = ?", v)
	}
	if v := strings.TrimSpace(c.Query("due_from")); v != "" {
		q = q.Where("fees.fee_due_date >= ?", v)
	}
	if v := strings.TrimSpace(c.Query("due_to")); v != "" {
		q = q.Where("fees.fee_due_date <= ?", v)
	}
	if c.Query("overdue_only") == "true" {
		// predikat due date + status, bukan cuma flag tersimpan — fee yang
		// lewat jatuh tempo tapi belum disapu scheduler tetap ikut
		q = q.Where("fees.fee_status <> ? AND fees.fee_due_date IS NOT NULL AND fees.fee_due_date < ?",
			feemodel.FeeStatusPaid, time.Now())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "fees.fee_created_at",
		"due_date":   "fees.fee_due_date",
		"amount":     "fees.fee_amount",
		"status":     "fees.fee_status",
	}
	var list []feemodel.Fee
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToFeeResponses(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Detail (GET /fees/:id)
// -----------------------------------------
func (h *FeeHandler) GetByID(c *fiber.Ctx) error {
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

	var m feemodel.Fee
	if err := h.DB.First(&m, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.FeeBranchID); err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToFeeResponse(m))
}

// -----------------------------------------
// Assign (POST /fees) — alokasi massal
// -----------------------------------------
func (h *FeeHandler) Assign(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeAssign); err != nil {
		return err
	}
	var in dto.FeeAssignDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	if len(in.StudentIDs) == 0 && in.ClassID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_ids atau class_id wajib diisi")
	}

	res, err := feeservice.AssignFees(h.DB, sc, feeservice.AssignInput{
		FeeTypeID:    in.FeeTypeID,
		StudentIDs:   in.StudentIDs,
		ClassID:      in.ClassID,
		AcademicYear: in.AcademicYear,
		Term:         in.Term,
		DueDate:      in.DueDate,
		Discount:     in.Discount,
		Note:         in.Note,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return helper.JsonCreated(c, "fees assigned", res)
}

// -----------------------------------------
// Collect (POST /fees/:id/collect) — terima pembayaran
// -----------------------------------------
func (h *FeeHandler) Collect(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeCollect); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.FeeCollectDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	pay, fee, err := feeservice.Collect(h.DB, sc, feeservice.CollectInput{
		FeeID:     id,
		Amount:    in.Amount,
		Method:    in.Method,
		Reference: in.TransactionID,
		Note:      in.Note,
		Fine:      in.Fine,
		Discount:  in.Discount,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return helper.JsonCreated(c, "payment collected", fiber.Map{
		"payment": pay,
		"fee":     dto.ToFeeResponse(*fee),
	})
}

// -----------------------------------------
// Adjust (PATCH /fees/:id) — ubah fine/discount/due date.
// Status dihitung ulang lewat jalur yang sama dengan collect.
// -----------------------------------------
func (h *FeeHandler) Adjust(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeAssign); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.FeeAdjustDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var m feemodel.Fee
	if err := h.DB.First(&m, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.FeeBranchID); err != nil {
		return err
	}
	if m.FeeStatus == feemodel.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "fee sudah lunas, tidak bisa diubah")
	}

	if in.Fine != nil {
		m.FeeFine = *in.Fine
	}
	if in.Discount != nil {
		m.FeeDiscount = *in.Discount
	}
	if in.DueDate != nil {
		m.FeeDueDate = in.DueDate
	}
	if in.Note != nil {
		m.FeeNote = in.Note
	}
	feeservice.RecomputeStatus(&m, time.Now())
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "fee updated", dto.ToFeeResponse(m))
}

// -----------------------------------------
// Delete (DELETE /fees/:id)
// Ditolak 409 kalau sudah ada payment tercatat.
// -----------------------------------------
func (h *FeeHandler) Delete(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeAssign); err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m feemodel.Fee
	if err := h.DB.First(&m, "fee_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, m.FeeBranchID); err != nil {
		return err
	}

	var payCount int64
	if err := h.DB.Model(&paymentmodel.Payment{}).
		Where("payment_fee_id = ?", id).
		Count(&payCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if payCount > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "fee sudah punya pembayaran tercatat")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "fee deleted", fiber.Map{"fee_id": id})
}

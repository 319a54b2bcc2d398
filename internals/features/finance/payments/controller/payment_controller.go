// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	feemodel "schoolku_backend/internals/features/finance/fees/model"
	feeservice "schoolku_backend/internals/features/finance/fees/service"
	"schoolku_backend/internals/features/finance/payments/dto"
	paymentmodel "schoolku_backend/internals/features/finance/payments/model"
	paymentservice "schoolku_backend/internals/features/finance/payments/service"
	studentmodel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type PaymentHandler struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db, Validator: validator.New()}
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
// List (GET /payments)
// -----------------------------------------
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeView); err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&paymentmodel.Payment{}).Where("payment_branch_id = ?", sc.BranchID)
	if v := strings.TrimSpace(c.Query("fee_id")); v != "" {
		q = q.Where("payment_fee_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		q = q.Where("payment_student_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("payment_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("method")); v != "" {
		q = q.Where("payment_method = ?", v)
	}
	if v := strings.TrimSpace(c.Query("receipt_no")); v != "" {
		q = q.Where("payment_receipt_no = ?", v)
	}
	if v := strings.TrimSpace(c.Query("date_from")); v != "" {
		q = q.Where("payment_paid_at >= ?", v)
	}
	if v := strings.TrimSpace(c.Query("date_to")); v != "" {
		q = q.Where("payment_paid_at <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "payment_created_at",
		"paid_at":    "payment_paid_at",
		"amount":     "payment_amount",
	}
	var list []paymentmodel.Payment
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", list,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// -----------------------------------------
// Checkout online (POST /payments/checkout)
// Buat payment pending + transaksi Snap; fee baru tersentuh saat
// notifikasi settlement masuk.
// -----------------------------------------
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapFeeCollect); err != nil {
		return err
	}
	var in dto.OnlineCheckoutDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validator.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var fee feemodel.Fee
	if err := h.DB.First(&fee, "fee_id = ?", in.FeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "fee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := helperAuth.EnsureBranch(sc, fee.FeeBranchID); err != nil {
		return err
	}
	if fee.FeeStatus == feemodel.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "fee sudah lunas")
	}
	if in.Amount > feeservice.Remaining(&fee) {
		return helper.JsonError(c, fiber.StatusBadRequest, "jumlah melebihi sisa tagihan")
	}

	var student studentmodel.Student
	if err := h.DB.First(&student, "student_id = ?", fee.FeeStudentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	orderID := "FEE-" + uuid.NewString()
	pay := paymentmodel.Payment{
		PaymentBranchID:       fee.FeeBranchID,
		PaymentFeeID:          fee.FeeID,
		PaymentStudentID:      fee.FeeStudentID,
		PaymentAmount:         in.Amount,
		PaymentMethod:         paymentmodel.MethodOnline,
		PaymentStatus:         paymentmodel.PaymentStatusPending,
		PaymentReceiptNo:      feeservice.NewReceiptNo(),
		PaymentGatewayOrderID: &orderID,
	}
	if err := h.DB.Create(&pay).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, redirectURL, err := paymentservice.CreateSnapTransaction(paymentservice.CheckoutInput{
		OrderID:     orderID,
		Amount:      in.Amount,
		StudentName: student.StudentName,
		FeeLabel:    "Pembayaran tagihan " + fee.FeeAcademicYear + " " + fee.FeeTerm,
	})
	if err != nil {
		// transaksi gateway gagal dibuat — payment jangan menggantung pending
		_ = feeservice.MarkPaymentFailed(h.DB, pay.PaymentID)
		return helper.JsonError(c, fiber.StatusBadGateway, "gagal membuat transaksi gateway: "+err.Error())
	}

	pay.PaymentGatewayToken = &token
	if err := h.DB.Save(&pay).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "checkout created", dto.OnlineCheckoutResponse{
		PaymentID:   pay.PaymentID,
		OrderID:     orderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

// -----------------------------------------
// Webhook notifikasi gateway (POST /public/payments/notification)
// Settlement diterapkan lewat jalur transaksi+lock yang sama dengan
// collect kasir. Selalu balas 200 supaya gateway berhenti retry
// untuk order yang memang tidak dikenal.
// -----------------------------------------
func (h *PaymentHandler) GatewayNotification(c *fiber.Ctx) error {
	var in dto.GatewayNotificationDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if strings.TrimSpace(in.OrderID) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id kosong")
	}

	var pay paymentmodel.Payment
	if err := h.DB.First(&pay, "payment_gateway_order_id = ?", in.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "order tidak dikenal, diabaikan", fiber.Map{"order_id": in.OrderID})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	meta := datatypes.JSONMap{
		"transaction_status": in.TransactionStatus,
		"fraud_status":       in.FraudStatus,
		"payment_type":       in.PaymentType,
		"gross_amount":       in.GrossAmount,
		"notified_at":        time.Now().Format(time.RFC3339),
	}
	// best-effort — settlement tetap jalan walau meta gagal tersimpan
	if err := h.DB.Model(&pay).Update("payment_meta", meta).Error; err != nil {
		log.Printf("[ERROR] simpan payment_meta order=%s: %v", in.OrderID, err)
	}

	switch paymentservice.SettlementStatus(in.TransactionStatus, in.FraudStatus) {
	case "completed":
		if _, _, err := feeservice.ApplyCompletedPayment(h.DB, pay.PaymentID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "settlement diterapkan", fiber.Map{"order_id": in.OrderID})
	case "failed":
		if err := feeservice.MarkPaymentFailed(h.DB, pay.PaymentID); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "payment ditandai gagal", fiber.Map{"order_id": in.OrderID})
	}
	return helper.JsonOK(c, "status pending, menunggu settlement", fiber.Map{"order_id": in.OrderID})
}

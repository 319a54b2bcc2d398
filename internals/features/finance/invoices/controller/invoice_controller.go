// file: internals/features/finance/invoices/controller/invoice_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	invoiceservice "schoolku_backend/internals/features/finance/invoices/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type InvoiceHandler struct {
	DB *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{DB: db}
}

// -----------------------------------------
// Invoice siswa (GET /invoices/student/:id)
// -----------------------------------------
func (h *InvoiceHandler) StudentInvoice(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapInvoiceView); err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	inv, err := invoiceservice.BuildInvoice(h.DB, sc, id,
		c.Query("academic_year"), c.Query("term"))
	if err != nil {
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			return helper.JsonError(c, fe.Code, fe.Message)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		case errors.Is(err, invoiceservice.ErrNoFees):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", inv)
}

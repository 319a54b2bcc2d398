// file: internals/features/finance/reports/controller/report_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	reportservice "schoolku_backend/internals/features/finance/reports/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{DB: db}
}

func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now

	if v := strings.TrimSpace(c.Query("from")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from: format tanggal harus YYYY-MM-DD")
		}
		from = t
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to: format tanggal harus YYYY-MM-DD")
		}
		// inklusif sampai akhir hari
		to = t.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "rentang tanggal tidak valid")
	}
	return from, to, nil
}

// -----------------------------------------
// Dispatcher (GET /reports?report_type=)
// -----------------------------------------
func (h *ReportHandler) Run(c *fiber.Ctx) error {
	switch strings.TrimSpace(c.Query("report_type")) {
	case "collection_summary":
		return h.Collections(c)
	case "outstanding_fees":
		return h.Outstanding(c)
	case "fee_type_analysis":
		return h.FeeTypes(c)
	}
	return helper.JsonError(c, fiber.StatusBadRequest,
		"report_type harus salah satu dari: collection_summary, outstanding_fees, fee_type_analysis")
}

// -----------------------------------------
// Rekap penerimaan (GET /reports/collections?from=&to=&format=)
// -----------------------------------------
func (h *ReportHandler) Collections(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapReportView); err != nil {
		return err
	}
	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}

	rows, err := reportservice.CollectionSummary(h.DB, sc.BranchID, from, to)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if c.Query("format") == "xlsx" {
		buf, err := reportservice.ExportCollectionXLSX(rows)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		name := reportservice.ExportFilename("collections", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
		return c.Send(buf.Bytes())
	}

	var grandTotal int64
	for _, r := range rows {
		grandTotal += r.TotalAmount
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"from":        from,
		"to":          to,
		"rows":        rows,
		"grand_total": grandTotal,
	})
}

// -----------------------------------------
// Tunggakan (GET /reports/outstanding?format=)
// -----------------------------------------
func (h *ReportHandler) Outstanding(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapReportView); err != nil {
		return err
	}

	rows, err := reportservice.OutstandingFees(h.DB, sc.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if c.Query("format") == "xlsx" {
		buf, err := reportservice.ExportOutstandingXLSX(rows)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		name := reportservice.ExportFilename("outstanding", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
		return c.Send(buf.Bytes())
	}

	var totalRemaining int64
	for _, r := range rows {
		totalRemaining += r.Remaining
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"rows":            rows,
		"total_remaining": totalRemaining,
	})
}

// -----------------------------------------
// Analisis fee type (GET /reports/fee-types)
// -----------------------------------------
func (h *ReportHandler) FeeTypes(c *fiber.Ctx) error {
	sc, err := helperAuth.ScopeFromLocals(c)
	if err != nil {
		return err
	}
	if err := helperAuth.EnsureCapability(sc, constants.CapReportView); err != nil {
		return err
	}

	rows, err := reportservice.FeeTypeAnalysis(h.DB, sc.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", fiber.Map{"rows": rows})
}

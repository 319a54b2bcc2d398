// file: internals/features/finance/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceLine struct {
	FeeID        uuid.UUID  `json:"fee_id"`
	FeeTypeName  string     `json:"fee_type_name"`
	AcademicYear string     `json:"academic_year,omitempty"`
	Term         string     `json:"term,omitempty"`
	Amount       int64      `json:"amount"`
	Fine         int64      `json:"fine"`
	Discount     int64      `json:"discount"`
	TotalDue     int64      `json:"total_due"`
	Paid         int64      `json:"paid"`
	Remaining    int64      `json:"remaining"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date,omitempty"`
}

type InvoiceSummary struct {
	TotalAmount   int64 `json:"total_amount"`
	TotalFine     int64 `json:"total_fine"`
	TotalDiscount int64 `json:"total_discount"`
	TotalDue      int64 `json:"total_due"`
	TotalPaid     int64 `json:"total_paid"`
	// total_balance = total_due - total_paid (identitas yang diuji)
	TotalBalance int64 `json:"total_balance"`
}

type InvoiceResponse struct {
	InvoiceNo      string         `json:"invoice_no"`
	GeneratedAt    time.Time      `json:"generated_at"`
	BranchName     string         `json:"branch_name"`
	StudentID      uuid.UUID      `json:"student_id"`
	StudentName    string         `json:"student_name"`
	AdmissionNo    string         `json:"admission_no"`
	Lines          []InvoiceLine  `json:"lines"`
	Summary        InvoiceSummary `json:"summary"`
	BalanceInWords string         `json:"balance_in_words"`
}

// file: internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	feemodel "schoolku_backend/internals/features/finance/fees/model"
	feeservice "schoolku_backend/internals/features/finance/fees/service"
)

type FeeAssignDTO struct {
	FeeTypeID    uuid.UUID   `json:"fee_type_id" validate:"required"`
	StudentIDs   []uuid.UUID `json:"student_ids,omitempty" validate:"omitempty,min=1,dive,required"`
	ClassID      *uuid.UUID  `json:"class_id,omitempty"`
	AcademicYear string      `json:"academic_year,omitempty" validate:"omitempty,max=9"`
	Term         string      `json:"term,omitempty" validate:"omitempty,max=20"`
	DueDate      *time.Time  `json:"due_date,omitempty"`
	Discount     int64       `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Note         *string     `json:"note,omitempty" validate:"omitempty,max=255"`
}

type FeeCollectDTO struct {
	Amount        int64   `json:"amount" validate:"required,gt=0"`
	Method        string  `json:"payment_method" validate:"required,oneof=cash card bank_transfer upi cheque online"`
	TransactionID *string `json:"transaction_id,omitempty" validate:"omitempty,max=100"`
	Fine          *int64  `json:"fine,omitempty" validate:"omitempty,gte=0"`
	Discount      *int64  `json:"discount,omitempty" validate:"omitempty,gte=0"`
	Note          *string `json:"remarks,omitempty" validate:"omitempty,max=255"`
}

type FeeAdjustDTO struct {
	Fine     *int64     `json:"fine,omitempty" validate:"omitempty,gte=0"`
	Discount *int64     `json:"discount,omitempty" validate:"omitempty,gte=0"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Note     *string    `json:"note,omitempty" validate:"omitempty,max=255"`
}

type FeeResponse struct {
	FeeID           uuid.UUID  `json:"fee_id"`
	FeeBranchID     uuid.UUID  `json:"fee_branch_id"`
	FeeStudentID    uuid.UUID  `json:"fee_student_id"`
	FeeFeeTypeID    uuid.UUID  `json:"fee_fee_type_id"`
	FeeAcademicYear string     `json:"fee_academic_year,omitempty"`
	FeeTerm         string     `json:"fee_term,omitempty"`
	FeeAmount       int64      `json:"fee_amount"`
	FeeFine         int64      `json:"fee_fine"`
	FeeDiscount     int64      `json:"fee_discount"`
	FeePaid         int64      `json:"fee_paid_amount"`
	FeeTotalDue     int64      `json:"fee_total_due"`
	FeeRemaining    int64      `json:"fee_remaining"`
	FeeStatus       string     `json:"fee_status"`
	FeeDueDate      *time.Time `json:"fee_due_date,omitempty"`
	FeeNote         *string    `json:"fee_note,omitempty"`
	FeeCreatedAt    time.Time  `json:"fee_created_at"`
	FeeUpdatedAt    time.Time  `json:"fee_updated_at"`
}

func ToFeeResponse(m feemodel.Fee) FeeResponse {
	return FeeResponse{
		FeeID:           m.FeeID,
		FeeBranchID:     m.FeeBranchID,
		FeeStudentID:    m.FeeStudentID,
		FeeFeeTypeID:    m.FeeFeeTypeID,
		FeeAcademicYear: m.FeeAcademicYear,
		FeeTerm:         m.FeeTerm,
		FeeAmount:       m.FeeAmount,
		FeeFine:         m.FeeFine,
		FeeDiscount:     m.FeeDiscount,
		FeePaid:         m.FeePaidAmount,
		FeeTotalDue:     feeservice.TotalDue(&m),
		FeeRemaining:    feeservice.Remaining(&m),
		FeeStatus:       string(m.FeeStatus),
		FeeDueDate:      m.FeeDueDate,
		FeeNote:         m.FeeNote,
		FeeCreatedAt:    m.FeeCreatedAt,
		FeeUpdatedAt:    m.FeeUpdatedAt,
	}
}

func ToFeeResponses(list []feemodel.Fee) []FeeResponse {
	out := make([]FeeResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToFeeResponse(v))
	}
	return out
}

// file: internals/features/finance/invoices/service/invoice_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feetypemodel "schoolku_backend/internals/features/finance/fee_types/model"
	feemodel "schoolku_backend/internals/features/finance/fees/model"
	feeservice "schoolku_backend/internals/features/finance/fees/service"
	"schoolku_backend/internals/features/finance/invoices/dto"
	branchmodel "schoolku_backend/internals/features/school/branches/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var ErrNoFees = errors.New("siswa belum punya tagihan")

// BuildInvoice: susun invoice konsolidasi tagihan satu siswa, opsional
// difilter tahun ajaran/term. Murni baca — tidak mengubah status apa pun.
func BuildInvoice(db *gorm.DB, sc helperAuth.Scope, studentID uuid.UUID, academicYear, term string) (*dto.InvoiceResponse, error) {
	var student studentmodel.Student
	if err := db.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	if err := helperAuth.EnsureBranch(sc, student.StudentBranchID); err != nil {
		return nil, err
	}

	q := db.Where("fee_student_id = ?", studentID)
	if academicYear != "" {
		q = q.Where("fee_academic_year = ?", academicYear)
	}
	if term != "" {
		q = q.Where("fee_term = ?", term)
	}

	var fees []feemodel.Fee
	if err := q.Order("fee_created_at ASC").Find(&fees).Error; err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return nil, ErrNoFees
	}

	// nama fee type untuk tiap baris
	typeIDs := make([]uuid.UUID, 0, len(fees))
	for _, f := range fees {
		typeIDs = append(typeIDs, f.FeeFeeTypeID)
	}
	var types []feetypemodel.FeeType
	if err := db.Where("fee_type_id IN ?", typeIDs).Find(&types).Error; err != nil {
		return nil, err
	}
	typeName := make(map[uuid.UUID]string, len(types))
	for _, t := range types {
		typeName[t.FeeTypeID] = t.FeeTypeName
	}

	var branch branchmodel.Branch
	if err := db.First(&branch, "branch_id = ?", student.StudentBranchID).Error; err != nil {
		return nil, err
	}

	inv := &dto.InvoiceResponse{
		InvoiceNo:   "INV-" + strings.ToUpper(uuid.NewString()[:12]),
		GeneratedAt: time.Now(),
		BranchName:  branch.BranchName,
		StudentID:   student.StudentID,
		StudentName: student.StudentName,
		AdmissionNo: student.StudentAdmissionNo,
	}

	for i := range fees {
		f := &fees[i]
		line := dto.InvoiceLine{
			FeeID:        f.FeeID,
			FeeTypeName:  typeName[f.FeeFeeTypeID],
			AcademicYear: f.FeeAcademicYear,
			Term:         f.FeeTerm,
			Amount:       f.FeeAmount,
			Fine:         f.FeeFine,
			Discount:     f.FeeDiscount,
			TotalDue:     feeservice.TotalDue(f),
			Paid:         f.FeePaidAmount,
			Remaining:    feeservice.Remaining(f),
			Status:       string(f.FeeStatus),
			DueDate:      f.FeeDueDate,
		}
		inv.Lines = append(inv.Lines, line)

		inv.Summary.TotalAmount += line.Amount
		inv.Summary.TotalFine += line.Fine
		inv.Summary.TotalDiscount += line.Discount
		inv.Summary.TotalDue += line.TotalDue
		inv.Summary.TotalPaid += line.Paid
	}
	inv.Summary.TotalBalance = inv.Summary.TotalDue - inv.Summary.TotalPaid

	inv.BalanceInWords = BalanceInWords(inv.Summary.TotalBalance)
	return inv, nil
}

// BalanceInWords: sisa tagihan terbilang, untuk dicetak di kwitansi.
func BalanceInWords(amount int64) string {
	if amount == 0 {
		return "zero"
	}
	return strings.TrimSpace(num2words.Convert(int(amount)))
}

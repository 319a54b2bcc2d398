// file: internals/features/finance/fees/service/status.go
package service

import (
	"time"

	feemodel "schoolku_backend/internals/features/finance/fees/model"
)

// TotalDue: tagihan bersih = amount + fine - discount, tidak pernah negatif.
func TotalDue(f *feemodel.Fee) int64 {
	total := f.FeeAmount + f.FeeFine - f.FeeDiscount
	if total < 0 {
		return 0
	}
	return total
}

// Remaining: sisa yang masih harus dibayar.
func Remaining(f *feemodel.Fee) int64 {
	rem := TotalDue(f) - f.FeePaidAmount
	if rem < 0 {
		return 0
	}
	return rem
}

// RecomputeStatus: SATU-SATUNYA tempat status fee dihitung. Dipanggil
// setiap kali amount/fine/discount/paid/due_date berubah, dan oleh
// sweep harian. paid bersifat terminal — overdue tidak menimpanya.
func RecomputeStatus(f *feemodel.Fee, now time.Time) {
	total := TotalDue(f)

	switch {
	case total > 0 && f.FeePaidAmount >= total:
		f.FeeStatus = feemodel.FeeStatusPaid
		return
	case total == 0:
		// tagihan nol (diskon penuh) langsung lunas
		f.FeeStatus = feemodel.FeeStatusPaid
		return
	}

	if f.FeeDueDate != nil && f.FeeDueDate.Before(now) {
		f.FeeStatus = feemodel.FeeStatusOverdue
		return
	}

	if f.FeePaidAmount > 0 {
		f.FeeStatus = feemodel.FeeStatusPartial
		return
	}
	f.FeeStatus = feemodel.FeeStatusPending
}

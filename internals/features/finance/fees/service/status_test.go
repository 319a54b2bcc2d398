package service

import (
	"testing"
	"time"

	feemodel "schoolku_backend/internals/features/finance/fees/model"
)

func feeWith(amount, fine, discount, paid int64, due *time.Time) *feemodel.Fee {
	return &feemodel.Fee{
		FeeAmount:     amount,
		FeeFine:       fine,
		FeeDiscount:   discount,
		FeePaidAmount: paid,
		FeeDueDate:    due,
	}
}

func TestTotalDue(t *testing.T) {
	cases := []struct {
		name                   string
		amount, fine, discount int64
		want                   int64
	}{
		{"amount saja", 1000, 0, 0, 1000},
		{"plus fine", 1000, 50, 0, 1050},
		{"minus discount", 1000, 0, 200, 800},
		{"fine dan discount", 1000, 50, 200, 850},
		{"discount melebihi total", 100, 0, 500, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := feeWith(tc.amount, tc.fine, tc.discount, 0, nil)
			if got := TotalDue(f); got != tc.want {
				t.Fatalf("TotalDue = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestRecomputeStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	cases := []struct {
		name string
		fee  *feemodel.Fee
		want feemodel.FeeStatus
	}{
		{"belum bayar", feeWith(1000, 0, 0, 0, nil), feemodel.FeeStatusPending},
		{"bayar sebagian", feeWith(1000, 0, 0, 400, nil), feemodel.FeeStatusPartial},
		{"lunas pas", feeWith(1000, 0, 0, 1000, nil), feemodel.FeeStatusPaid},
		{"lunas dengan fine", feeWith(1000, 50, 0, 1050, nil), feemodel.FeeStatusPaid},
		{"bayar amount saja padahal ada fine", feeWith(1000, 50, 0, 1000, nil), feemodel.FeeStatusPartial},
		{"lewat due date belum bayar", feeWith(1000, 0, 0, 0, &past), feemodel.FeeStatusOverdue},
		{"lewat due date bayar sebagian", feeWith(1000, 0, 0, 400, &past), feemodel.FeeStatusOverdue},
		{"lewat due date tapi lunas", feeWith(1000, 0, 0, 1000, &past), feemodel.FeeStatusPaid},
		{"due date masih jauh", feeWith(1000, 0, 0, 0, &future), feemodel.FeeStatusPending},
		{"diskon penuh langsung lunas", feeWith(1000, 0, 1000, 0, nil), feemodel.FeeStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			RecomputeStatus(tc.fee, now)
			if tc.fee.FeeStatus != tc.want {
				t.Fatalf("status = %s, want %s", tc.fee.FeeStatus, tc.want)
			}
		})
	}
}

func TestRecomputeStatusPaidTerminal(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	// lunas lalu due date lewat — tetap paid, bukan overdue
	f := feeWith(1000, 0, 0, 1000, &past)
	RecomputeStatus(f, now)
	if f.FeeStatus != feemodel.FeeStatusPaid {
		t.Fatalf("fee lunas berubah jadi %s setelah due date lewat", f.FeeStatus)
	}
	RecomputeStatus(f, now.Add(48*time.Hour))
	if f.FeeStatus != feemodel.FeeStatusPaid {
		t.Fatalf("status paid harus terminal, dapat %s", f.FeeStatus)
	}
}

func TestRemaining(t *testing.T) {
	f := feeWith(1000, 50, 200, 300, nil)
	if got := Remaining(f); got != 550 {
		t.Fatalf("Remaining = %d, want 550", got)
	}

	f.FeePaidAmount = 850
	if got := Remaining(f); got != 0 {
		t.Fatalf("Remaining lunas = %d, want 0", got)
	}
}

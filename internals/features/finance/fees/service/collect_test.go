package service

import (
	"errors"
	"testing"
	"time"

	feemodel "schoolku_backend/internals/features/finance/fees/model"
)

func int64ptr(v int64) *int64 { return &v }

func TestApplyPayment(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		fee        *feemodel.Fee
		amount     int64
		fine       *int64
		discount   *int64
		wantErr    error
		wantPaid   int64
		wantStatus feemodel.FeeStatus
	}{
		{"bayar sebagian", feeWith(1000, 0, 0, 0, nil), 400, nil, nil, nil, 400, feemodel.FeeStatusPartial},
		{"lunas pas", feeWith(1000, 0, 0, 0, nil), 1000, nil, nil, nil, 1000, feemodel.FeeStatusPaid},
		{"lunas dengan fine 1000+50", feeWith(1000, 0, 0, 0, nil), 1050, int64ptr(50), nil, nil, 1050, feemodel.FeeStatusPaid},
		{"discount diterapkan sebelum validasi", feeWith(1000, 0, 0, 0, nil), 800, nil, int64ptr(200), nil, 800, feemodel.FeeStatusPaid},
		{"nol ditolak", feeWith(1000, 0, 0, 0, nil), 0, nil, nil, ErrInvalidAmount, 0, feemodel.FeeStatusPending},
		{"negatif ditolak", feeWith(1000, 0, 0, 0, nil), -5, nil, nil, ErrInvalidAmount, 0, feemodel.FeeStatusPending},
		{"melebihi sisa ditolak", feeWith(1000, 0, 0, 400, nil), 700, nil, nil, ErrExceedsRemaining, 400, ""},
		{"melebihi sisa setelah fine baru", feeWith(1000, 0, 0, 0, nil), 1100, int64ptr(50), nil, ErrExceedsRemaining, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := *tc.fee
			err := ApplyPayment(tc.fee, tc.amount, tc.fine, tc.discount, now)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if err != nil {
				// fee tidak boleh berubah sama sekali saat ditolak
				if *tc.fee != before {
					t.Fatalf("fee berubah padahal pembayaran ditolak: %+v", tc.fee)
				}
				return
			}
			if tc.fee.FeePaidAmount != tc.wantPaid {
				t.Fatalf("paid_amount = %d, want %d", tc.fee.FeePaidAmount, tc.wantPaid)
			}
			if tc.fee.FeeStatus != tc.wantStatus {
				t.Fatalf("status = %s, want %s", tc.fee.FeeStatus, tc.wantStatus)
			}
		})
	}
}

// Contoh lengkap: amount=1000, fine=50 → bayar 1050 → paid, lalu
// pembayaran 1 berikutnya ditolak tanpa mengubah fee.
func TestApplyPaymentPaidTerminal(t *testing.T) {
	now := time.Now()
	f := feeWith(1000, 0, 0, 0, nil)

	if err := ApplyPayment(f, 1050, int64ptr(50), nil, now); err != nil {
		t.Fatalf("pelunasan 1050 gagal: %v", err)
	}
	if f.FeeStatus != feemodel.FeeStatusPaid {
		t.Fatalf("status = %s, want paid", f.FeeStatus)
	}
	if got := Remaining(f); got != 0 {
		t.Fatalf("sisa setelah lunas = %d, want 0", got)
	}

	before := *f
	if err := ApplyPayment(f, 1, nil, nil, now); !errors.Is(err, ErrFeeAlreadyPaid) {
		t.Fatalf("pembayaran setelah lunas: err = %v, want ErrFeeAlreadyPaid", err)
	}
	if *f != before {
		t.Fatalf("fee lunas berubah karena pembayaran yang ditolak: %+v", f)
	}
}

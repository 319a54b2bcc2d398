// file: internals/features/finance/fees/service/collect.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	feemodel "schoolku_backend/internals/features/finance/fees/model"
	paymentmodel "schoolku_backend/internals/features/finance/payments/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var (
	ErrFeeNotFound      = errors.New("fee tidak ditemukan")
	ErrFeeAlreadyPaid   = errors.New("fee sudah lunas")
	ErrInvalidAmount    = errors.New("jumlah pembayaran harus > 0")
	ErrExceedsRemaining = errors.New("jumlah pembayaran melebihi sisa tagihan")
	ErrInvalidMethod    = errors.New("metode pembayaran tidak dikenal")
)

type CollectInput struct {
	FeeID     uuid.UUID
	Amount    int64
	Method    string
	Reference *string
	Note      *string
	Fine      *int64 // denda tambahan, diterapkan sebelum validasi sisa
	Discount  *int64 // potongan tambahan, idem
}

// ApplyPayment: validasi + terapkan satu pembayaran ke fee, murni
// in-memory. Fine/discount opsional diterapkan sebelum validasi sisa.
// Kalau error, fee TIDAK berubah sama sekali — pemanggil aman
// mengembalikan row apa adanya.
func ApplyPayment(f *feemodel.Fee, amount int64, fine, discount *int64, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if f.FeeStatus == feemodel.FeeStatusPaid {
		return ErrFeeAlreadyPaid
	}

	// validasi pakai salinan dulu — fee asli baru disentuh setelah lolos
	next := *f
	if fine != nil && *fine >= 0 {
		next.FeeFine = *fine
	}
	if discount != nil && *discount >= 0 {
		next.FeeDiscount = *discount
	}
	if amount > Remaining(&next) {
		return ErrExceedsRemaining
	}

	next.FeePaidAmount += amount
	RecomputeStatus(&next, now)
	*f = next
	return nil
}

// Collect: terima pembayaran tunai/offline. Fee dikunci FOR UPDATE di
// dalam transaksi supaya dua kasir yang menagih bersamaan tidak bisa
// sama-sama lolos validasi sisa tagihan. Fine/discount opsional
// diterapkan di dalam kunci yang sama, sebelum validasi.
func Collect(db *gorm.DB, sc helperAuth.Scope, in CollectInput) (*paymentmodel.Payment, *feemodel.Fee, error) {
	if in.Amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	if !paymentmodel.ValidMethod(in.Method) {
		return nil, nil, ErrInvalidMethod
	}

	var (
		pay paymentmodel.Payment
		fee feemodel.Fee
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fee, "fee_id = ?", in.FeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeeNotFound
			}
			return err
		}
		if err := helperAuth.EnsureBranch(sc, fee.FeeBranchID); err != nil {
			return err
		}

		now := time.Now()
		if err := ApplyPayment(&fee, in.Amount, in.Fine, in.Discount, now); err != nil {
			return err
		}

		collector := sc.UserID
		pay = paymentmodel.Payment{
			PaymentBranchID:    fee.FeeBranchID,
			PaymentFeeID:       fee.FeeID,
			PaymentStudentID:   fee.FeeStudentID,
			PaymentAmount:      in.Amount,
			PaymentMethod:      paymentmodel.PaymentMethod(in.Method),
			PaymentStatus:      paymentmodel.PaymentStatusCompleted,
			PaymentReceiptNo:   NewReceiptNo(),
			PaymentReference:   in.Reference,
			PaymentNote:        in.Note,
			PaymentCollectorID: &collector,
			PaymentPaidAt:      &now,
		}
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}
		return tx.Save(&fee).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &pay, &fee, nil
}

// ApplyCompletedPayment: jalur bersama untuk menyelesaikan payment yang
// masih pending (webhook gateway). Payment & fee dikunci dalam satu
// transaksi; idempotent — payment yang sudah completed dilewati.
func ApplyCompletedPayment(db *gorm.DB, paymentID uuid.UUID) (*paymentmodel.Payment, *feemodel.Fee, error) {
	var (
		pay paymentmodel.Payment
		fee feemodel.Fee
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&pay, "payment_id = ?", paymentID).Error; err != nil {
			return err
		}
		if pay.PaymentStatus == paymentmodel.PaymentStatusCompleted {
			// notifikasi gateway bisa datang dobel
			return tx.First(&fee, "fee_id = ?", pay.PaymentFeeID).Error
		}
		if pay.PaymentStatus != paymentmodel.PaymentStatusPending {
			return errors.New("payment tidak dalam status pending")
		}

		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fee, "fee_id = ?", pay.PaymentFeeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFeeNotFound
			}
			return err
		}

		now := time.Now()
		amount := pay.PaymentAmount
		if rem := Remaining(&fee); amount > rem {
			amount = rem
		}

		pay.PaymentStatus = paymentmodel.PaymentStatusCompleted
		pay.PaymentPaidAt = &now
		if err := tx.Save(&pay).Error; err != nil {
			return err
		}

		fee.FeePaidAmount += amount
		RecomputeStatus(&fee, now)
		return tx.Save(&fee).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &pay, &fee, nil
}

// MarkPaymentFailed: tandai payment gateway gagal/expired. Tidak
// menyentuh fee — belum ada dana yang diterapkan.
func MarkPaymentFailed(db *gorm.DB, paymentID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var pay paymentmodel.Payment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&pay, "payment_id = ?", paymentID).Error; err != nil {
			return err
		}
		if pay.PaymentStatus != paymentmodel.PaymentStatusPending {
			return nil
		}
		pay.PaymentStatus = paymentmodel.PaymentStatusFailed
		return tx.Save(&pay).Error
	})
}

// file: internals/features/finance/fees/service/assign.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feetypemodel "schoolku_backend/internals/features/finance/fee_types/model"
	feemodel "schoolku_backend/internals/features/finance/fees/model"
	studentmodel "schoolku_backend/internals/features/school/students/model"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

var (
	ErrFeeTypeNotFound = errors.New("fee type tidak ditemukan")
	ErrFeeTypeInactive = errors.New("fee type sudah nonaktif")
	ErrNoTargets       = errors.New("tidak ada siswa target alokasi")
)

type AssignInput struct {
	FeeTypeID    uuid.UUID
	StudentIDs   []uuid.UUID // eksplisit; atau
	ClassID      *uuid.UUID  // seluruh siswa aktif satu class
	AcademicYear string      // mis. "2026/2027"; boleh kosong untuk one_time
	Term         string      // mis. "ganjil", "term-1"
	DueDate      *time.Time
	Discount     int64
	Note         *string
}

type AssignResult struct {
	Created int         `json:"created"`
	Skipped int         `json:"skipped"`
	FeeIDs  []uuid.UUID `json:"fee_ids"`
}

// AssignFees: alokasikan satu fee type ke banyak siswa sekaligus.
// Amount di-snapshot dari fee type saat ini. Siswa yang sudah punya
// alokasi (fee type + tahun ajaran + term sama) dilewati, bukan
// error — supaya alokasi periodik bisa diulang dengan aman.
func AssignFees(db *gorm.DB, sc helperAuth.Scope, in AssignInput) (*AssignResult, error) {
	var ft feetypemodel.FeeType
	if err := db.First(&ft, "fee_type_id = ?", in.FeeTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeTypeNotFound
		}
		return nil, err
	}
	if err := helperAuth.EnsureBranch(sc, ft.FeeTypeBranchID); err != nil {
		return nil, err
	}
	if !ft.FeeTypeIsActive {
		return nil, ErrFeeTypeInactive
	}

	// honor sasaran fee type
	switch ft.FeeTypeApplicableTo {
	case feetypemodel.ApplicableClass:
		if in.ClassID == nil {
			in.ClassID = ft.FeeTypeClassID
		}
		if ft.FeeTypeClassID != nil && in.ClassID != nil && *in.ClassID != *ft.FeeTypeClassID {
			return nil, errors.New("fee type terikat ke class lain")
		}
	case feetypemodel.ApplicableStudent:
		if len(in.StudentIDs) == 0 {
			return nil, errors.New("fee type per-siswa butuh student_ids eksplisit")
		}
	}

	// kumpulkan target
	targets := make([]uuid.UUID, 0, len(in.StudentIDs))
	if len(in.StudentIDs) > 0 {
		var students []studentmodel.Student
		if err := db.
			Where("student_id IN ? AND student_branch_id = ? AND student_status = ?",
				in.StudentIDs, ft.FeeTypeBranchID, studentmodel.StudentStatusActive).
			Find(&students).Error; err != nil {
			return nil, err
		}
		for _, s := range students {
			targets = append(targets, s.StudentID)
		}
	} else if in.ClassID != nil {
		var students []studentmodel.Student
		if err := db.
			Where("student_class_id = ? AND student_branch_id = ? AND student_status = ?",
				*in.ClassID, ft.FeeTypeBranchID, studentmodel.StudentStatusActive).
			Find(&students).Error; err != nil {
			return nil, err
		}
		for _, s := range students {
			targets = append(targets, s.StudentID)
		}
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	res := &AssignResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		// alokasi existing untuk skip duplikat
		var existing []feemodel.Fee
		if err := tx.
			Where("fee_fee_type_id = ? AND fee_academic_year = ? AND fee_term = ? AND fee_student_id IN ?",
				ft.FeeTypeID, in.AcademicYear, in.Term, targets).
			Find(&existing).Error; err != nil {
			return err
		}
		seen := make(map[uuid.UUID]bool, len(existing))
		for _, f := range existing {
			seen[f.FeeStudentID] = true
		}

		creator := sc.UserID
		for _, sid := range targets {
			if seen[sid] {
				res.Skipped++
				continue
			}
			f := feemodel.Fee{
				FeeBranchID:     ft.FeeTypeBranchID,
				FeeStudentID:    sid,
				FeeFeeTypeID:    ft.FeeTypeID,
				FeeAcademicYear: in.AcademicYear,
				FeeTerm:         in.Term,
				FeeAmount:       ft.FeeTypeAmount,
				FeeDiscount:     in.Discount,
				FeeDueDate:      in.DueDate,
				FeeNote:         in.Note,
				FeeCreatedBy:    &creator,
			}
			RecomputeStatus(&f, time.Now())
			if err := tx.Create(&f).Error; err != nil {
				return err
			}
			res.Created++
			res.FeeIDs = append(res.FeeIDs, f.FeeID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// file: internals/features/finance/reports/service/report_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	paymentmodel "schoolku_backend/internals/features/finance/payments/model"
)

// CollectionMethodRow: penerimaan satu metode pada satu hari.
type CollectionMethodRow struct {
	Day         time.Time `gorm:"column:day" json:"-"`
	Method      string    `gorm:"column:method" json:"method"`
	TxCount     int64     `gorm:"column:tx_count" json:"tx_count"`
	TotalAmount int64     `gorm:"column:total_amount" json:"total_amount"`
}

// CollectionRow: total penerimaan satu hari — SATU baris per tanggal,
// rincian per metode nested.
type CollectionRow struct {
	Day         time.Time             `json:"day"`
	TxCount     int64                 `json:"tx_count"`
	TotalAmount int64                 `json:"total_amount"`
	Methods     []CollectionMethodRow `json:"methods"`
}

// GroupCollectionsByDay: lipat baris per-metode jadi satu baris per
// tanggal. Input harus sudah terurut per hari (query di bawah menjamin).
func GroupCollectionsByDay(rows []CollectionMethodRow) []CollectionRow {
	var out []CollectionRow
	for _, r := range rows {
		if len(out) == 0 || !out[len(out)-1].Day.Equal(r.Day) {
			out = append(out, CollectionRow{Day: r.Day})
		}
		last := &out[len(out)-1]
		last.TxCount += r.TxCount
		last.TotalAmount += r.TotalAmount
		last.Methods = append(last.Methods, r)
	}
	return out
}

// CollectionSummary: rekap pembayaran completed per hari untuk satu
// branch dalam rentang tanggal. Dua pembayaran di hari yang sama selalu
// jatuh ke baris yang sama, apa pun metodenya.
func CollectionSummary(db *gorm.DB, branchID uuid.UUID, from, to time.Time) ([]CollectionRow, error) {
	var rows []CollectionMethodRow
	err := db.Model(&paymentmodel.Payment{}).
		Select("date_trunc('day', payment_paid_at) AS day, payment_method AS method, COUNT(*) AS tx_count, SUM(payment_amount) AS total_amount").
		Where("payment_branch_id = ? AND payment_status = ?", branchID, paymentmodel.PaymentStatusCompleted).
		Where("payment_paid_at >= ? AND payment_paid_at < ?", from, to).
		Group("day, payment_method").
		Order("day ASC, payment_method ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return GroupCollectionsByDay(rows), nil
}

// OutstandingRow: tunggakan per siswa per fee type.
type OutstandingRow struct {
	StudentID    uuid.UUID  `gorm:"column:student_id" json:"student_id"`
	StudentName  string     `gorm:"column:student_name" json:"student_name"`
	AdmissionNo  string     `gorm:"column:admission_no" json:"admission_no"`
	FeeTypeName  string     `gorm:"column:fee_type_name" json:"fee_type_name"`
	AcademicYear string     `gorm:"column:academic_year" json:"academic_year,omitempty"`
	Term         string     `gorm:"column:term" json:"term,omitempty"`
	Status       string     `gorm:"column:status" json:"status"`
	DueDate      *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	Remaining    int64      `gorm:"column:remaining" json:"remaining"`
}

// OutstandingFees: semua fee yang belum lunas, join nama siswa dan
// fee type. remaining dihitung di SQL dengan rumus yang sama dengan
// TotalDue/Remaining di service fees.
func OutstandingFees(db *gorm.DB, branchID uuid.UUID) ([]OutstandingRow, error) {
	var rows []OutstandingRow
	err := db.Table("fees").
		Select(`students.student_id AS student_id,
			students.student_name AS student_name,
			students.student_admission_no AS admission_no,
			fee_types.fee_type_name AS fee_type_name,
			fees.fee_academic_year AS academic_year,
			fees.fee_term AS term,
			fees.fee_status AS status,
			fees.fee_due_date AS due_date,
			GREATEST(fees.fee_amount + fees.fee_fine - fees.fee_discount, 0) - fees.fee_paid_amount AS remaining`).
		Joins("JOIN students ON students.student_id = fees.fee_student_id").
		Joins("JOIN fee_types ON fee_types.fee_type_id = fees.fee_fee_type_id").
		Where("fees.fee_branch_id = ? AND fees.fee_status <> 'paid' AND fees.fee_deleted_at IS NULL", branchID).
		Order("remaining DESC").
		Scan(&rows).Error
	return rows, err
}

// FeeTypeAnalysisRow: efisiensi penagihan per fee type.
type FeeTypeAnalysisRow struct {
	FeeTypeID    uuid.UUID `gorm:"column:fee_type_id" json:"fee_type_id"`
	FeeTypeName  string    `gorm:"column:fee_type_name" json:"fee_type_name"`
	FeeCount     int64     `gorm:"column:fee_count" json:"fee_count"`
	StudentCount int64     `gorm:"column:student_count" json:"student_count"`
	TotalDue     int64     `gorm:"column:total_due" json:"total_due"`
	TotalPaid    int64     `gorm:"column:total_paid" json:"total_paid"`
	Efficiency   float64   `gorm:"column:efficiency" json:"efficiency_pct"`
}

// FeeTypeAnalysis: berapa persen tagihan tiap fee type yang sudah
// tertagih (efficiency = paid/due * 100).
func FeeTypeAnalysis(db *gorm.DB, branchID uuid.UUID) ([]FeeTypeAnalysisRow, error) {
	var rows []FeeTypeAnalysisRow
	err := db.Table("fees").
		Select(`fee_types.fee_type_id AS fee_type_id,
			fee_types.fee_type_name AS fee_type_name,
			COUNT(*) AS fee_count,
			COUNT(DISTINCT fees.fee_student_id) AS student_count,
			SUM(GREATEST(fees.fee_amount + fees.fee_fine - fees.fee_discount, 0)) AS total_due,
			SUM(fees.fee_paid_amount) AS total_paid,
			ROUND(SUM(fees.fee_paid_amount)::numeric * 100
				/ NULLIF(SUM(GREATEST(fees.fee_amount + fees.fee_fine - fees.fee_discount, 0)), 0), 2) AS efficiency`).
		Joins("JOIN fee_types ON fee_types.fee_type_id = fees.fee_fee_type_id").
		Where("fees.fee_branch_id = ? AND fees.fee_deleted_at IS NULL", branchID).
		Group("fee_types.fee_type_id, fee_types.fee_type_name").
		Order("total_due DESC").
		Scan(&rows).Error
	return rows, err
}

// EfficiencyPct: versi in-memory dari rumus efisiensi, dipakai saat
// agregasi sudah ada di tangan.
func EfficiencyPct(totalPaid, totalDue int64) float64 {
	if totalDue <= 0 {
		return 0
	}
	return float64(totalPaid) * 100 / float64(totalDue)
}

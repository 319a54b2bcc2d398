// file: internals/features/finance/fees/scheduler/overdue_scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	feemodel "schoolku_backend/internals/features/finance/fees/model"
)

// SweepOverdueFees: tandai fee pending/partial yang lewat due date
// sebagai overdue. Status paid tidak pernah disentuh. Satu UPDATE
// set-based — bukan loop per baris.
func SweepOverdueFees(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&feemodel.Fee{}).
		Where("fee_status IN ?", []feemodel.FeeStatus{feemodel.FeeStatusPending, feemodel.FeeStatusPartial}).
		Where("fee_due_date IS NOT NULL AND fee_due_date < ?", now).
		Updates(map[string]interface{}{
			"fee_status":     feemodel.FeeStatusOverdue,
			"fee_updated_at": now,
		})
	return res.RowsAffected, res.Error
}

// StartOverdueSweepScheduler: sweep harian jam 00:05 + sekali saat boot
// supaya restart tengah hari tetap konsisten.
func StartOverdueSweepScheduler(db *gorm.DB) *cron.Cron {
	run := func() {
		n, err := SweepOverdueFees(db, time.Now())
		if err != nil {
			log.Printf("[ERROR] overdue sweep gagal: %v", err)
			return
		}
		if n > 0 {
			log.Printf("⏰ overdue sweep: %d fee ditandai overdue", n)
		}
	}

	go run()

	c := cron.New()
	if _, err := c.AddFunc("5 0 * * *", run); err != nil {
		log.Printf("[ERROR] gagal mendaftarkan cron overdue sweep: %v", err)
		return c
	}
	c.Start()
	log.Println("⏰ Overdue sweep scheduler aktif (harian 00:05)")
	return c
}

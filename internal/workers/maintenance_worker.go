package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"apnajourney_backend/internal/logger"
)

// MaintenanceWorker runs the periodic retention sweeps.
type MaintenanceWorker struct {
	db *gorm.DB
}

func NewMaintenanceWorker(db *gorm.DB) *MaintenanceWorker {
	return &MaintenanceWorker{db: db}
}

func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.closeStaleInquiries(ctx)
	go w.purgeExpiredJobs(ctx)
}

// closeStaleInquiries moves inquiries that have sat in resolved for 30
// days to closed, every 6 hours.
func (w *MaintenanceWorker) closeStaleInquiries(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("inquiry sweep stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE inquiries
				SET status = 'closed', updated_at = NOW()
				WHERE status = 'resolved'
				AND resolved_at < NOW() - INTERVAL '30 days'
			`)
			if result.Error != nil {
				logger.WithError(result.Error).Error("inquiry sweep failed")
			} else if result.RowsAffected > 0 {
				logger.Info("closed stale inquiries", "count", result.RowsAffected)
			}
		}
	}
}

// purgeExpiredJobs deletes jobs that expired more than 180 days ago,
// applications included, once a day. Expired jobs are already invisible
// publicly; this is retention only.
func (w *MaintenanceWorker) purgeExpiredJobs(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("job purge stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				DELETE FROM applications
				WHERE job_id IN (
					SELECT id FROM jobs WHERE expires_at < NOW() - INTERVAL '180 days'
				)
			`)
			if result.Error != nil {
				logger.WithError(result.Error).Error("application purge failed")
				continue
			}

			result = w.db.Exec(`DELETE FROM jobs WHERE expires_at < NOW() - INTERVAL '180 days'`)
			if result.Error != nil {
				logger.WithError(result.Error).Error("job purge failed")
			} else if result.RowsAffected > 0 {
				logger.Info("purged expired jobs", "count", result.RowsAffected)
			}
		}
	}
}

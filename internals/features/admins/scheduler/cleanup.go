package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"gradus_backend/internals/features/admins/model"
)

// StartBlacklistCleanupScheduler removes expired blacklist rows once a
// day so the table does not grow unbounded.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			res := db.Where("expired_at < ?", time.Now()).
				Delete(&model.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] token_blacklist: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] removed %d expired blacklist tokens", res.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}

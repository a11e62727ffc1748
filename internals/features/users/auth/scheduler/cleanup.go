package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "asistencia_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler borra periodicamente los tokens del blacklist
// que ya expiraron por si solos.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("[ERROR] limpieza de blacklist: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist: %d tokens vencidos eliminados", res.RowsAffected)
			}
		}
	}()
}

package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateGuestsTable guests tablosunu (invitation_id, slug) ve guest_link benzersiz indeksleriyle oluşturur.
func MigrateGuestsTable(db *gorm.DB) error {
	configslog.SLog.Info("guests tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.Guest{}); err != nil {
		configslog.Log.Error("guests tablosu migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("guests tablosu migrate edildi")
	return nil
}

package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCategoriesTables categories ve sub_categories tablolarını oluşturur.
func MigrateCategoriesTables(db *gorm.DB) error {
	configslog.SLog.Info("categories & sub_categories tabloları migrate ediliyor...")
	if err := db.AutoMigrate(&models.Category{}, &models.SubCategory{}); err != nil {
		configslog.Log.Error("categories & sub_categories tabloları migrate edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info("categories & sub_categories tabloları migrate edildi")
	return nil
}

// Package testdb testler için şema kurulmuş, bellek içi SQLite veritabanı açar.
package testdb

import (
	"testing"

	"undangan.link/configs/configsdatabase"
	"undangan.link/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open her test için ayrı bir bellek içi veritabanı açar ve migrasyonları çalıştırır.
// Tek bağlantı kullanılır; bellek içi SQLite her bağlantıda ayrı bir veritabanıdır.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := configsdatabase.NewGormConfig()
	cfg.Logger = logger.Discard
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), cfg)
	if err != nil {
		t.Fatalf("sqlite açılamadı: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite havuzu alınamadı: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("foreign_keys açılamadı: %v", err)
	}
	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("migrasyon başarısız: %v", err)
	}
	return db
}

// OpenSeeded Open'a ek olarak kategori ve şablon seed'lerini yükler.
func OpenSeeded(t testing.TB) *gorm.DB {
	t.Helper()
	db := Open(t)
	if err := database.CheckAndRunSeeders(db); err != nil {
		t.Fatalf("seed başarısız: %v", err)
	}
	return db
}

package configsdatabase

import (
	"fmt"
	"time"

	"undangan.link/configs/configsenv"
	"undangan.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// NewGormConfig uygulamanın her yerde kullandığı ortak GORM ayarlarını döner.
// TranslateError açık olmalı, repository katmanı gorm.ErrDuplicatedKey'e güveniyor.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         NewGormLogger(200 * time.Millisecond),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// BuildDSN ortam değişkenlerinden PostgreSQL bağlantı cümlesini oluşturur.
func BuildDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		configsenv.GetEnvWithDefault("DB_HOST", "localhost"),
		configsenv.GetEnvInt("DB_PORT", 5432),
		configsenv.GetEnvWithDefault("DB_USER", "postgres"),
		configsenv.GetEnvWithDefault("DB_PASSWORD", ""),
		configsenv.GetEnvWithDefault("DB_NAME", "undangan"),
		configsenv.GetEnvWithDefault("DB_SSLMODE", "disable"),
		configsenv.GetEnvWithDefault("DB_TIMEZONE", "UTC"),
	)
}

// InitDB PostgreSQL bağlantısını açar ve global değişkene atar.
func InitDB() {
	conn, err := gorm.Open(postgres.Open(BuildDSN()), NewGormConfig())
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı havuzu alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(configsenv.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(configsenv.GetEnvInt("DB_MAX_OPEN_CONNS", 50))
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu")
}

// GetDB global veritabanı bağlantısını döner.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("Veritabanı başlatılmadan GetDB çağrıldı")
	}
	return db
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı havuzu alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı")
}

package configsenv

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// LoadEnv .env dosyasını (varsa) bir kez yükler. Dosyanın olmaması hata değildir.
func LoadEnv() {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// GetEnvWithDefault ortam değişkenini okur, boşsa varsayılanı döner.
func GetEnvWithDefault(key, defaultValue string) string {
	LoadEnv()
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt tamsayı ortam değişkeni okur. Geçersiz değerde varsayılan döner.
func GetEnvInt(key string, defaultValue int) int {
	raw := GetEnvWithDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// IsProduction APP_ENV değerine göre üretim ortamında olup olmadığımızı söyler.
func IsProduction() bool {
	return strings.EqualFold(GetEnvWithDefault("APP_ENV", "development"), "production")
}

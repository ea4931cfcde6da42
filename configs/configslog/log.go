package configslog

import (
	"strings"

	"undangan.link/configs/configsenv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log yapılandırılmış alanlarla loglama için kullanılır.
	Log *zap.Logger = zap.NewNop()
	// SLog printf tarzı loglama için kullanılır.
	SLog *zap.SugaredLogger = Log.Sugar()
)

// InitLogger ortam değişkenlerine göre global logger'ları kurar.
// APP_ENV=production ise JSON çıktı, aksi halde renkli konsol çıktısı kullanılır.
func InitLogger() {
	var cfg zap.Config
	if configsenv.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if lvl := configsenv.GetEnvWithDefault("LOG_LEVEL", ""); lvl != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(strings.ToLower(lvl))); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		logger = zap.NewExample()
		logger.Warn("Logger yapılandırılamadı, örnek logger kullanılıyor", zap.Error(err))
	}
	SetLogger(logger)
}

// SetLogger global logger'ları verilen logger ile değiştirir (testlerde zaptest/observer için).
func SetLogger(logger *zap.Logger) {
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını boşaltır.
func SyncLogger() {
	_ = Log.Sync()
}

package configsserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"undangan.link/configs/configsenv"
	"undangan.link/configs/configslog"
	"undangan.link/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewApp gömülü görünümlerle yapılandırılmış Fiber uygulamasını oluşturur.
func NewApp() *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	return fiber.New(fiber.Config{
		AppName:      "undangan.link",
		Views:        engine,
		ErrorHandler: ErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
}

// ErrorHandler handler'lardan dönen yakalanmamış hataları JSON olarak yazar.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Sunucu hatası"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenemedi",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// Start uygulamayı APP_PORT üzerinde dinler, SIGINT/SIGTERM gelince kapatır.
func Start(app *fiber.App) error {
	addr := fmt.Sprintf(":%d", configsenv.GetEnvInt("APP_PORT", 3000))

	errCh := make(chan error, 1)
	go func() {
		configslog.SLog.Infof("Sunucu %s adresinde başlatılıyor", addr)
		errCh <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		configslog.SLog.Infof("%s sinyali alındı, sunucu kapatılıyor", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(ctx)
}

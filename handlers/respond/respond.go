// Package respond servis hatalarını HTTP yanıtlarına çevirir.
package respond

import (
	"errors"
	"strconv"

	"undangan.link/configs/configslog"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Error servis hatasını sınıfına göre 404, 422 veya 500 olarak yazar.
func Error(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  string(services.ErrValidation),
			"fields": verr.Fields,
		})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	configslog.Log.Error("İstek işlenirken beklenmeyen hata",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Sunucu hatası"})
}

// BadRequest gövde veya parametre okunamadığında 400 döner.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// ParamID yol parametresini pozitif bir kimliğe çevirir.
func ParamID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// UserID AuthMiddleware'in yerleştirdiği kullanıcı kimliğini okur.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(UserIDKey).(uint)
	return id
}

// UserIDKey kullanıcı kimliğinin fiber.Ctx Locals anahtarıdır.
const UserIDKey = "userID"

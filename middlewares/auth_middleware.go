package middlewares

import (
	"errors"
	"strconv"

	"undangan.link/configs/configslog"
	"undangan.link/handlers/respond"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserIDHeader harici kimlik doğrulama katmanının kullanıcı kimliğini taşıdığı başlıktır.
// Bu başlık yalnızca güvenilen bir üst proxy tarafından set edilmeli; istemciden gelen değer proxy'de silinmelidir.
const UserIDHeader = "X-User-ID"

// AuthMiddleware X-User-ID başlığındaki kullanıcının var olduğunu doğrular
// ve kimliği Locals içine yazar. Aksi halde 401 döner.
func AuthMiddleware(userService services.IUserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(UserIDHeader)
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return unauthorized(c)
		}

		user, err := userService.GetUserByID(c.UserContext(), uint(id))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return unauthorized(c)
			}
			configslog.Log.Error("AuthMiddleware: kullanıcı yüklenemedi", zap.Uint64("user_id", id), zap.Error(err))
			return respond.Error(c, err)
		}

		c.Locals(respond.UserIDKey, user.ID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum gerekli"})
}

package routes

import (
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// Services rotaların kullandığı servislerdir. Testlerde farklı bağlantıyla kurulabilir.
type Services struct {
	Catalog     services.ICatalogService
	Invitations services.IInvitationService
	Guests      services.IGuestService
	Users       services.IUserService
}

// DefaultServices global veritabanı bağlantısıyla servisleri oluşturur.
func DefaultServices() Services {
	return Services{
		Catalog:     services.NewCatalogService(),
		Invitations: services.NewInvitationService(),
		Guests:      services.NewGuestService(),
		Users:       services.NewUserService(),
	}
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, svc Services) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	registerAuthRoutes(app, svc)
	registerPanelRoutes(app, svc)
	registerPublicRoutes(app, svc)
	registerGuestLinkRoutes(app, svc)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/api/home", fiber.StatusFound)
	})

	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	switch c.Accepts("application/json", "text/html") {
	case "text/html":
		return renderer.NotFound(c, "Halaman tidak ditemukan")
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	}
}

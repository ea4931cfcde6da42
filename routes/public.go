package routes

import (
	public_handlers "undangan.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

func registerPublicRoutes(app *fiber.App, svc Services) {
	catalogHandler := public_handlers.NewCatalogHandler(svc.Catalog)

	api := app.Group("/api")
	api.Get("/home", catalogHandler.Home)
	api.Get("/templates", catalogHandler.Index)
	api.Get("/templates/:category", catalogHandler.Category)
	api.Get("/templates/:category/:template", catalogHandler.Show)

	app.Get("/templates/preview/:template", catalogHandler.Preview)
}

package routes

import (
	link_handlers "undangan.link/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerGuestLinkRoutes misafirlerin kişisel davetiye linklerini tanımlar.
func registerGuestLinkRoutes(app *fiber.App, svc Services) {
	linkHandler := link_handlers.NewGuestLinkHandler(svc.Guests)

	guestLink := app.Group("/u")
	guestLink.Get("/:link", linkHandler.Open)
	guestLink.Post("/:link/rsvp", linkHandler.SubmitRSVP)
}

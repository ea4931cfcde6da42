package routes

import (
	panel_handlers "undangan.link/handlers/panel"
	"undangan.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerPanelRoutes(app *fiber.App, svc Services) {
	invitationHandler := panel_handlers.NewInvitationHandler(svc.Invitations)
	guestHandler := panel_handlers.NewGuestHandler(svc.Guests)
	accountHandler := panel_handlers.NewAccountHandler(svc.Users)

	panelGroup := app.Group("/panel", middlewares.AuthMiddleware(svc.Users))

	invitationGroup := panelGroup.Group("/invitations")
	invitationGroup.Get("/", invitationHandler.ListInvitations)
	invitationGroup.Post("/", invitationHandler.CreateInvitation)
	invitationGroup.Get("/:id", invitationHandler.ShowInvitation)
	invitationGroup.Post("/:id/publish", invitationHandler.PublishInvitation)
	invitationGroup.Post("/:id/expire", invitationHandler.ExpireInvitation)
	invitationGroup.Put("/:id/settings", invitationHandler.UpdateSettings)
	invitationGroup.Delete("/:id", invitationHandler.DeleteInvitation)

	invitationGroup.Get("/:id/guests", guestHandler.ListGuests)
	invitationGroup.Post("/:id/guests", guestHandler.AddGuest)
	invitationGroup.Get("/:id/rsvp-summary", guestHandler.RSVPSummary)

	panelGroup.Delete("/guests/:id", guestHandler.RemoveGuest)
	panelGroup.Delete("/account", accountHandler.DeleteAccount)
}

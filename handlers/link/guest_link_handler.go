package handlers

import (
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/handlers/respond"
	"undangan.link/pkg/renderer"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GuestLinkHandler misafirin kişisel linkiyle açtığı davetiye sayfasını sunar.
type GuestLinkHandler struct {
	guestService services.IGuestService
}

func NewGuestLinkHandler(guestService services.IGuestService) *GuestLinkHandler {
	return &GuestLinkHandler{guestService: guestService}
}

// Open (GET /u/:link)
// Misafiri görüntülemiş olarak işaretler ve davetiyeyi şablonuyla render eder.
func (h *GuestLinkHandler) Open(c *fiber.Ctx) error {
	guest, err := h.guestService.OpenByLink(c.UserContext(), c.Params("link"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return renderer.NotFound(c, "Undangan tidak ditemukan")
		}
		configslog.Log.Error("Open: davetiye açılamadı", zap.String("link", c.Params("link")), zap.Error(err))
		return respond.Error(c, err)
	}

	invitation := guest.Invitation
	componentPath := ""
	if invitation.Template != nil {
		componentPath = invitation.Template.ComponentPath
	}
	view, ok := renderer.ViewFor(componentPath)
	if !ok {
		configslog.Log.Warn("Open: şablon bileşeni kayıtlı değil", zap.String("component_path", componentPath))
	}

	return renderer.Render(c, fiber.StatusOK, view, fiber.Map{
		"Title":       invitation.EventTitle,
		"Template":    invitation.Template,
		"Payload":     services.BuildRenderPayload(invitation, guest),
		"GuestLink":   guest.GuestLink,
		"RSVPEnabled": invitation.RSVPEnabled,
	}, renderer.InvitationLayout)
}

// SubmitRSVP (POST /u/:link/rsvp)
func (h *GuestLinkHandler) SubmitRSVP(c *fiber.Ctx) error {
	var input services.RSVPInput
	if err := c.BodyParser(&input); err != nil {
		configslog.Log.Warn("SubmitRSVP: istek gövdesi okunamadı", zap.Error(err))
		return respond.BadRequest(c, "Geçersiz veri")
	}

	guest, err := h.guestService.SubmitRsvpByLink(c.UserContext(), c.Params("link"), input)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "LCV kaydedildi",
		"guest":   guest,
	})
}

package handlers

import (
	"undangan.link/configs/configslog"
	"undangan.link/handlers/respond"
	"undangan.link/pkg/queryparams"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GuestHandler davetiye sahibinin misafir listesi işlemlerini sunar.
type GuestHandler struct {
	service services.IGuestService
}

func NewGuestHandler(service services.IGuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

// ListGuests (GET /panel/invitations/:id/guests)
// ?status= ile LCV durumuna göre filtrelenir.
func (h *GuestHandler) ListGuests(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz davetiye ID")
	}
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.ListParams{}
	}

	result, err := h.service.ListGuests(c.UserContext(), id, respond.UserID(c), params)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(result)
}

// AddGuest (POST /panel/invitations/:id/guests)
func (h *GuestHandler) AddGuest(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz davetiye ID")
	}
	var input services.AddGuestInput
	if err := c.BodyParser(&input); err != nil {
		configslog.Log.Warn("AddGuest: istek gövdesi okunamadı", zap.Error(err))
		return respond.BadRequest(c, "Geçersiz veri")
	}

	guest, err := h.service.AddGuest(c.UserContext(), id, respond.UserID(c), input)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(guest)
}

// RSVPSummary (GET /panel/invitations/:id/rsvp-summary)
func (h *GuestHandler) RSVPSummary(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz davetiye ID")
	}
	summary, err := h.service.RSVPSummary(c.UserContext(), id, respond.UserID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(summary)
}

// RemoveGuest (DELETE /panel/guests/:id)
func (h *GuestHandler) RemoveGuest(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz misafir ID")
	}
	if err := h.service.RemoveGuest(c.UserContext(), id, respond.UserID(c)); err != nil {
		return respond.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

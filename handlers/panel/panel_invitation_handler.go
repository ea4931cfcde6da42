package handlers

import (
	"undangan.link/configs/configslog"
	"undangan.link/handlers/respond"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InvitationHandler kullanıcı panelindeki davetiye işlemlerini sunar.
type InvitationHandler struct {
	service services.IInvitationService
}

func NewInvitationHandler(service services.IInvitationService) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// invitationResponse davetiyeyi okuma anındaki durumuyla birlikte döner.
type invitationResponse struct {
	*models.Invitation
	EffectiveStatus models.InvitationStatus `json:"effective_status"`
}

func (h *InvitationHandler) present(inv *models.Invitation) invitationResponse {
	return invitationResponse{Invitation: inv, EffectiveStatus: h.service.EffectiveStatus(inv)}
}

type settingsRequest struct {
	Settings map[string]interface{} `json:"settings"`
}

// CreateInvitation (POST /panel/invitations)
func (h *InvitationHandler) CreateInvitation(c *fiber.Ctx) error {
	userID := respond.UserID(c)

	var input services.CreateInvitationInput
	if err := c.BodyParser(&input); err != nil {
		configslog.Log.Warn("CreateInvitation: istek gövdesi okunamadı", zap.Error(err))
		return respond.BadRequest(c, "Geçersiz veri")
	}

	invitation, err := h.service.CreateInvitation(c.UserContext(), userID, input)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.present(invitation))
}

// ListInvitations (GET /panel/invitations)
func (h *InvitationHandler) ListInvitations(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}

	result, err := h.service.ListInvitationsForUser(c.UserContext(), respond.UserID(c), params)
	if err != nil {
		return respond.Error(c, err)
	}
	if invitations, ok := result.Data.([]models.Invitation); ok {
		items := make([]invitationResponse, 0, len(invitations))
		for i := range invitations {
			items = append(items, h.present(&invitations[i]))
		}
		result.Data = items
	}
	return c.JSON(result)
}

// ShowInvitation (GET /panel/invitations/:id)
func (h *InvitationHandler) ShowInvitation(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz davetiye ID")
	}
	invitation, err := h.service.GetInvitationForOwner(c.UserContext(), id, respond.UserID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.present(invitation))
}

// PublishInvitation (POST /panel/invitations/:id/publish)
func (h *InvitationHandler) PublishInvitation(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz davetiye ID")
	}
	invitation, err := h.service.Publish(c.UserContext(), id, respond.UserID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.present(invitation))
}

// ExpireInvitation (POST /panel/invitations/:id/expire)
func (h *InvitationHandler) ExpireInvitation(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz davetiye ID")
	}
	invitation, err := h.service.Expire(c.UserContext(), id, respond.UserID(c))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.present(invitation))
}

// UpdateSettings (PUT /panel/invitations/:id/settings)
func (h *InvitationHandler) UpdateSettings(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz davetiye ID")
	}
	var req settingsRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Geçersiz veri")
	}
	invitation, err := h.service.UpdateSettings(c.UserContext(), id, respond.UserID(c), req.Settings)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.present(invitation))
}

// DeleteInvitation (DELETE /panel/invitations/:id)
func (h *InvitationHandler) DeleteInvitation(c *fiber.Ctx) error {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return respond.BadRequest(c, "Geçersiz davetiye ID")
	}
	if err := h.service.DeleteInvitation(c.UserContext(), id, respond.UserID(c)); err != nil {
		return respond.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

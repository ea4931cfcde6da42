package handlers

import (
	"undangan.link/handlers/respond"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler kullanıcının kendi hesabı üzerindeki işlemlerini sunar.
type AccountHandler struct {
	userService services.IUserService
}

func NewAccountHandler(userService services.IUserService) *AccountHandler {
	return &AccountHandler{userService: userService}
}

type deleteAccountRequest struct {
	Password string `json:"password" form:"password"`
}

// DeleteAccount (DELETE /panel/account)
// Mevcut şifre doğrulanır, davetiyeler ve misafirler hesapla birlikte silinir.
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	var req deleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Geçersiz veri")
	}
	if err := h.userService.DeleteAccount(c.UserContext(), respond.UserID(c), req.Password); err != nil {
		return respond.Error(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

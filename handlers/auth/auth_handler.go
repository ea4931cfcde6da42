package handlers

import (
	"errors"

	"undangan.link/handlers/respond"
	"undangan.link/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler kayıt ve kimlik bilgisi doğrulama uç noktalarını sunar.
// Oturum yönetimi bu servisin dışında, X-User-ID başlığı ile taşınır.
type AuthHandler struct {
	userService services.IUserService
}

func NewAuthHandler(userService services.IUserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type registerRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Register (POST /auth/register)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Geçersiz veri")
	}
	user, err := h.userService.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login (POST /auth/login)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Geçersiz veri")
	}
	user, err := h.userService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return respond.Error(c, err)
	}
	return c.JSON(user)
}

package routes

import (
	auth_handlers "undangan.link/handlers/auth" // İsim çakışmasını önlemek için alias

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, svc Services) {
	authHandler := auth_handlers.NewAuthHandler(svc.Users)
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
}

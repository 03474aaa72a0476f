package handler

import (
	"github.com/gofiber/fiber/v2"
)

// PublicRoutes lists the routes the auth guard bypasses, keyed "METHOD path".
func PublicRoutes() map[string]bool {
	return map[string]bool{
		"POST /auth/signup": true,
		"POST /auth/login":  true,
	}
}

func RegisterRoutes(app *fiber.App, h *AccountHandler, guard fiber.Handler) {
	auth := app.Group("/auth", guard)
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Post("/withdraw", h.Withdraw)
}

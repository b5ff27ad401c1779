package routes

import (
	"FoodiePal-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (ออก token / logout)
func authRoutes(app *fiber.App, ac *controllers.AuthController) {
	app.Post("/jwt", ac.IssueToken)
	app.Post("/logout", ac.Logout)
}

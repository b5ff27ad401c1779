package routes

import (
	"FoodiePal-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// userRoutes สมัครสมาชิกต้องเปิดสาธารณะเสมอ
func userRoutes(app *fiber.App, uc *controllers.UserController) {
	app.Post("/users", uc.CreateUser)
}

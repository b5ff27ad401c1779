package routes

import (
	"FoodiePal-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func orderRoutes(app *fiber.App, oc *controllers.OrderController, guard fiber.Handler) {
	orderRoutes := app.Group("/order-foods")
	orderRoutes.Get("/", oc.GetOrders)
	orderRoutes.Post("/", guard, oc.CreateOrder)
	orderRoutes.Delete("/:id", guard, oc.DeleteOrder)
}

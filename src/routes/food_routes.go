package routes

import (
	"FoodiePal-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// foodRoutes กำหนดเส้นทางสำหรับ Food API
func foodRoutes(app *fiber.App, fc *controllers.FoodController, guard fiber.Handler) {
	app.Get("/all-foods", fc.GetAllFoods)
	app.Get("/all-foods/:id", fc.GetFoodByID)
	app.Get("/top-foods", fc.GetTopFoods)
	app.Get("/search-foods/:foodName", fc.SearchFoods)
	app.Get("/foodsCount", fc.GetFoodsCount)
	app.Get("/added-food", fc.GetAddedFoods)
	app.Get("/added-food/:id", fc.GetFoodByID)

	app.Post("/add-food", guard, fc.AddFood)
	app.Put("/update-food/:id", guard, fc.UpdateFood)
	app.Put("/update-quantity/:id", guard, fc.UpdateQuantity)
	app.Delete("/delete-food/:id", guard, fc.DeleteFood)
}

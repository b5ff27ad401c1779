package routes

import (
	"FoodiePal-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func bookingRoutes(app *fiber.App, bc *controllers.BookingController, guard fiber.Handler) {
	bookingRoutes := app.Group("/bookings")
	bookingRoutes.Post("/", guard, bc.CreateBooking)
	bookingRoutes.Get("/:email", bc.GetBookingsByEmail)
}

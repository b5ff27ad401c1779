package controllers

import (
	"FoodiePal-Backend/src/services/bookings"
	"FoodiePal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type BookingController struct {
	bookings *bookings.Service
}

func NewBookingController(s *bookings.Service) *BookingController {
	return &BookingController{bookings: s}
}

// CreateBooking godoc
// @Summary      Book a table
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Booking document"
// @Success      201  {object}  models.InsertResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /bookings [post]
func (bc *BookingController) CreateBooking(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	result, err := bc.bookings.CreateBooking(c.UserContext(), doc)
	if err != nil {
		return utils.HandleServiceError(c, err, "creating booking")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetBookingsByEmail godoc
// @Summary      List bookings of a customer
// @Tags         bookings
// @Produce      json
// @Param        email  path  string  true  "Customer email"
// @Success      200  {array}   object
// @Failure      500  {object}  models.ErrorResponse
// @Router       /bookings/{email} [get]
func (bc *BookingController) GetBookingsByEmail(c *fiber.Ctx) error {
	result, err := bc.bookings.ListBookingsByEmail(c.UserContext(), pathParam(c, "email"))
	if err != nil {
		return utils.HandleServiceError(c, err, "fetching bookings")
	}
	return c.JSON(result)
}

package controllers

import (
	"FoodiePal-Backend/src/services/orders"
	"FoodiePal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	orders *orders.Service
}

func NewOrderController(s *orders.Service) *OrderController {
	return &OrderController{orders: s}
}

// CreateOrder สร้างคำสั่งซื้อใหม่
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Order document"
// @Success      201  {object}  models.InsertResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /order-foods [post]
func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	result, err := oc.orders.PlaceOrder(c.UserContext(), doc)
	if err != nil {
		return utils.HandleServiceError(c, err, "creating order")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetOrders ดึงรายการคำสั่งซื้อ (กรองด้วย email ถ้ามี)
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        email  query  string  false  "Customer email"
// @Success      200  {array}   object
// @Failure      500  {object}  models.ErrorResponse
// @Router       /order-foods [get]
func (oc *OrderController) GetOrders(c *fiber.Ctx) error {
	result, err := oc.orders.ListOrders(c.UserContext(), c.Query("email"))
	if err != nil {
		return utils.HandleServiceError(c, err, "fetching orders")
	}
	return c.JSON(result)
}

// DeleteOrder godoc
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "Order ID"
// @Success      200  {object}  models.DeleteResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /order-foods/{id} [delete]
func (oc *OrderController) DeleteOrder(c *fiber.Ctx) error {
	result, err := oc.orders.DeleteOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, "deleting order")
	}
	return c.JSON(result)
}

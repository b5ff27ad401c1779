package controllers

import (
	"FoodiePal-Backend/src/services/users"
	"FoodiePal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	users *users.Service
}

func NewUserController(s *users.Service) *UserController {
	return &UserController{users: s}
}

// CreateUser - สร้างผู้ใช้ใหม่
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "User document"
// @Success      201  {object}  models.InsertResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /users [post]
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	result, err := uc.users.RegisterUser(c.UserContext(), doc)
	if err != nil {
		return utils.HandleServiceError(c, err, "creating user")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

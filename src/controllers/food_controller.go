package controllers

import (
	"FoodiePal-Backend/src/models"
	"FoodiePal-Backend/src/services/foods"
	"FoodiePal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type FoodController struct {
	foods *foods.Service
}

func NewFoodController(s *foods.Service) *FoodController {
	return &FoodController{foods: s}
}

// GetAllFoods godoc
// @Summary      List foods
// @Description  Without name: every food, paginated. With name: exact-name match projected to name/image/category/price, optionally sorted.
// @Tags         foods
// @Produce      json
// @Param        name       query  string  false  "Exact food name"
// @Param        sortField  query  string  false  "Field to sort by (name filter only)"
// @Param        sortOrder  query  string  false  "asc or desc (name filter only)"
// @Param        page       query  int     false  "Page number starting at 0"
// @Param        size       query  int     false  "Page size, 0 for no limit"
// @Success      200  {array}   object
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /all-foods [get]
func (fc *FoodController) GetAllFoods(c *fiber.Ctx) error {
	var params models.FoodListParams
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	if err := validate.Struct(params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	result, err := fc.foods.ListFoods(c.UserContext(), params)
	if err != nil {
		return utils.HandleServiceError(c, err, "fetching foods")
	}
	return c.JSON(result)
}

// GetFoodByID godoc
// @Summary      Get a food by ID
// @Tags         foods
// @Produce      json
// @Param        id   path  string  true  "Food ID"
// @Success      200  {object}  object
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /all-foods/{id} [get]
func (fc *FoodController) GetFoodByID(c *fiber.Ctx) error {
	food, err := fc.foods.GetFoodByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, "fetching food")
	}
	return c.JSON(food)
}

// GetTopFoods godoc
// @Summary      Top 6 foods by order count
// @Tags         foods
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  models.ErrorResponse
// @Router       /top-foods [get]
func (fc *FoodController) GetTopFoods(c *fiber.Ctx) error {
	result, err := fc.foods.TopFoods(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err, "fetching top foods")
	}
	return c.JSON(result)
}

// SearchFoods godoc
// @Summary      Search foods by exact name
// @Tags         foods
// @Produce      json
// @Param        foodName  path  string  true  "Food name"
// @Success      200  {array}   object
// @Failure      500  {object}  models.ErrorResponse
// @Router       /search-foods/{foodName} [get]
func (fc *FoodController) SearchFoods(c *fiber.Ctx) error {
	result, err := fc.foods.SearchFoodsByName(c.UserContext(), pathParam(c, "foodName"))
	if err != nil {
		return utils.HandleServiceError(c, err, "searching foods")
	}
	return c.JSON(result)
}

// GetFoodsCount godoc
// @Summary      Count foods
// @Tags         foods
// @Produce      json
// @Success      200  {object}  models.CountResult
// @Failure      500  {object}  models.ErrorResponse
// @Router       /foodsCount [get]
func (fc *FoodController) GetFoodsCount(c *fiber.Ctx) error {
	n, err := fc.foods.CountFoods(c.UserContext())
	if err != nil {
		return utils.HandleServiceError(c, err, "counting foods")
	}
	return c.JSON(models.CountResult{Count: n})
}

// GetAddedFoods godoc
// @Summary      List foods, optionally by owner email
// @Tags         foods
// @Produce      json
// @Param        email  query  string  false  "Owner email"
// @Success      200  {array}   object
// @Failure      500  {object}  models.ErrorResponse
// @Router       /added-food [get]
func (fc *FoodController) GetAddedFoods(c *fiber.Ctx) error {
	result, err := fc.foods.ListAddedFoods(c.UserContext(), c.Query("email"))
	if err != nil {
		return utils.HandleServiceError(c, err, "fetching added foods")
	}
	return c.JSON(result)
}

// AddFood godoc
// @Summary      Add a food
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Food document"
// @Success      201  {object}  models.InsertResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /add-food [post]
func (fc *FoodController) AddFood(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	result, err := fc.foods.AddFood(c.UserContext(), doc)
	if err != nil {
		return utils.HandleServiceError(c, err, "creating food")
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// UpdateFood godoc
// @Summary      Patch a food (upsert)
// @Description  Sets only the given fields; creates the food when the id does not exist.
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Food ID"
// @Param        body  body  object  true  "Fields to set"
// @Success      200  {object}  models.UpdateResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /update-food/{id} [put]
func (fc *FoodController) UpdateFood(c *fiber.Ctx) error {
	patch, err := parseDocument(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	result, err := fc.foods.UpdateFood(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return utils.HandleServiceError(c, err, "updating food")
	}
	return c.JSON(result)
}

// UpdateQuantity godoc
// @Summary      Record one purchase
// @Description  Decrements quantity and increments count by one.
// @Tags         foods
// @Produce      json
// @Param        id   path  string  true  "Food ID"
// @Success      200  {object}  models.UpdateResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /update-quantity/{id} [put]
func (fc *FoodController) UpdateQuantity(c *fiber.Ctx) error {
	result, err := fc.foods.UpdateQuantity(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, "updating quantity")
	}
	return c.JSON(result)
}

// DeleteFood godoc
// @Summary      Delete a food
// @Tags         foods
// @Produce      json
// @Param        id   path  string  true  "Food ID"
// @Success      200  {object}  models.DeleteResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /delete-food/{id} [delete]
func (fc *FoodController) DeleteFood(c *fiber.Ctx) error {
	result, err := fc.foods.DeleteFood(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err, "deleting food")
	}
	return c.JSON(result)
}

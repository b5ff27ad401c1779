// error_utils.go
package utils

import (
	"errors"
	"log"

	"FoodiePal-Backend/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError แปลง error จาก service เป็น HTTP status ที่เหมาะสม
// error ที่ไม่รู้จักถือเป็น store failure: log แล้วตอบ 500
func HandleServiceError(c *fiber.Ctx, err error, action string) error {
	switch {
	case errors.Is(err, models.ErrInvalidID):
		return HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	case errors.Is(err, models.ErrNotFound):
		return HandleError(c, fiber.StatusNotFound, "Document not found")
	case errors.Is(err, models.ErrUnauthorized):
		return HandleError(c, fiber.StatusUnauthorized, "Unauthorized access")
	}
	log.Printf("❌ %s: %v", action, err)
	return HandleError(c, fiber.StatusInternalServerError, "Error "+action)
}

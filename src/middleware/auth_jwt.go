package middleware

import (
	"log"

	"FoodiePal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT ตรวจ token จาก cookie และเก็บ claims ไว้ใน c.Locals("user")
func AuthJWT(tokens *utils.TokenManager, blacklist *utils.TokenBlacklist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(utils.TokenCookie)
		if tokenStr == "" {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized access")
		}

		claims, err := tokens.ParseJWT(tokenStr)
		if err != nil {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		if jti, ok := claims["jti"].(string); ok {
			listed, err := blacklist.IsTokenBlacklisted(c.UserContext(), jti)
			if err != nil {
				log.Println("❌ Blacklist check failed:", err)
				return utils.HandleError(c, fiber.StatusInternalServerError, "Error verifying token")
			}
			if listed {
				return utils.HandleError(c, fiber.StatusUnauthorized, "Token has been revoked")
			}
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

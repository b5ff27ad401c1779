package controllers

import (
	"log"
	"time"

	"FoodiePal-Backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

type AuthController struct {
	tokens    *utils.TokenManager
	blacklist *utils.TokenBlacklist
	cookie    CookieOptions
}

func NewAuthController(tokens *utils.TokenManager, blacklist *utils.TokenBlacklist, cookie CookieOptions) *AuthController {
	return &AuthController{tokens: tokens, blacklist: blacklist, cookie: cookie}
}

func (ac *AuthController) tokenCookie(value string, expires time.Time) *fiber.Cookie {
	sameSite := fiber.CookieSameSiteStrictMode
	if ac.cookie.Secure {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     utils.TokenCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   ac.cookie.Secure,
		SameSite: sameSite,
	}
}

// IssueToken godoc
// @Summary      Issue an auth cookie
// @Description  Signs the posted identity (e.g. {"email": "..."}) into a 5-hour token stored in an HTTP-only cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Identity claim"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  models.ErrorResponse
// @Router       /jwt [post]
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	identity, err := parseDocument(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	token, _, err := ac.tokens.GenerateJWT(identity)
	if err != nil {
		log.Println("❌ Token generation failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	c.Cookie(ac.tokenCookie(token, time.Now().Add(ac.cookie.TTL)))
	return c.JSON(fiber.Map{"success": true})
}

// Logout godoc
// @Summary      Clear the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if tokenStr := c.Cookies(utils.TokenCookie); tokenStr != "" {
		if claims, err := ac.tokens.ParseJWT(tokenStr); err == nil {
			if jti, left, err := utils.TokenID(claims); err == nil {
				if err := ac.blacklist.BlacklistToken(c.UserContext(), jti, left); err != nil {
					log.Println("⚠️ Failed to blacklist token:", err)
				}
			}
		}
	}

	c.Cookie(ac.tokenCookie("", time.Unix(0, 0)))
	return c.JSON(fiber.Map{"success": true})
}

package controllers

import (
	"errors"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

var validate = validator.New()

var errEmptyBody = errors.New("request body must be a JSON object")

// parseDocument อ่าน JSON body เป็น document แบบไม่มี schema
func parseDocument(c *fiber.Ctx) (bson.M, error) {
	doc := bson.M{}
	if err := c.BodyParser(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errEmptyBody
	}
	return doc, nil
}

// pathParam returns the unescaped route parameter.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

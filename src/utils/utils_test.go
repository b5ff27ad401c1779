package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"FoodiePal-Backend/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDFilter(t *testing.T) {
	id := primitive.NewObjectID()
	filter, err := IDFilter(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, filter["_id"])

	_, err = IDFilter("not-an-id")
	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{models.ErrInvalidID, fiber.StatusBadRequest},
		{fmt.Errorf("get food: %w", models.ErrNotFound), fiber.StatusNotFound},
		{models.ErrUnauthorized, fiber.StatusUnauthorized},
		{fmt.Errorf("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			return HandleServiceError(c, tc.err, "fetching foods")
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode)

		var body models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, tc.status, body.Status)
		assert.NotEmpty(t, body.Message)
	}
}

func TestTokenBlacklistWithoutRedis(t *testing.T) {
	b := NewTokenBlacklist(nil)
	require.NoError(t, b.BlacklistToken(context.Background(), "jti", time.Hour))

	listed, err := b.IsTokenBlacklisted(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, listed)
}

package users

import (
	"context"
	"testing"

	"FoodiePal-Backend/src/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserStoresDocumentAsIs(t *testing.T) {
	ctx := context.Background()
	coll := database.NewMemoryCollection()
	s := NewService(coll, 0, false)

	for i := 0; i < 2; i++ {
		_, err := s.RegisterUser(ctx, bson.M{"email": "a@example.com", "password": "plain"})
		require.NoError(t, err)
	}

	users, err := coll.Find(ctx, bson.M{"email": "a@example.com"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "plain", users[0]["password"])
}

func TestRegisterUserHashesPasswordWhenEnabled(t *testing.T) {
	ctx := context.Background()
	coll := database.NewMemoryCollection()
	s := NewService(coll, 0, true)

	res, err := s.RegisterUser(ctx, bson.M{"email": "a@example.com", "password": "plain"})
	require.NoError(t, err)

	user, err := coll.FindOne(ctx, bson.M{"_id": res.InsertedID})
	require.NoError(t, err)
	hashed, _ := user["password"].(string)
	assert.NotEqual(t, "plain", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("plain")))
}

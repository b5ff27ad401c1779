package foods

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"FoodiePal-Backend/src/database"
	"FoodiePal-Backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errStore = errors.New("server selection timeout")

func newMemoryService(allowNegative bool) (*Service, *database.MemoryCollection) {
	coll := database.NewMemoryCollection()
	return NewService(coll, Options{AllowNegativeQuantity: allowNegative}), coll
}

func insertFood(t *testing.T, s *Service, doc bson.M) string {
	t.Helper()
	res, err := s.AddFood(context.Background(), doc)
	require.NoError(t, err)
	return res.InsertedID.(primitive.ObjectID).Hex()
}

func TestAddFoodThenGetReturnsInsertedFields(t *testing.T) {
	s, _ := newMemoryService(true)
	doc := bson.M{"name": "Pasta", "price": 10.0, "quantity": 5.0, "category": "Italian", "email": "chef@example.com"}
	id := insertFood(t, s, doc)

	food, err := s.GetFoodByID(context.Background(), id)
	require.NoError(t, err)
	for k, v := range doc {
		assert.Equal(t, v, food[k], k)
	}
}

func TestGetFoodByIDErrors(t *testing.T) {
	s, _ := newMemoryService(true)

	_, err := s.GetFoodByID(context.Background(), "xyz")
	assert.ErrorIs(t, err, models.ErrInvalidID)

	_, err = s.GetFoodByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListFoodsProjectionAsymmetry(t *testing.T) {
	s, _ := newMemoryService(true)
	insertFood(t, s, bson.M{"name": "Pasta", "price": 10.0, "quantity": 5.0, "image": "p.jpg", "category": "Italian"})
	insertFood(t, s, bson.M{"name": "Pasta", "price": 12.0, "quantity": 1.0, "image": "p2.jpg", "category": "Italian"})
	insertFood(t, s, bson.M{"name": "Sushi", "price": 20.0, "quantity": 2.0})

	named, err := s.ListFoods(context.Background(), models.FoodListParams{Name: "Pasta", SortField: "price", SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, named, 2)
	assert.Equal(t, 12.0, named[0]["price"])
	allowed := map[string]bool{"_id": true, "name": true, "image": true, "category": true, "price": true}
	for _, doc := range named {
		for k := range doc {
			assert.True(t, allowed[k], "unexpected field %s", k)
		}
	}

	all, err := s.ListFoods(context.Background(), models.FoodListParams{Page: 0, Size: 2})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, doc := range all {
		assert.Contains(t, doc, "quantity")
	}
}

func TestTopFoodsAtMostSixNonIncreasing(t *testing.T) {
	s, _ := newMemoryService(true)
	for i := 0; i < 9; i++ {
		insertFood(t, s, bson.M{"name": fmt.Sprintf("food-%d", i), "count": float64((i * 7) % 10)})
	}

	top, err := s.TopFoods(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 6)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1]["count"], top[i]["count"])
	}
}

func TestUpdateQuantityTwice(t *testing.T) {
	for _, start := range []float64{5, 0, -3} {
		s, _ := newMemoryService(true)
		id := insertFood(t, s, bson.M{"name": "Pasta", "quantity": start, "count": 0.0})

		for i := 0; i < 2; i++ {
			res, err := s.UpdateQuantity(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ModifiedCount)
		}

		food, err := s.GetFoodByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, start-2, food["quantity"])
		assert.Equal(t, 2.0, food["count"])
	}
}

func TestUpdateQuantityStopsAtZeroWhenNegativeDisallowed(t *testing.T) {
	s, _ := newMemoryService(false)
	id := insertFood(t, s, bson.M{"name": "Pasta", "quantity": 1.0, "count": 0.0})

	res, err := s.UpdateQuantity(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	res, err = s.UpdateQuantity(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)

	food, err := s.GetFoodByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, food["quantity"])
	assert.Equal(t, 1.0, food["count"])
}

func TestDeleteMissingFoodIsNotAnError(t *testing.T) {
	s, _ := newMemoryService(true)
	res, err := s.DeleteFood(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
	assert.True(t, res.Acknowledged)
}

func TestUpdateMissingFoodUpserts(t *testing.T) {
	s, coll := newMemoryService(true)
	id := primitive.NewObjectID()

	res, err := s.UpdateFood(context.Background(), id.Hex(), bson.M{"name": "Tacos", "price": 7.0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)

	doc, err := coll.FindOne(context.Background(), bson.M{"_id": id})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": id, "name": "Tacos", "price": 7.0}, doc)
}

func TestListAddedFoodsFilter(t *testing.T) {
	s, _ := newMemoryService(true)
	insertFood(t, s, bson.M{"name": "Pasta", "email": "a@example.com"})
	insertFood(t, s, bson.M{"name": "Sushi", "email": "b@example.com"})

	mine, err := s.ListAddedFoods(context.Background(), "a@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := s.ListAddedFoods(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateQuantityFilterWithFloorPolicy(t *testing.T) {
	coll := new(MockCollection)
	s := NewService(coll, Options{AllowNegativeQuantity: false})
	id := primitive.NewObjectID()

	expectedFilter := bson.M{"_id": id, "quantity": bson.M{"$gt": 0}}
	coll.On("UpdateOne", mock.Anything, expectedFilter, QuantityUpdate(), []*options.UpdateOptions(nil)).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	res, err := s.UpdateQuantity(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
	coll.AssertExpectations(t)
}

func TestUpdateFoodUsesUpsert(t *testing.T) {
	coll := new(MockCollection)
	s := NewService(coll, Options{})
	id := primitive.NewObjectID()

	coll.On("UpdateOne", mock.Anything, bson.M{"_id": id}, bson.M{"$set": bson.M{"price": 9.0}},
		mock.MatchedBy(func(opts []*options.UpdateOptions) bool {
			return len(opts) == 1 && opts[0].Upsert != nil && *opts[0].Upsert
		})).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	_, err := s.UpdateFood(context.Background(), id.Hex(), bson.M{"price": 9.0})
	require.NoError(t, err)
	coll.AssertExpectations(t)
}

func TestStoreErrorsAreWrapped(t *testing.T) {
	coll := new(MockCollection)
	s := NewService(coll, Options{})

	coll.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, errStore)
	coll.On("EstimatedDocumentCount", mock.Anything).Return(int64(0), errStore)
	coll.On("FindOne", mock.Anything, mock.Anything).Return(nil, errStore)

	_, err := s.ListFoods(context.Background(), models.FoodListParams{})
	assert.ErrorIs(t, err, errStore)
	_, err = s.TopFoods(context.Background())
	assert.ErrorIs(t, err, errStore)
	_, err = s.SearchFoodsByName(context.Background(), "Pasta")
	assert.ErrorIs(t, err, errStore)
	_, err = s.CountFoods(context.Background())
	assert.ErrorIs(t, err, errStore)

	_, err = s.GetFoodByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestInvalidIDNeverReachesStore(t *testing.T) {
	coll := new(MockCollection)
	s := NewService(coll, Options{})

	_, err := s.UpdateFood(context.Background(), "bad", bson.M{})
	assert.ErrorIs(t, err, models.ErrInvalidID)
	_, err = s.UpdateQuantity(context.Background(), "bad")
	assert.ErrorIs(t, err, models.ErrInvalidID)
	_, err = s.DeleteFood(context.Background(), "bad")
	assert.ErrorIs(t, err, models.ErrInvalidID)

	coll.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	coll.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything)
}

func TestCountFoods(t *testing.T) {
	s, _ := newMemoryService(true)
	insertFood(t, s, bson.M{"name": "Pasta"})
	insertFood(t, s, bson.M{"name": "Sushi"})

	n, err := s.CountFoods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

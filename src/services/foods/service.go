package foods

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FoodiePal-Backend/src/database"
	"FoodiePal-Backend/src/models"
	"FoodiePal-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Options struct {
	Timeout time.Duration

	// AllowNegativeQuantity lets update-quantity keep decrementing past zero.
	AllowNegativeQuantity bool
}

// Service จัดการ collection อาหาร
type Service struct {
	coll database.Collection
	opts Options
}

func NewService(coll database.Collection, opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	return &Service{coll: coll, opts: opts}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opts.Timeout)
}

// ListFoods - ดึงรายการอาหารตาม name/sort/pagination
func (s *Service) ListFoods(ctx context.Context, params models.FoodListParams) ([]bson.M, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	filter, opts := ListFoodsQuery(params)
	foods, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// TopFoods - อาหารขายดี 6 อันดับแรก
func (s *Service) TopFoods(ctx context.Context) ([]bson.M, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	filter, opts := TopFoodsQuery()
	foods, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("top foods: %w", err)
	}
	return foods, nil
}

// GetFoodByID - ดึงข้อมูลอาหารตาม ID
func (s *Service) GetFoodByID(ctx context.Context, id string) (bson.M, error) {
	filter, err := utils.IDFilter(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	food, err := s.coll.FindOne(ctx, filter)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("food %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get food %s: %w", id, err)
	}
	return food, nil
}

// SearchFoodsByName matches the name exactly.
func (s *Service) SearchFoodsByName(ctx context.Context, name string) ([]bson.M, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	foods, err := s.coll.Find(ctx, bson.M{models.FoodFieldName: name})
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	return foods, nil
}

func (s *Service) CountFoods(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return n, nil
}

// AddFood - เพิ่มอาหารตามที่ส่งมา ไม่มีการ validate
func (s *Service) AddFood(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("add food: %w", err)
	}
	return models.NewInsertResult(res), nil
}

// ListAddedFoods returns the foods owned by email, or all foods when email is empty.
func (s *Service) ListAddedFoods(ctx context.Context, email string) ([]bson.M, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	foods, err := s.coll.Find(ctx, OwnerFilter(email))
	if err != nil {
		return nil, fmt.Errorf("list added foods: %w", err)
	}
	return foods, nil
}

// UpdateFood - $set เฉพาะ field ที่ส่งมา และสร้างใหม่ถ้ายังไม่มี (upsert)
func (s *Service) UpdateFood(ctx context.Context, id string, patch bson.M) (*models.UpdateResult, error) {
	filter, err := utils.IDFilter(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.coll.UpdateOne(ctx, filter, PatchUpdate(patch), options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("update food %s: %w", id, err)
	}
	return models.NewUpdateResult(res), nil
}

// UpdateQuantity นับการสั่งซื้อ: quantity -1, count +1
func (s *Service) UpdateQuantity(ctx context.Context, id string) (*models.UpdateResult, error) {
	filter, err := utils.IDFilter(id)
	if err != nil {
		return nil, err
	}
	if !s.opts.AllowNegativeQuantity {
		filter[models.FoodFieldQuantity] = bson.M{"$gt": 0}
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.coll.UpdateOne(ctx, filter, QuantityUpdate())
	if err != nil {
		return nil, fmt.Errorf("update quantity %s: %w", id, err)
	}
	return models.NewUpdateResult(res), nil
}

// DeleteFood - ลบอาหาร ไม่ถือเป็น error ถ้าไม่พบ
func (s *Service) DeleteFood(ctx context.Context, id string) (*models.DeleteResult, error) {
	filter, err := utils.IDFilter(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("delete food %s: %w", id, err)
	}
	return models.NewDeleteResult(res), nil
}

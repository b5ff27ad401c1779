package orders

import (
	"context"
	"fmt"
	"time"

	"FoodiePal-Backend/src/database"
	"FoodiePal-Backend/src/models"
	"FoodiePal-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Service จัดการคำสั่งซื้อ
type Service struct {
	coll    database.Collection
	timeout time.Duration
}

func NewService(coll database.Collection, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{coll: coll, timeout: timeout}
}

// PlaceOrder สร้างคำสั่งซื้อใหม่ตามที่ส่งมา
func (s *Service) PlaceOrder(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return models.NewInsertResult(res), nil
}

// ListOrders returns the orders of email, or every order when email is empty.
func (s *Service) ListOrders(ctx context.Context, email string) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	orders, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) (*models.DeleteResult, error) {
	filter, err := utils.IDFilter(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("delete order %s: %w", id, err)
	}
	return models.NewDeleteResult(res), nil
}

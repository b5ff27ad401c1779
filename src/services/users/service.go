package users

import (
	"context"
	"fmt"
	"time"

	"FoodiePal-Backend/src/database"
	"FoodiePal-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	coll          database.Collection
	timeout       time.Duration
	hashPasswords bool
}

func NewService(coll database.Collection, timeout time.Duration, hashPasswords bool) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{coll: coll, timeout: timeout, hashPasswords: hashPasswords}
}

// RegisterUser - บันทึกผู้ใช้ใหม่ ไม่ตรวจ email ซ้ำ
func (s *Service) RegisterUser(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	if s.hashPasswords {
		if pw, ok := doc["password"].(string); ok && pw != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password: %w", err)
			}
			doc["password"] = string(hashed)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return models.NewInsertResult(res), nil
}

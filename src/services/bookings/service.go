package bookings

import (
	"context"
	"fmt"
	"log"
	"time"

	"FoodiePal-Backend/src/database"
	"FoodiePal-Backend/src/jobs"
	"FoodiePal-Backend/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Service จัดการการจองโต๊ะ
type Service struct {
	coll    database.Collection
	timeout time.Duration
	queue   TaskEnqueuer
}

// NewService สร้าง service; queue เป็น nil ได้ถ้าไม่มี Redis
func NewService(coll database.Collection, timeout time.Duration, queue TaskEnqueuer) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{coll: coll, timeout: timeout, queue: queue}
}

// CreateBooking บันทึกการจอง แล้วส่งงานอีเมลยืนยันเข้า queue
// enqueue ล้มเหลวจะแค่ log ไม่ทำให้ request ล้มเหลว
func (s *Service) CreateBooking(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	insertCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.coll.InsertOne(insertCtx, doc)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	email, _ := doc["email"].(string)
	if s.queue != nil && email != "" {
		s.enqueueConfirmation(ctx, bookingID(res.InsertedID), email)
	}
	return models.NewInsertResult(res), nil
}

func (s *Service) enqueueConfirmation(ctx context.Context, id, email string) {
	task, err := jobs.NewBookingConfirmationTask(id, email)
	if err != nil {
		log.Println("❌ Failed to build booking confirmation task:", err)
		return
	}
	_, err = s.queue.EnqueueContext(ctx, task,
		asynq.TaskID(jobs.BookingConfirmationTaskID(id)),
		asynq.MaxRetry(3),
	)
	if err != nil {
		log.Println("❌ Failed to enqueue booking confirmation:", err)
		return
	}
	log.Println("✅ Enqueued booking confirmation task:", id)
}

func bookingID(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(v)
}

// ListBookingsByEmail ดึงการจองทั้งหมดของ email
func (s *Service) ListBookingsByEmail(ctx context.Context, email string) ([]bson.M, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bookings, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

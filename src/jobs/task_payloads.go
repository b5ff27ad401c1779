package jobs

import (
	"encoding/json"
	"strings"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

type BookingPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
}

func (p *BookingPayload) Normalize() {
	p.BookingID = strings.TrimSpace(p.BookingID)
	p.Email = strings.TrimSpace(p.Email)
}

func NewBookingConfirmationTask(bookingID, email string) (*asynq.Task, error) {
	payload := BookingPayload{BookingID: bookingID, Email: email}
	payload.Normalize()

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b), nil
}

// BookingConfirmationTaskID กัน enqueue ซ้ำสำหรับ booking เดียวกัน
func BookingConfirmationTaskID(bookingID string) string {
	return "booking-confirmation-" + strings.TrimSpace(bookingID)
}

package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"

	"github.com/hibiken/asynq"
)

// HandleBookingConfirmation ส่งอีเมลยืนยันการจองให้ลูกค้า
func HandleBookingConfirmation(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload BookingPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		payload.Normalize()
		if payload.Email == "" {
			log.Println("⚠️ Booking without email. Skipping task:", payload.BookingID)
			return nil
		}

		subject := "Your FoodiePal booking is confirmed"
		if err := sender.Send(payload.Email, subject, bookingConfirmationHTML(payload)); err != nil {
			log.Println("❌ Failed to send booking confirmation:", err)
			return err
		}

		log.Println("✅ Booking confirmation sent:", payload.BookingID)
		return nil
	}
}

func bookingConfirmationHTML(p BookingPayload) string {
	return fmt.Sprintf(`<p>Hello %s,</p>
<p>Your table booking <strong>%s</strong> has been received. See you soon!</p>
<p>FoodiePal</p>`, html.EscapeString(p.Email), html.EscapeString(p.BookingID))
}

// RegisterHandlers ลงทะเบียน handler ทั้งหมดของ worker
func RegisterHandlers(mux *asynq.ServeMux, sender MailSender) {
	mux.HandleFunc(TypeBookingConfirmation, HandleBookingConfirmation(sender))
}

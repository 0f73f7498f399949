package events

import (
	"encoding/json"
	"fmt"
)

const (
	RKBookingCreated   = "booking.created"
	RKContactSubmitted = "contact.submitted"
)

// BookingCreated carries enough for a notification message.
type BookingCreated struct {
	BookingID string `json:"booking_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type ContactSubmitted struct {
	MessageID string `json:"message_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func Decode[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}

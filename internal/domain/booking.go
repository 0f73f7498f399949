package domain

import "time"

// Booking is one committed consultation reservation. The composite unique
// index on (date, time) is the single arbiter of the no-double-booking
// invariant; it also serves as the ordering index for by-date listings.
type Booking struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"size:10;uniqueIndex:uniq_slot,priority:1" json:"date"` // YYYY-MM-DD, wall-clock date
	Time      string    `gorm:"size:5;uniqueIndex:uniq_slot,priority:2" json:"time"`  // HH:MM, from the configured slot set
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessage is a persisted contact-form submission.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Subject   string    `gorm:"size:200" json:"subject"`
	Message   string    `gorm:"size:2000" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

package model

import (
	"time"
)

// DateLayout is the calendar-day format used throughout the service.
// Bookings carry no time component beyond the slot id.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// Active reports whether the booking still occupies its slot. Cancelled
// and rejected bookings release the (venue, date, slot) triple.
func (s Status) Active() bool {
	return s != StatusCancelled && s != StatusRejected
}

type Booking struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,uuid4"`
	VenueID       string    `json:"venue_id" bson:"venue_id" validate:"required"`
	Date          string    `json:"date" bson:"date" validate:"required,datetime=2006-01-02"`
	TimeSlotID    string    `json:"time_slot_id" bson:"time_slot_id" validate:"required"`
	RequesterName string    `json:"requester_name" bson:"requester_name" validate:"required,min=2,max=100"`
	RequestedBy   string    `json:"requested_by" bson:"requested_by" validate:"required,min=1,max=100"`
	Department    string    `json:"department" bson:"department" validate:"required,min=2,max=100"`
	Purpose       string    `json:"purpose" bson:"purpose" validate:"required,min=2,max=500"`
	Attendees     int       `json:"attendees" bson:"attendees" validate:"required,min=1,max=1000"`
	ContactEmail  string    `json:"contact_email" bson:"contact_email" validate:"required,email"`
	Status        Status    `json:"status" bson:"status" validate:"required,oneof=pending approved rejected cancelled"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// SlotKey identifies the (venue, date, slot) triple whose uniqueness the
// store enforces among active bookings.
type SlotKey struct {
	VenueID    string
	Date       string
	TimeSlotID string
}

func (b *Booking) SlotKey() SlotKey {
	return SlotKey{VenueID: b.VenueID, Date: b.Date, TimeSlotID: b.TimeSlotID}
}

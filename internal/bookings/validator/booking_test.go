package validator

import (
	"testing"
	"time"

	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 14, 30, 0, 0, time.Local)
}

func validBooking() *model.Booking {
	return &model.Booking{
		VenueID:       "main-auditorium",
		Date:          "2024-03-10",
		TimeSlotID:    "slot-09",
		RequesterName: "Dana Levi",
		RequestedBy:   "dana",
		Department:    "Computer Science",
		Purpose:       "Board Meeting",
		Attendees:     12,
		ContactEmail:  "dana@uni.edu",
		Status:        model.StatusPending,
	}
}

func newTestValidator() *BookingValidator {
	v := NewBookingValidator(logger.New(logger.Config{Level: logger.LevelError, Service: "test"}))
	v.now = fixedClock
	return v
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.Booking)
		wantError bool
	}{
		{name: "valid booking", mutate: func(*model.Booking) {}, wantError: false},
		{name: "booking for today", mutate: func(b *model.Booking) { b.Date = "2024-03-05" }, wantError: false},
		{name: "missing venue", mutate: func(b *model.Booking) { b.VenueID = "" }, wantError: true},
		{name: "missing slot", mutate: func(b *model.Booking) { b.TimeSlotID = "" }, wantError: true},
		{name: "empty purpose", mutate: func(b *model.Booking) { b.Purpose = "" }, wantError: true},
		{name: "purpose too short", mutate: func(b *model.Booking) { b.Purpose = "x" }, wantError: true},
		{name: "past date", mutate: func(b *model.Booking) { b.Date = "2024-03-04" }, wantError: true},
		{name: "malformed date", mutate: func(b *model.Booking) { b.Date = "10/03/2024" }, wantError: true},
		{name: "invalid email", mutate: func(b *model.Booking) { b.ContactEmail = "not-an-email" }, wantError: true},
		{name: "zero attendees", mutate: func(b *model.Booking) { b.Attendees = 0 }, wantError: true},
		{name: "invalid status", mutate: func(b *model.Booking) { b.Status = "archived" }, wantError: true},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := validBooking()
			tt.mutate(booking)
			err := v.Validate(booking)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidate_TranslatedMessages(t *testing.T) {
	v := newTestValidator()

	booking := validBooking()
	booking.Purpose = ""
	err := v.Validate(booking)
	if err == nil {
		t.Fatal("expected a validation error")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "Purpose" {
		t.Errorf("unexpected validation errors: %v", verrs)
	}
}

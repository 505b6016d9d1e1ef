package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"venuehub/internal/bookings/service"
	"venuehub/internal/catalog"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

// SubmitForm carries the booking form fields; the venue, date and slot
// come from the wizard state, not the form.
type SubmitForm struct {
	RequesterName string `json:"requester_name"`
	Department    string `json:"department"`
	Purpose       string `json:"purpose"`
	Attendees     int    `json:"attendees"`
	ContactEmail  string `json:"contact_email"`
}

// Manager keeps one wizard state per username and validates every step
// against the catalog and the booking store.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*State

	bookings service.BookingService
	catalog  *catalog.Catalog
	log      *logger.Logger
	now      func() time.Time
}

func NewManager(bookings service.BookingService, cat *catalog.Catalog, log *logger.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*State),
		bookings: bookings,
		catalog:  cat,
		log:      log,
		now:      time.Now,
	}
}

func (m *Manager) stateLocked(user string) *State {
	s, ok := m.sessions[user]
	if !ok {
		s = &State{}
		m.sessions[user] = s
	}
	return s
}

// Current returns a copy of the user's wizard state.
func (m *Manager) Current(user string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.stateLocked(user)
}

func (m *Manager) SelectVenue(user, venueID string) (State, error) {
	if _, ok := m.catalog.Venue(venueID); !ok {
		return m.Current(user), apperrors.NotFoundWithID("Venue", venueID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stateLocked(user)
	s.selectVenue(venueID)
	return *s, nil
}

func (m *Manager) SelectDate(user, date string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stateLocked(user)
	if s.VenueID == "" {
		return *s, apperrors.InvalidInput("Choose a venue before picking a date")
	}

	parsed, err := time.ParseInLocation(model.DateLayout, date, time.Local)
	if err != nil {
		return *s, apperrors.InvalidInput("date must be a calendar day in YYYY-MM-DD format")
	}

	// Past calendar days are disabled; today is still selectable.
	today := m.now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if parsed.Before(todayStart) {
		return *s, apperrors.Validation("Past dates cannot be booked", map[string]any{"date": date})
	}

	s.selectDate(date)
	return *s, nil
}

func (m *Manager) SelectSlot(ctx context.Context, user, slotID string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stateLocked(user)
	if s.VenueID == "" || s.Date == "" {
		return *s, apperrors.InvalidInput("Choose a venue and a date before picking a time slot")
	}
	if _, ok := m.catalog.Slot(slotID); !ok {
		return *s, apperrors.InvalidInput(fmt.Sprintf("unknown time slot: %s", slotID))
	}

	taken, err := m.slotTaken(ctx, s.VenueID, s.Date, slotID)
	if err != nil {
		return *s, err
	}
	if taken {
		return *s, apperrors.Conflict("This time slot is already booked for the selected venue and date")
	}

	s.selectSlot(slotID)
	return *s, nil
}

// Submit creates a pending booking from the wizard state and the form.
// On any failure the wizard (and the booking store) stay as they were;
// on success the slot is cleared and the form closes.
func (m *Manager) Submit(ctx context.Context, user string, form SubmitForm, actor model.Actor) (*model.Booking, State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stateLocked(user)
	if s.VenueID == "" || s.Date == "" || s.TimeSlotID == "" {
		return nil, *s, apperrors.Validation("Venue, date and time slot must all be selected before submitting", nil)
	}

	booking := &model.Booking{
		VenueID:       s.VenueID,
		Date:          s.Date,
		TimeSlotID:    s.TimeSlotID,
		RequesterName: form.RequesterName,
		Department:    form.Department,
		Purpose:       form.Purpose,
		Attendees:     form.Attendees,
		ContactEmail:  form.ContactEmail,
	}

	if err := m.bookings.Create(ctx, booking, actor); err != nil {
		return nil, *s, err
	}

	s.afterSubmit()
	m.log.Info("Wizard submission completed", "user", user, "booking_id", booking.ID)
	return booking, *s, nil
}

func (m *Manager) Reset(user string) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.stateLocked(user)
	s.reset()
	return *s
}

func (m *Manager) slotTaken(ctx context.Context, venueID, date, slotID string) (bool, error) {
	availability, err := m.bookings.Availability(ctx, venueID, date)
	if err != nil {
		return false, err
	}
	for _, sa := range availability {
		if sa.Slot.ID == slotID {
			return !sa.Available, nil
		}
	}
	return false, nil
}

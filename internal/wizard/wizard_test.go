package wizard

import (
	"context"
	"testing"
	"time"

	"venuehub/internal/bookings/repository"
	"venuehub/internal/bookings/service"
	"venuehub/internal/bookings/validator"
	"venuehub/internal/catalog"
	"venuehub/internal/storage"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

var dana = model.Actor{Username: "dana", Role: model.RoleStaff}

func futureDate(t *testing.T) string {
	t.Helper()
	return time.Now().AddDate(0, 1, 0).Format(model.DateLayout)
}

func newTestManager(t *testing.T) (*Manager, service.BookingService) {
	t.Helper()

	log := logger.New(logger.Config{Level: logger.LevelError, Service: "test"})
	store, err := repository.NewStore(context.Background(), storage.NewMemorySnapshotter(), log)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}

	svc := service.NewBookingService(store, catalog.New(), validator.NewBookingValidator(log), service.NoopPublisher{}, log)
	return NewManager(svc, catalog.New(), log), svc
}

func validForm() SubmitForm {
	return SubmitForm{
		RequesterName: "Dana Levi",
		Department:    "Computer Science",
		Purpose:       "Board Meeting",
		Attendees:     12,
		ContactEmail:  "dana@uni.edu",
	}
}

func TestState_StepDerivation(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Step
	}{
		{"empty", State{}, StepNoVenue},
		{"venue only", State{VenueID: "main-auditorium"}, StepVenueChosen},
		{"venue and date", State{VenueID: "main-auditorium", Date: "2030-01-15"}, StepDateChosen},
		{"all three", State{VenueID: "main-auditorium", Date: "2030-01-15", TimeSlotID: "slot-09"}, StepSlotChosen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Step(); got != tt.want {
				t.Errorf("Step() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestState_SelectVenueResetsDownstream(t *testing.T) {
	s := State{VenueID: "main-auditorium", Date: "2030-01-15", TimeSlotID: "slot-09", FormOpen: true}

	// Re-selecting the same venue still restarts the flow.
	s.selectVenue("main-auditorium")

	if s.Date != "" || s.TimeSlotID != "" || s.FormOpen {
		t.Errorf("selectVenue must clear date, slot and form, got %+v", s)
	}
	if s.Step() != StepVenueChosen {
		t.Errorf("expected %s, got %s", StepVenueChosen, s.Step())
	}
}

func TestState_SelectDateResetsSlot(t *testing.T) {
	s := State{VenueID: "main-auditorium", Date: "2030-01-15", TimeSlotID: "slot-09", FormOpen: true}

	s.selectDate("2030-01-16")

	if s.TimeSlotID != "" || s.FormOpen {
		t.Errorf("selectDate must clear the slot and form, got %+v", s)
	}
	if s.VenueID != "main-auditorium" {
		t.Error("selectDate must keep the venue")
	}
}

func TestManager_StepOrderEnforced(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.SelectDate("dana", futureDate(t)); err == nil {
		t.Error("expected an error when picking a date before a venue")
	}
	if _, err := m.SelectSlot(context.Background(), "dana", "slot-09"); err == nil {
		t.Error("expected an error when picking a slot before a date")
	}

	if _, err := m.SelectVenue("dana", "no-such-venue"); err == nil {
		t.Error("expected not found for an unknown venue")
	}

	state, err := m.SelectVenue("dana", "main-auditorium")
	if err != nil {
		t.Fatalf("select venue failed: %v", err)
	}
	if state.Step() != StepVenueChosen {
		t.Errorf("expected %s, got %s", StepVenueChosen, state.Step())
	}
}

func TestManager_PastDateRejected(t *testing.T) {
	m, _ := newTestManager(t)
	m.now = func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local) }

	if _, err := m.SelectVenue("dana", "main-auditorium"); err != nil {
		t.Fatalf("select venue failed: %v", err)
	}

	if _, err := m.SelectDate("dana", "2024-03-04"); err == nil {
		t.Error("expected a validation error for yesterday")
	}
	if _, err := m.SelectDate("dana", "not-a-date"); err == nil {
		t.Error("expected an error for a malformed date")
	}

	// Today is still selectable.
	if _, err := m.SelectDate("dana", "2024-03-05"); err != nil {
		t.Errorf("today should be selectable, got %v", err)
	}
}

func TestManager_TakenSlotRejected(t *testing.T) {
	m, svc := newTestManager(t)
	ctx := context.Background()
	date := futureDate(t)

	existing := &model.Booking{
		VenueID:       "main-auditorium",
		Date:          date,
		TimeSlotID:    "slot-09",
		RequesterName: "Someone Else",
		Department:    "Physics",
		Purpose:       "Colloquium",
		Attendees:     40,
		ContactEmail:  "phys@uni.edu",
	}
	if err := svc.Create(ctx, existing, model.Actor{Username: "avi", Role: model.RoleStaff}); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	if _, err := m.SelectVenue("dana", "main-auditorium"); err != nil {
		t.Fatalf("select venue failed: %v", err)
	}
	if _, err := m.SelectDate("dana", date); err != nil {
		t.Fatalf("select date failed: %v", err)
	}

	_, err := m.SelectSlot(ctx, "dana", "slot-09")
	if err == nil {
		t.Fatal("expected a conflict for a taken slot")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected %s, got %s", apperrors.CodeConflict, appErr.Code)
	}
	if state := m.Current("dana"); state.TimeSlotID != "" {
		t.Errorf("a rejected slot pick must not stick, got %+v", state)
	}

	// A free slot on the same venue and date still works.
	state, err := m.SelectSlot(ctx, "dana", "slot-10")
	if err != nil {
		t.Fatalf("select slot failed: %v", err)
	}
	if !state.FormOpen {
		t.Error("a successful slot pick must open the form")
	}
}

func TestManager_SubmitLifecycle(t *testing.T) {
	m, svc := newTestManager(t)
	ctx := context.Background()
	date := futureDate(t)

	// Submitting before the flow is complete fails without side effects.
	if _, _, err := m.Submit(ctx, "dana", validForm(), dana); err == nil {
		t.Fatal("expected a validation error for an incomplete wizard")
	}

	if _, err := m.SelectVenue("dana", "main-auditorium"); err != nil {
		t.Fatalf("select venue failed: %v", err)
	}
	if _, err := m.SelectDate("dana", date); err != nil {
		t.Fatalf("select date failed: %v", err)
	}
	if _, err := m.SelectSlot(ctx, "dana", "slot-09"); err != nil {
		t.Fatalf("select slot failed: %v", err)
	}

	// A form that fails validation leaves the wizard where it was.
	bad := validForm()
	bad.Purpose = "  "
	if _, state, err := m.Submit(ctx, "dana", bad, dana); err == nil {
		t.Fatal("expected a validation error for an empty purpose")
	} else if state.TimeSlotID != "slot-09" || !state.FormOpen {
		t.Errorf("failed submit must keep the wizard state, got %+v", state)
	}

	booking, state, err := m.Submit(ctx, "dana", validForm(), dana)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if booking.Status != model.StatusPending {
		t.Errorf("expected a pending booking, got %s", booking.Status)
	}
	if booking.VenueID != "main-auditorium" || booking.Date != date || booking.TimeSlotID != "slot-09" {
		t.Errorf("booking must carry the wizard selections, got %+v", booking)
	}

	// After submit: slot cleared, form closed, venue and date kept.
	if state.Step() != StepDateChosen {
		t.Errorf("expected %s after submit, got %s", StepDateChosen, state.Step())
	}
	if state.VenueID != "main-auditorium" || state.Date != date {
		t.Errorf("submit must keep the venue and date, got %+v", state)
	}

	got, err := svc.GetByID(ctx, booking.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Purpose != "Board Meeting" {
		t.Errorf("unexpected stored purpose %q", got.Purpose)
	}
}

func TestManager_ResetClearsEverything(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.SelectVenue("dana", "main-auditorium"); err != nil {
		t.Fatalf("select venue failed: %v", err)
	}
	if _, err := m.SelectDate("dana", futureDate(t)); err != nil {
		t.Fatalf("select date failed: %v", err)
	}

	state := m.Reset("dana")
	if state != (State{}) {
		t.Errorf("reset must clear the state, got %+v", state)
	}
	if m.Current("dana").Step() != StepNoVenue {
		t.Error("expected the flow to restart from the venue step")
	}
}

func TestManager_StatesAreIsolatedPerUser(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.SelectVenue("dana", "main-auditorium"); err != nil {
		t.Fatalf("select venue failed: %v", err)
	}

	if got := m.Current("mallory"); got.Step() != StepNoVenue {
		t.Errorf("another user's wizard must start empty, got %+v", got)
	}
}

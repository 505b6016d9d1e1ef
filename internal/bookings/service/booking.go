package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	bookingserrors "venuehub/internal/bookings/errors"
	"venuehub/internal/bookings/repository"
	"venuehub/internal/bookings/validator"
	"venuehub/internal/catalog"
	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
	"venuehub/pkg/sanitizer"
)

type SlotAvailability struct {
	Slot      model.TimeSlot `json:"slot"`
	Available bool           `json:"available"`
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking, actor model.Actor) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, int64, error)
	Availability(ctx context.Context, venueID, date string) ([]SlotAvailability, error)
	Approve(ctx context.Context, id string, actor model.Actor) (*model.Booking, error)
	Reject(ctx context.Context, id string, actor model.Actor) (*model.Booking, error)
	Cancel(ctx context.Context, id string, actor model.Actor) (*model.Booking, error)
	Delete(ctx context.Context, id string, actor model.Actor) error
}

type bookingService struct {
	store     *repository.Store
	catalog   *catalog.Catalog
	validator *validator.BookingValidator
	publisher EventPublisher
	log       *logger.Logger
}

func NewBookingService(
	store *repository.Store,
	cat *catalog.Catalog,
	bookingValidator *validator.BookingValidator,
	publisher EventPublisher,
	log *logger.Logger,
) BookingService {
	if publisher == nil {
		publisher = NoopPublisher{}
	}
	return &bookingService{
		store:     store,
		catalog:   cat,
		validator: bookingValidator,
		publisher: publisher,
		log:       log,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking, actor model.Actor) error {
	s.applyDefaults(booking, actor)
	s.sanitize(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	venue, ok := s.catalog.Venue(booking.VenueID)
	if !ok {
		return apperrors.InvalidInput(fmt.Sprintf("unknown venue: %s", booking.VenueID))
	}
	if _, ok := s.catalog.Slot(booking.TimeSlotID); !ok {
		return apperrors.InvalidInput(fmt.Sprintf("unknown time slot: %s", booking.TimeSlotID))
	}
	if booking.Attendees > venue.Capacity {
		return apperrors.Validation("Attendee count exceeds venue capacity", map[string]any{
			"attendees": booking.Attendees,
			"capacity":  venue.Capacity,
		})
	}

	// The conflict check and the insert happen atomically inside the
	// store, so two concurrent requests cannot double-book a slot.
	if err := s.store.Insert(ctx, *booking); err != nil {
		if errors.Is(err, bookingserrors.ErrSlotTaken) {
			return apperrors.Conflict("This venue is already booked for the selected date and time slot")
		}
		return apperrors.Internal("Failed to create booking", err)
	}

	s.publisher.Publish(ctx, EventBookingCreated, *booking)
	s.log.Info("Booking created",
		"id", booking.ID,
		"venue_id", booking.VenueID,
		"date", booking.Date,
		"time_slot_id", booking.TimeSlotID,
		"requested_by", booking.RequestedBy,
	)
	return nil
}

func (s *bookingService) GetByID(_ context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.NotFoundWithID("Booking", id)
	}
	return &booking, nil
}

func (s *bookingService) List(_ context.Context) ([]model.Booking, int64, error) {
	bookings := s.store.List()
	return bookings, int64(len(bookings)), nil
}

func (s *bookingService) Availability(_ context.Context, venueID, date string) ([]SlotAvailability, error) {
	if _, ok := s.catalog.Venue(venueID); !ok {
		return nil, apperrors.NotFoundWithID("Venue", venueID)
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, apperrors.InvalidInput("date must be a calendar day in YYYY-MM-DD format")
	}

	bookings := s.store.List()
	slots := s.catalog.Slots()

	availability := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		key := model.SlotKey{VenueID: venueID, Date: date, TimeSlotID: slot.ID}
		availability = append(availability, SlotAvailability{
			Slot:      slot,
			Available: !repository.Conflicts(bookings, key),
		})
	}
	return availability, nil
}

func (s *bookingService) Approve(ctx context.Context, id string, actor model.Actor) (*model.Booking, error) {
	if !s.canApprove(actor) {
		return nil, apperrors.Forbidden("Only a department head may approve bookings")
	}
	return s.transition(ctx, id, model.StatusApproved, EventBookingApproved)
}

func (s *bookingService) Reject(ctx context.Context, id string, actor model.Actor) (*model.Booking, error) {
	if !s.canApprove(actor) {
		return nil, apperrors.Forbidden("Only a department head may reject bookings")
	}
	return s.transition(ctx, id, model.StatusRejected, EventBookingRejected)
}

func (s *bookingService) Cancel(ctx context.Context, id string, actor model.Actor) (*model.Booking, error) {
	booking, ok := s.store.Get(id)
	if !ok {
		return nil, apperrors.NotFoundWithID("Booking", id)
	}
	if !s.canModify(actor, &booking) {
		return nil, apperrors.Forbidden("Only the requester or a department head may cancel this booking")
	}
	return s.transition(ctx, id, model.StatusCancelled, EventBookingCancelled)
}

func (s *bookingService) Delete(ctx context.Context, id string, actor model.Actor) error {
	err := s.store.Delete(ctx, id, func(b model.Booking) error {
		if !s.canModify(actor, &b) {
			return apperrors.Forbidden("Only the requester or a department head may delete this booking")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.publisher.Publish(ctx, EventBookingDeleted, model.Booking{ID: id})
	s.log.Info("Booking deleted", "id", id, "deleted_by", actor.Username)
	return nil
}

// --- Helpers ---

func (s *bookingService) transition(ctx context.Context, id string, target model.Status, eventType string) (*model.Booking, error) {
	updated, err := s.store.Update(ctx, id, func(b *model.Booking) error {
		// Transitions out of a terminal status are silent no-ops.
		if b.Status.Terminal() {
			return bookingserrors.ErrTerminalStatus
		}
		// Only the status field moves; venue, date, slot and the form
		// fields stay as submitted.
		b.Status = target
		return nil
	})
	if err != nil {
		if errors.Is(err, bookingserrors.ErrTerminalStatus) {
			s.log.Debug("Ignoring transition on finalized booking",
				"id", id, "status", updated.Status, "target", target)
			return &updated, nil
		}
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	s.publisher.Publish(ctx, eventType, updated)
	s.log.Info("Booking status changed", "id", id, "status", updated.Status)
	return &updated, nil
}

func (s *bookingService) canApprove(actor model.Actor) bool {
	return actor.Privileged()
}

func (s *bookingService) canModify(actor model.Actor, b *model.Booking) bool {
	return actor.Owns(b) || actor.Privileged()
}

func (s *bookingService) applyDefaults(b *model.Booking, actor model.Actor) {
	// The id is assigned once at creation and never reused; client-sent
	// ids and statuses are ignored.
	b.ID = uuid.NewString()
	b.Status = model.StatusPending
	b.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	b.RequestedBy = actor.Username
	if b.Attendees == 0 {
		b.Attendees = 1
	}
}

func (s *bookingService) sanitize(b *model.Booking) {
	b.RequesterName = sanitizer.NormalizeName(b.RequesterName)
	b.Department = sanitizer.NormalizeName(b.Department)
	b.Purpose = sanitizer.NormalizePurpose(b.Purpose)
	b.ContactEmail = sanitizer.NormalizeEmail(b.ContactEmail)
}

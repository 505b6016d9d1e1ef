// Package wizard implements the booking selection flow: venue, then
// date, then slot, then the submission form. Picking an earlier step
// discards everything chosen after it; there is no undo beyond
// re-selecting.
package wizard

type Step string

const (
	StepNoVenue     Step = "no_venue"
	StepVenueChosen Step = "venue_chosen"
	StepDateChosen  Step = "date_chosen"
	StepSlotChosen  Step = "slot_chosen"
)

// State is one user's position in the flow. It is a plain value; the
// Manager owns locking and all validation against the catalog and the
// booking store.
type State struct {
	VenueID    string `json:"venue_id,omitempty"`
	Date       string `json:"date,omitempty"`
	TimeSlotID string `json:"time_slot_id,omitempty"`
	FormOpen   bool   `json:"form_open"`
}

func (s State) Step() Step {
	switch {
	case s.VenueID == "":
		return StepNoVenue
	case s.Date == "":
		return StepVenueChosen
	case s.TimeSlotID == "":
		return StepDateChosen
	default:
		return StepSlotChosen
	}
}

// selectVenue restarts the downstream choices even when the venue is
// unchanged, matching the flow's reset-on-reselect rule.
func (s *State) selectVenue(venueID string) {
	s.VenueID = venueID
	s.Date = ""
	s.TimeSlotID = ""
	s.FormOpen = false
}

func (s *State) selectDate(date string) {
	s.Date = date
	s.TimeSlotID = ""
	s.FormOpen = false
}

func (s *State) selectSlot(slotID string) {
	s.TimeSlotID = slotID
	s.FormOpen = true
}

// afterSubmit returns to the date-chosen position: slot cleared, form
// closed, venue and date kept for the next booking.
func (s *State) afterSubmit() {
	s.TimeSlotID = ""
	s.FormOpen = false
}

func (s *State) reset() {
	*s = State{}
}

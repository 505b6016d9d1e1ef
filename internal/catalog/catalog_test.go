package catalog

import "testing"

func TestSlotTable(t *testing.T) {
	c := New()
	slots := c.Slots()

	if len(slots) != 9 {
		t.Fatalf("expected 9 hourly slots, got %d", len(slots))
	}

	if slots[0].ID != "slot-09" || slots[0].Label != "09:00 - 10:00" {
		t.Errorf("unexpected first slot: %+v", slots[0])
	}
	if slots[8].ID != "slot-17" || slots[8].Label != "17:00 - 18:00" {
		t.Errorf("unexpected last slot: %+v", slots[8])
	}
}

func TestSlotPeriods(t *testing.T) {
	tests := []struct {
		slotID string
		period string
	}{
		{slotID: "slot-09", period: "morning"},
		{slotID: "slot-11", period: "morning"},
		{slotID: "slot-12", period: "afternoon"},
		{slotID: "slot-16", period: "afternoon"},
		{slotID: "slot-17", period: "evening"},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.slotID, func(t *testing.T) {
			slot, ok := c.Slot(tt.slotID)
			if !ok {
				t.Fatalf("slot %s not found", tt.slotID)
			}
			if slot.Period != tt.period {
				t.Errorf("slot %s period = %s, want %s", tt.slotID, slot.Period, tt.period)
			}
		})
	}
}

func TestVenueLookup(t *testing.T) {
	c := New()

	venue, ok := c.Venue("main-auditorium")
	if !ok {
		t.Fatal("expected main-auditorium in the default catalog")
	}
	if venue.Name != "Main Auditorium" {
		t.Errorf("unexpected venue name: %s", venue.Name)
	}
	if venue.Capacity <= 0 {
		t.Errorf("expected positive capacity, got %d", venue.Capacity)
	}

	if _, ok := c.Venue("no-such-venue"); ok {
		t.Error("expected lookup miss for unknown venue id")
	}

	if len(c.Venues()) == 0 {
		t.Error("expected a non-empty default catalog")
	}
}

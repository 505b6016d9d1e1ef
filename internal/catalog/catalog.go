// Package catalog holds the static venue and time-slot configuration.
// Both tables are immutable after construction; there are no mutation
// operations.
package catalog

import "venuehub/pkg/model"

type Catalog struct {
	venues     []model.Venue
	venuesByID map[string]model.Venue
	slots      []model.TimeSlot
	slotsByID  map[string]model.TimeSlot
}

func New() *Catalog {
	return newWithVenues(defaultVenues())
}

func newWithVenues(venues []model.Venue) *Catalog {
	c := &Catalog{
		venues:     venues,
		venuesByID: make(map[string]model.Venue, len(venues)),
		slots:      buildSlotTable(),
	}
	for _, v := range c.venues {
		c.venuesByID[v.ID] = v
	}
	c.slotsByID = make(map[string]model.TimeSlot, len(c.slots))
	for _, s := range c.slots {
		c.slotsByID[s.ID] = s
	}
	return c
}

func (c *Catalog) Venues() []model.Venue {
	return c.venues
}

func (c *Catalog) Venue(id string) (model.Venue, bool) {
	v, ok := c.venuesByID[id]
	return v, ok
}

func (c *Catalog) Slots() []model.TimeSlot {
	return c.slots
}

func (c *Catalog) Slot(id string) (model.TimeSlot, bool) {
	s, ok := c.slotsByID[id]
	return s, ok
}

func defaultVenues() []model.Venue {
	return []model.Venue{
		{
			ID:        "main-auditorium",
			Name:      "Main Auditorium",
			Capacity:  500,
			Location:  "Central Building, Ground Floor",
			Amenities: []string{"projector", "sound system", "stage", "air conditioning"},
			Category:  "auditorium",
		},
		{
			ID:        "lecture-hall-a",
			Name:      "Lecture Hall A",
			Capacity:  120,
			Location:  "Science Building, Floor 1",
			Amenities: []string{"projector", "whiteboard", "air conditioning"},
			Category:  "lecture_hall",
		},
		{
			ID:        "lecture-hall-b",
			Name:      "Lecture Hall B",
			Capacity:  80,
			Location:  "Science Building, Floor 2",
			Amenities: []string{"projector", "whiteboard"},
			Category:  "lecture_hall",
		},
		{
			ID:        "seminar-room-1",
			Name:      "Seminar Room 1",
			Capacity:  25,
			Location:  "Humanities Building, Floor 3",
			Amenities: []string{"whiteboard", "video conferencing"},
			Category:  "seminar_room",
		},
		{
			ID:        "computer-lab-2",
			Name:      "Computer Lab 2",
			Capacity:  40,
			Location:  "Engineering Building, Floor 1",
			Amenities: []string{"workstations", "projector", "air conditioning"},
			Category:  "laboratory",
		},
		{
			ID:        "sports-hall",
			Name:      "Sports Hall",
			Capacity:  300,
			Location:  "Athletics Complex",
			Amenities: []string{"changing rooms", "sound system"},
			Category:  "sports",
		},
	}
}

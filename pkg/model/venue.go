package model

type Venue struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
	Category  string   `json:"category"`
}

// TimeSlot is one fixed hourly interval within the 09:00-18:00 booking
// window. Period groups slots for display (morning, afternoon, evening).
type TimeSlot struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Period string `json:"period"`
}

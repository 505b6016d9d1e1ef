package catalog

import (
	"fmt"

	"venuehub/pkg/model"
)

// The booking window is fixed: nine hourly slots from 09:00 to 18:00.
const (
	dayStartHour = 9
	dayEndHour   = 18
)

func buildSlotTable() []model.TimeSlot {
	slots := make([]model.TimeSlot, 0, dayEndHour-dayStartHour)
	for hour := dayStartHour; hour < dayEndHour; hour++ {
		slots = append(slots, model.TimeSlot{
			ID:     fmt.Sprintf("slot-%02d", hour),
			Label:  fmt.Sprintf("%02d:00 - %02d:00", hour, hour+1),
			Period: periodFor(hour),
		})
	}
	return slots
}

func periodFor(hour int) string {
	switch {
	case hour < 12:
		return "morning"
	case hour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}

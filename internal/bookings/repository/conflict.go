package repository

import "venuehub/pkg/model"

// Conflicts reports whether some booking holds the (venue, date, slot)
// triple with a status that still occupies it. Pure over the slice:
// the result depends only on set membership, not ordering.
func Conflicts(bookings []model.Booking, key model.SlotKey) bool {
	for i := range bookings {
		b := &bookings[i]
		if b.Status.Active() && b.SlotKey() == key {
			return true
		}
	}
	return false
}

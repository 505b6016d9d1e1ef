package model

type Role string

const (
	RoleStudent        Role = "student"
	RoleStaff          Role = "staff"
	RoleDepartmentHead Role = "department_head"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleDepartmentHead:
		return true
	}
	return false
}

// Actor is the identity a request acts under. The booking core treats it
// as a read-only {username, role} input; it never mutates session state.
type Actor struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Privileged reports whether the actor may approve or reject bookings
// requested by others.
func (a Actor) Privileged() bool {
	return a.Role == RoleDepartmentHead
}

// Owns reports whether the actor is the original requester of b.
func (a Actor) Owns(b *Booking) bool {
	return a.Username != "" && a.Username == b.RequestedBy
}

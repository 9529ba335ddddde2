// internal/membership/service.go
package membership

import "io"

// Attendee is implemented by every concrete member variant. Implementations
// decide how a visit is counted and whether an inactive member may attend.
type Attendee interface {
	MarkAttendance()
}

// Record defines the full behavior of a gym member.
type Record interface {
	Attendee

	ID() int
	Name() string
	Location() string
	Phone() string
	Email() string
	Gender() string
	DateOfBirth() string
	MembershipStartDate() string
	Attendance() int
	LoyaltyPoints() float64
	Active() bool

	Activate()
	Deactivate()
	Reset()

	Format() string
	Display(w io.Writer) error
	Snapshot() Snapshot
}

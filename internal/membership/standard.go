// internal/membership/standard.go
package membership

// StandardVisitPoints is the loyalty credit for one standard visit.
const StandardVisitPoints = 5.0

// Standard is the default member variant: one visit per call, active
// members only.
type Standard struct {
	*Member
}

var _ Record = (*Standard)(nil)

// NewStandard creates a standard member. Arguments are handled as in
// NewMember.
func NewStandard(id int, name, location, phone, email, gender, dateOfBirth, membershipStartDate string) *Standard {
	return &Standard{
		Member: NewMember(id, name, location, phone, email, gender, dateOfBirth, membershipStartDate),
	}
}

// MarkAttendance counts a visit and credits StandardVisitPoints. Inactive
// members are ignored.
func (s *Standard) MarkAttendance() {
	if !s.Active() {
		return
	}
	s.AddAttendance(1, StandardVisitPoints)
}

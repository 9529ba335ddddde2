// internal/membership/domain.go
package membership

import "strings"

// Member is the shared record behind every gym member variant. It holds
// identity, contact details and membership state; concrete variants embed
// it and supply attendance marking.
type Member struct {
	id                  int
	name                string
	location            string
	phone               string
	email               string
	gender              string
	dateOfBirth         string
	membershipStartDate string
	attendance          int
	loyaltyPoints       float64
	active              bool
}

// Snapshot is a value copy of a member's attributes.
type Snapshot struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	Phone               string  `json:"phone"`
	Email               string  `json:"email"`
	Gender              string  `json:"gender"`
	DateOfBirth         string  `json:"date_of_birth"`
	MembershipStartDate string  `json:"membership_start_date"`
	Attendance          int     `json:"attendance"`
	LoyaltyPoints       float64 `json:"loyalty_points"`
	Active              bool    `json:"active"`
}

// NewMember creates an inactive member with zeroed counters. Name, location,
// phone and email are trimmed; gender and both dates are kept as given.
// No validation is performed.
func NewMember(id int, name, location, phone, email, gender, dateOfBirth, membershipStartDate string) *Member {
	return &Member{
		id:                  id,
		name:                strings.TrimSpace(name),
		location:            strings.TrimSpace(location),
		phone:               strings.TrimSpace(phone),
		email:               strings.TrimSpace(email),
		gender:              gender,
		dateOfBirth:         dateOfBirth,
		membershipStartDate: membershipStartDate,
	}
}

func (m *Member) ID() int { return m.id }
func (m *Member) Name() string { return m.name }
func (m *Member) Location() string { return m.location }
func (m *Member) Phone() string { return m.phone }
func (m *Member) Email() string { return m.email }
func (m *Member) Gender() string { return m.gender }
func (m *Member) DateOfBirth() string { return m.dateOfBirth }
func (m *Member) MembershipStartDate() string { return m.membershipStartDate }
func (m *Member) Attendance() int { return m.attendance }
func (m *Member) LoyaltyPoints() float64 { return m.loyaltyPoints }
func (m *Member) Active() bool { return m.active }

// Snapshot returns the member's current attributes.
func (m *Member) Snapshot() Snapshot {
	return Snapshot{
		ID:                  m.id,
		Name:                m.name,
		Location:            m.location,
		Phone:               m.phone,
		Email:               m.email,
		Gender:              m.gender,
		DateOfBirth:         m.dateOfBirth,
		MembershipStartDate: m.membershipStartDate,
		Attendance:          m.attendance,
		LoyaltyPoints:       m.loyaltyPoints,
		Active:              m.active,
	}
}

// internal/membership/implementation.go
package membership

// Activate marks the membership active. Already active members are left
// untouched.
func (m *Member) Activate() {
	if !m.active {
		m.active = true
	}
}

// Deactivate marks the membership inactive.
func (m *Member) Deactivate() {
	if m.active {
		m.active = false
	}
}

// Reset deactivates the member and clears attendance and loyalty points.
func (m *Member) Reset() {
	m.active = false
	m.attendance = 0
	m.loyaltyPoints = 0
}

// AddAttendance records visits and the loyalty points earned for them.
// Negative arguments are ignored so the counters never go below zero.
func (m *Member) AddAttendance(visits int, points float64) {
	if visits > 0 {
		m.attendance += visits
	}
	if points > 0 {
		m.loyaltyPoints += points
	}
}

package membership

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newSam() *Member {
	return NewMember(1, "Sam", "NYC", "555", "s@x.com", "F", "1990-01-01", "2024-01-01")
}

func TestNewMember(t *testing.T) {
	m := newSam()

	assert.Equal(t, 1, m.ID())
	assert.Equal(t, "Sam", m.Name())
	assert.Equal(t, "NYC", m.Location())
	assert.Equal(t, "555", m.Phone())
	assert.Equal(t, "s@x.com", m.Email())
	assert.Equal(t, "F", m.Gender())
	assert.Equal(t, "1990-01-01", m.DateOfBirth())
	assert.Equal(t, "2024-01-01", m.MembershipStartDate())
	assert.Equal(t, 0, m.Attendance())
	assert.Equal(t, 0.0, m.LoyaltyPoints())
	assert.False(t, m.Active())
}

func TestNewMemberTrimming(t *testing.T) {
	m := NewMember(7, "  Alex  ", "\tLondon\n", " 0123 ", " a@b.io ", "  M  ", " 1990-01-01 ", " 2024-02-02 ")

	assert.Equal(t, "Alex", m.Name())
	assert.Equal(t, "London", m.Location())
	assert.Equal(t, "0123", m.Phone())
	assert.Equal(t, "a@b.io", m.Email())

	// stored verbatim
	assert.Equal(t, "  M  ", m.Gender())
	assert.Equal(t, " 1990-01-01 ", m.DateOfBirth())
	assert.Equal(t, " 2024-02-02 ", m.MembershipStartDate())
}

func TestNewMemberAcceptsMalformedInput(t *testing.T) {
	m := NewMember(-3, "", "", "not-a-phone", "not-an-email", "", "yesterday", "soon")

	require.NotNil(t, m)
	assert.Equal(t, -3, m.ID())
	assert.Empty(t, m.Name())
	assert.Equal(t, "yesterday", m.DateOfBirth())
	assert.False(t, m.Active())
}

func TestNewMemberProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.Int().Draw(t, "id")
		name := rapid.String().Draw(t, "name")
		location := rapid.String().Draw(t, "location")
		gender := rapid.String().Draw(t, "gender")
		dob := rapid.String().Draw(t, "dob")

		m := NewMember(id, name, location, "555", "e@x.com", gender, dob, "2024-01-01")

		assert.Equal(t, id, m.ID())
		assert.Equal(t, strings.TrimSpace(name), m.Name())
		assert.Equal(t, strings.TrimSpace(location), m.Location())
		assert.Equal(t, gender, m.Gender())
		assert.Equal(t, dob, m.DateOfBirth())
		assert.False(t, m.Active())
		assert.Zero(t, m.Attendance())
		assert.Zero(t, m.LoyaltyPoints())
	})
}

func TestSnapshot(t *testing.T) {
	m := newSam()
	m.Activate()
	m.AddAttendance(2, 7.5)

	assert.Equal(t, Snapshot{
		ID:                  1,
		Name:                "Sam",
		Location:            "NYC",
		Phone:               "555",
		Email:               "s@x.com",
		Gender:              "F",
		DateOfBirth:         "1990-01-01",
		MembershipStartDate: "2024-01-01",
		Attendance:          2,
		LoyaltyPoints:       7.5,
		Active:              true,
	}, m.Snapshot())
}

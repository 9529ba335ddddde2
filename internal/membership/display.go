// internal/membership/display.go
package membership

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column widths of a formatted member line, in attribute order.
const (
	WidthID                  = 5
	WidthName                = 20
	WidthLocation            = 20
	WidthPhone               = 15
	WidthEmail               = 25
	WidthGender              = 30
	WidthDateOfBirth         = 30
	WidthMembershipStartDate = 30
	WidthAttendance          = 20
	WidthLoyaltyPoints       = 25
	WidthActive              = 10
)

var lineFormat = fmt.Sprintf("%%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds %%-%ds",
	WidthID, WidthName, WidthLocation, WidthPhone, WidthEmail, WidthGender,
	WidthDateOfBirth, WidthMembershipStartDate, WidthAttendance, WidthLoyaltyPoints, WidthActive)

// Format renders all attributes as one left-aligned, fixed-width line.
// Values wider than their column are not truncated.
func (m *Member) Format() string {
	return fmt.Sprintf(lineFormat,
		strconv.Itoa(m.id), m.name, m.location, m.phone, m.email,
		m.gender, m.dateOfBirth, m.membershipStartDate,
		strconv.Itoa(m.attendance), formatPoints(m.loyaltyPoints), strconv.FormatBool(m.active))
}

// Display writes the formatted line followed by a newline to w.
func (m *Member) Display(w io.Writer) error {
	if _, err := io.WriteString(w, m.Format()+"\n"); err != nil {
		return fmt.Errorf("failed to write member %d: %w", m.id, err)
	}
	return nil
}

// formatPoints prints plain decimals with at least one fractional digit
// inside [1e-3, 1e7) and a mantissa/exponent form such as 1.0E7 or 2.5E-4
// outside it.
func formatPoints(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}

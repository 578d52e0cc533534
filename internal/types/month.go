// Package types implements value types shared by the FinOra API.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var fullDate = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Month is a calendar month in a specific year, always in UTC.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which t occurs.
func MonthOf(t time.Time) Month {
	return NewMonth(t.Year(), t.Month())
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), m.Month())
}

// Label returns the month formatted for chart axes, e.g. "Jan 2024".
func (m Month) Label() string {
	return time.Time(m).Format("Jan 2006")
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the calendar month.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// Index returns a number that orders months across years.
func (m Month) Index() int {
	return MonthIndex(m.Year(), m.Month())
}

// MonthIndex returns the ordering index for a year and month.
func MonthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}

// Start returns the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End returns the last day of the month at midnight.
func (m Month) End() time.Time {
	return time.Time(m).AddDate(0, 1, -1)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.End().Day()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Before reports whether m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Contains reports whether t is in the month.
func (m Month) Contains(t time.Time) bool {
	t = t.UTC()
	return t.Year() == m.Year() && t.Month() == m.Month()
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// It accepts "2006-01", "2006-01-02" and RFC3339 strings and keeps only year and month.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	return m.UnmarshalParam(value)
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for query parameters.
func (m *Month) UnmarshalParam(value string) error {
	if value == "" {
		*m = Month{}
		return nil
	}

	pattern := time.RFC3339
	switch {
	case len(value) == 7:
		pattern = "2006-01"
	case fullDate.MatchString(value):
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

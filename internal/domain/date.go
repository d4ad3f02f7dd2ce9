package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Date is a calendar date. Time of day is never modeled; the wrapped time
// is always midnight UTC.
type Date struct {
	openapi_types.Date
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{openapi_types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}}
}

func DateOf(year int, month time.Month, day int) Date {
	return Date{openapi_types.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}}
}

var dateLayouts = []string{
	openapi_types.DateFormat,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate accepts date-only values and ISO-8601 timestamps. Timestamps
// carrying a zone are converted to UTC before the date is taken.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewDate(t.UTC()), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d Date) IsZero() bool { return d.Time.IsZero() }

// ISO renders the date as a midnight UTC timestamp with milliseconds.
func (d Date) ISO() string {
	return d.Time.UTC().Format("2006-01-02T15:04:05.000Z")
}

// Korean renders the date the way the ko-KR locale prints dates.
func (d Date) Korean() string {
	y, m, day := d.Time.Date()
	return fmt.Sprintf("%d. %d. %d.", y, int(m), day)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ISODate is a Date that travels as a full ISO-8601 timestamp.
type ISODate Date

func (d ISODate) MarshalJSON() ([]byte, error) {
	return json.Marshal(Date(d).ISO())
}

func (d *ISODate) UnmarshalJSON(data []byte) error {
	return (*Date)(d).UnmarshalJSON(data)
}

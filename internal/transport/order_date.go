package transport

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layouts accepted for order dates, tried in order. The last two carry no
// zone and are read in the service timezone.
var orderDateLayouts = []struct {
	layout   string
	floating bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02", true},
}

// OrderDate is an order timestamp as sent by clients. Browser date inputs
// submit a bare "YYYY-MM-DD", so zone-less values are kept as wall-clock
// time until a location is applied.
type OrderDate struct {
	wall     time.Time
	floating bool
}

// UnmarshalJSON implements json.Unmarshaler
func (d *OrderDate) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("order date must be a string: %w", err)
	}

	for _, l := range orderDateLayouts {
		if t, err := time.Parse(l.layout, raw); err == nil {
			d.wall = t
			d.floating = l.floating
			return nil
		}
	}

	return fmt.Errorf("unrecognized order date %q", raw)
}

// MarshalJSON implements json.Marshaler
func (d OrderDate) MarshalJSON() ([]byte, error) {
	if d.floating {
		return json.Marshal(d.wall.Format("2006-01-02T15:04:05.999999999"))
	}
	return json.Marshal(d.wall.Format(time.RFC3339Nano))
}

// In resolves the date to an instant. Dates that carried a zone keep it.
func (d OrderDate) In(loc *time.Location) time.Time {
	if !d.floating {
		return d.wall
	}
	return time.Date(d.wall.Year(), d.wall.Month(), d.wall.Day(),
		d.wall.Hour(), d.wall.Minute(), d.wall.Second(), d.wall.Nanosecond(), loc)
}

// NewOrderDate wraps an instant
func NewOrderDate(t time.Time) OrderDate {
	return OrderDate{wall: t}
}

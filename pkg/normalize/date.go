package normalize

import (
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/harrisonrobin/lifestyle/pkg/model"
)

const msPerDay = 24 * 60 * 60 * 1000

// Serials outside this range cannot be represented as a time.Time without
// overflow (roughly years 0100 through 9999).
const (
	minSerial = -657434
	maxSerial = 2958466
)

// SpreadsheetEpoch is day zero of spreadsheet date serials.
var SpreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// SerialToTime converts a day-count serial to a wall-clock time in loc.
// The fractional part is the time of day.
func SerialToTime(serial float64, loc *time.Location) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < minSerial || serial > maxSerial {
		return time.Time{}, false
	}
	days := math.Floor(serial)
	ms := math.Round((serial - days) * msPerDay)
	t := SpreadsheetEpoch.AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc), true
}

// resolveDate returns the calendar day of v, or false when the row has no
// usable date.
func (p *Parser) resolveDate(v model.Value) (time.Time, bool) {
	var t time.Time
	switch v.Kind() {
	case model.KindEmpty:
		return time.Time{}, false
	case model.KindInstant:
		t, _ = v.InstantValue()
		if t.IsZero() {
			return time.Time{}, false
		}
	case model.KindSerial:
		serial, _ := v.SerialValue()
		var ok bool
		if t, ok = SerialToTime(serial, p.loc); !ok {
			return time.Time{}, false
		}
	case model.KindText:
		s, _ := v.TextValue()
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false
		}
		parsed, err := dateparse.ParseIn(s, p.loc)
		if err != nil {
			return time.Time{}, false
		}
		t = parsed
	default:
		return time.Time{}, false
	}
	return midnight(t), true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

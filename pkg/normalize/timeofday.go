package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/harrisonrobin/lifestyle/pkg/model"
)

var clockRegex = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})(?::(\d{2}))?\s*(AM|PM)?$`)

// resolveTime anchors a start/end cell to day. It returns nil when the cell is
// blank or cannot be read.
//
// Numeric cells are read as a fraction of day and added to day's midnight.
// Unlike resolveDate this does not go through the spreadsheet epoch, so a full
// date serial in a time column lands far in the future.
func (p *Parser) resolveTime(day time.Time, v model.Value) *time.Time {
	switch v.Kind() {
	case model.KindEmpty:
		return nil
	case model.KindInstant:
		t, _ := v.InstantValue()
		return &t
	case model.KindSerial:
		f, _ := v.SerialValue()
		ms := math.Round(f * msPerDay)
		if math.IsNaN(ms) || math.Abs(ms) > float64(math.MaxInt64/int64(time.Millisecond)) {
			return nil
		}
		t := day.Add(time.Duration(ms) * time.Millisecond)
		return &t
	case model.KindText:
		s, _ := v.TextValue()
		return p.parseClock(day, strings.TrimSpace(s))
	}
	return nil
}

func (p *Parser) parseClock(day time.Time, s string) *time.Time {
	if s == "" {
		return nil
	}
	if m := clockRegex.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		sec := 0
		if m[3] != "" {
			sec, _ = strconv.Atoi(m[3])
		}
		switch strings.ToUpper(m[4]) {
		case "PM":
			if h < 12 {
				h += 12
			}
		case "AM":
			if h == 12 {
				h = 0
			}
		}
		t := time.Date(day.Year(), day.Month(), day.Day(), h, minute, sec, 0, day.Location())
		return &t
	}
	t, err := dateparse.ParseIn(s, p.loc)
	if err != nil {
		return nil
	}
	return &t
}

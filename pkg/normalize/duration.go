package normalize

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/harrisonrobin/lifestyle/pkg/model"
)

// maxMinutes caps every duration.
const maxMinutes = math.MaxInt32

var (
	// H:MM:SS or MM:SS
	clockDurationRegex = regexp.MustCompile(`^(?:(\d{1,2}):)?(\d{1,2}):(\d{2})$`)
	// "1h 15m", "2h", "45m"; both tokens optional
	unitDurationRegex = regexp.MustCompile(`(?i)(?:(\d+)\s*h)?\s*(?:(\d+)\s*m)?`)
)

// durationMinutes reads a duration cell. Anything unreadable is 0.
func durationMinutes(v model.Value) int {
	switch v.Kind() {
	case model.KindSerial:
		f, _ := v.SerialValue()
		m := math.Round(f * 24 * 60)
		if math.IsNaN(m) || m <= 0 {
			return 0
		}
		if m > maxMinutes {
			return maxMinutes
		}
		return int(m)
	case model.KindText:
		s, _ := v.TextValue()
		return parseDurationText(strings.TrimSpace(s))
	default:
		return 0
	}
}

func parseDurationText(s string) int {
	if s == "" {
		return 0
	}
	if m := clockDurationRegex.FindStringSubmatch(s); m != nil {
		return minutes(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	// The unit pattern can match the empty string, in which case the
	// leftmost match is at position 0 and both groups are empty.
	if m := unitDurationRegex.FindStringSubmatch(s); m != nil {
		return minutes(atoi(m[1]), atoi(m[2]), 0)
	}
	return 0
}

// minutes totals h:m:s in whole minutes, saturating at maxMinutes.
func minutes(h, m, s int) int {
	total := int64(min(h, maxMinutes/60))*60 + int64(min(m, maxMinutes)) + int64(min(s, maxMinutes)/60)
	if total > maxMinutes {
		return maxMinutes
	}
	return int(total)
}

// atoi reads a digit run; runs too long for an int saturate.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt
		}
		return 0
	}
	return n
}

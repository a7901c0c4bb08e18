package timetable

import (
	"regexp"
	"strconv"

	"github.com/selim/coursepilot/internal/pkg/logger"
)

// clockPattern matches catalog wall-clock times: H:MM or HH:MM immediately
// followed by AM or PM, e.g. "9:05AM" or "11:25PM".
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(AM|PM)$`)

// ParseClock converts a 12-hour clock string into minutes since midnight
// (0-1439). Malformed input resolves to 0 (midnight) rather than an error:
// catalog meeting data is dirty in practice, and downstream comparisons must
// never fail on it. Every degraded parse is logged as a data-quality signal.
func ParseClock(s string) int {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		logger.Warn().Str("time", s).Msg("Unparseable clock time, defaulting to midnight")
		return 0
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	hour = hour % 12
	if m[3] == "PM" {
		hour += 12
	}

	return hour*60 + minute
}

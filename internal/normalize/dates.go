package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date formats seen in the clinic "edit_date" column.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
}

// rocDate matches Minguo-calendar dates such as 114/08/20 or 114-8-20.
var rocDate = regexp.MustCompile(`^(\d{2,3})[/.-](\d{1,2})[/.-](\d{1,2})$`)

// rocEpoch is the Gregorian year preceding Minguo year 1.
const rocEpoch = 1911

// ParseDate attempts to parse an update marker in the common Gregorian
// layouts and in the Minguo calendar. Returns nil if the input is empty or
// unparseable; the raw text is kept by the caller either way.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	if m := rocDate.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if mo < 1 || mo > 12 || d < 1 || d > 31 {
			return nil
		}
		t := time.Date(y+rocEpoch, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
		if t.Day() != d {
			return nil
		}
		return &t
	}
	return nil
}

package normalizer

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Timestamps must land in years 1 through 9999.
const (
	minEpochSec = -62135596800
	maxEpochSec = 253402300800
)

// isoLayouts cover the zero-padded ISO 8601 forms produced by standard
// tooling. Fractional seconds are accepted after the seconds field even
// though the layouts do not spell them out.
var isoLayouts = []struct {
	layout    string
	hasOffset bool
}{
	{layout: "2006-01-02T15:04:05-07:00", hasOffset: true},
	{layout: "2006-01-02 15:04:05-07:00", hasOffset: true},
	{layout: "2006-01-02T15:04-07:00", hasOffset: true},
	{layout: "2006-01-02 15:04-07:00", hasOffset: true},
	{layout: "2006-01-02T15:04:05"},
	{layout: "2006-01-02 15:04:05"},
	{layout: "2006-01-02T15:04"},
	{layout: "2006-01-02 15:04"},
	{layout: "2006-01-02"},
}

// datePatterns cover common loosely formatted dates found in scraped
// data. Order matters: the day-first slash form is tried before the
// month-first one, so "01/02/2020" resolves to February 1st. Layouts
// marked dateOnly render without a time part.
var datePatterns = []struct {
	layout   string
	dateOnly bool
}{
	{layout: "2006-1-2", dateOnly: true},
	{layout: "2006/1/2", dateOnly: true},
	{layout: "2006.1.2", dateOnly: true},
	{layout: "2006-1-2 15:4"},
	{layout: "2006-1-2 15:4:5"},
	{layout: "2006/1/2 15:4"},
	{layout: "2006/1/2 15:4:5"},
	{layout: "2/1/2006", dateOnly: true},
	{layout: "1/2/2006", dateOnly: true},
	{layout: "Jan 2, 2006", dateOnly: true},
	{layout: "January 2, 2006", dateOnly: true},
}

// FormatISO renders t as ISO 8601 text. Seconds are always present,
// fractional seconds appear only when the microsecond part is nonzero,
// and the numeric UTC offset is appended when withOffset is set.
func FormatISO(t time.Time, withOffset bool) string {
	layout := "2006-01-02T15:04:05"
	if t.Nanosecond()/1000 != 0 {
		layout += ".000000"
	}
	if withOffset {
		layout += "-07:00"
	}

	return t.Format(layout)
}

// epochToISO converts Unix epoch seconds to ISO 8601 text in UTC.
func epochToISO(sec float64) (string, bool) {
	if math.IsNaN(sec) || sec < minEpochSec || sec >= maxEpochSec {
		return "", false
	}

	whole, frac := math.Modf(sec)
	t := time.Unix(int64(whole), int64(frac*float64(time.Second))).UTC()

	return FormatISO(t, true), true
}

// ParseDateToISO standardizes a date value to ISO 8601 text. Numeric
// values are treated as Unix epoch seconds in UTC. Text values are
// normalized, then tried against the padded ISO forms and finally the
// loose scraped-data patterns. The second return is false when the value
// cannot be interpreted as a date in years 1 through 9999.
func ParseDateToISO(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case int:
		return epochToISO(float64(v))
	case int64:
		return epochToISO(float64(v))
	case float64:
		return epochToISO(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return "", false
		}

		return epochToISO(f)
	}

	s := NormalizeText(value)
	if s == "" {
		return "", false
	}

	// ISO first. A trailing Z means UTC.
	iso := strings.ReplaceAll(s, "Z", "+00:00")
	for _, l := range isoLayouts {
		t, err := time.Parse(l.layout, iso)
		if err != nil {
			continue
		}

		if l.hasOffset {
			t = t.UTC()
		}

		// Layouts accept year 0000, which is below the supported range.
		if t.Year() < 1 {
			continue
		}

		return FormatISO(t, l.hasOffset), true
	}

	for _, p := range datePatterns {
		t, err := time.Parse(p.layout, s)
		if err != nil {
			continue
		}

		if t.Year() < 1 {
			continue
		}

		if p.dateOnly {
			return t.Format("2006-01-02"), true
		}

		return FormatISO(t, false), true
	}

	return "", false
}

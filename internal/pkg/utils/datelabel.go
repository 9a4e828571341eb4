package utils

import (
	"time"
)

// dateLabelLayout renders dates like "Nov 30, 2025".
const dateLabelLayout = "Jan 2, 2006"

// dateLabelNA is returned for absent or unparseable inputs.
const dateLabelNA = "N/A"

// FormatDateLabel renders a timestamp as a short English display label.
//
// Numeric inputs are interpreted as epoch seconds. String inputs are parsed
// against a small set of common date-time layouts. Anything absent or
// unparseable yields "N/A"; this function never fails.
//
// The calendar day is taken in UTC. The upstream representations (gateway
// epochs, ISO strings) do not carry a display zone, so UTC is used
// consistently rather than the server's local zone.
func FormatDateLabel(v interface{}) string {
	switch d := v.(type) {
	case nil:
		return dateLabelNA
	case time.Time:
		if d.IsZero() {
			return dateLabelNA
		}
		return d.UTC().Format(dateLabelLayout)
	case int64:
		return time.Unix(d, 0).UTC().Format(dateLabelLayout)
	case int:
		return time.Unix(int64(d), 0).UTC().Format(dateLabelLayout)
	case float64:
		return time.Unix(int64(d), 0).UTC().Format(dateLabelLayout)
	case string:
		if d == "" {
			return dateLabelNA
		}
		t, err := parseDateString(d)
		if err != nil {
			return dateLabelNA
		}
		return t.UTC().Format(dateLabelLayout)
	default:
		return dateLabelNA
	}
}

// parseDateString tries the layouts we actually receive: RFC3339 from our own
// storage, plus a couple of date-only and space-separated variants.
func parseDateString(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// EpochToISO converts gateway epoch seconds into the ISO-8601 UTC string used
// for Profile.CurrentPeriodEnd.
func EpochToISO(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format(time.RFC3339)
}

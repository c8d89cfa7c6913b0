package vfm

import (
	"fmt"
	"math"
	"time"
)

// decodeProfileTime decodes one Profile_UTC_Time value. The integer part is
// a YYMMDD date (epoch 2000, so adding 2e7 yields YYYYMMDD) and the
// fractional part is the time of day as a fraction of one day.
func decodeProfileTime(v float64) (time.Time, error) {
	yyyymmdd := int(math.Floor(v + 2e7))
	year := yyyymmdd / 10000
	month := yyyymmdd / 100 % 100
	day := yyyymmdd % 100

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so a changed component
	// means the encoded date was not a real calendar date.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, fmt.Errorf("%.8f: %w", v, ErrTimestamp)
	}

	frac := v - math.Floor(v)
	return date.Add(time.Duration(frac * 24 * float64(time.Hour))), nil
}

package aggregation

import (
	"fmt"
	"time"
)

// Granularity is the calendar unit a window is bucketed by.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// dayKeyLayout renders day keys as DD-MM-YYYY.
const dayKeyLayout = "02-01-2006"

// ParseGranularity validates a granularity tag coming from outside the process.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityDay, GranularityMonth:
		return g, nil
	case "":
		return "", fmt.Errorf("granularity must not be empty")
	default:
		return "", fmt.Errorf("unsupported granularity %q (must be day or month)", s)
	}
}

// KeyFor maps a date to its bucket key. The key is computed from the local
// calendar fields of t, so callers must pass dates in the location they want
// buckets cut in.
func KeyFor(t time.Time, g Granularity) BucketKey {
	switch g {
	case GranularityDay:
		return BucketKey{Unit: GranularityDay, Day: t.Format(dayKeyLayout)}
	case GranularityMonth:
		// Month-of-year only: windows spanning more than a year alias months.
		return BucketKey{Unit: GranularityMonth, Month: uint8(t.Month() - 1)}
	default:
		panic(fmt.Sprintf("aggregation: unsupported granularity %q", g))
	}
}

// StartOf returns the first instant of the unit containing t.
// Example: StartOf(2023-03-20 14:05, day) → 2023-03-20 00:00
func StartOf(t time.Time, g Granularity) time.Time {
	year, month, day := t.Date()
	switch g {
	case GranularityDay:
		return Midnight(year, month, day, t.Location())
	case GranularityMonth:
		return Midnight(year, month, 1, t.Location())
	default:
		panic(fmt.Sprintf("aggregation: unsupported granularity %q", g))
	}
}

// EndOf returns the last representable instant of the unit containing t.
func EndOf(t time.Time, g Granularity) time.Time {
	return Advance(StartOf(t, g), g).Add(-time.Nanosecond)
}

// Advance returns the start of the unit following the one containing t.
// Steps are taken on the civil calendar, so local midnight stays stable
// across DST transitions.
func Advance(t time.Time, g Granularity) time.Time {
	year, month, day := t.Date()
	switch g {
	case GranularityDay:
		return Midnight(year, month, day+1, t.Location())
	case GranularityMonth:
		return Midnight(year, month+1, 1, t.Location())
	default:
		panic(fmt.Sprintf("aggregation: unsupported granularity %q", g))
	}
}

// Midnight returns the first instant of the given calendar day in loc.
// Out-of-range days and months are normalized the way time.Date does. When
// local midnight is skipped by a DST gap, the day starts at the transition.
func Midnight(year int, month time.Month, day int, loc *time.Location) time.Time {
	year, month, day = time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()

	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if y, m, d := t.Date(); y == year && m == month && d == day {
		return t
	}

	// time.Date resolved the missing midnight into the previous day.
	if _, end := t.ZoneBounds(); !end.IsZero() {
		return end
	}
	return t
}

// UnitsBetween counts whole calendar units from start to end. It is negative
// when end falls in an earlier unit than start.
func UnitsBetween(start, end time.Time, g Granularity) int {
	switch g {
	case GranularityDay:
		return civilDay(end) - civilDay(start)
	case GranularityMonth:
		return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	default:
		panic(fmt.Sprintf("aggregation: unsupported granularity %q", g))
	}
}

// civilDay numbers the calendar day of t (in its own location) so that
// consecutive days differ by exactly one regardless of DST.
func civilDay(t time.Time) int {
	year, month, day := t.Date()
	return int(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Granularity
		wantError bool
	}{
		{name: "day", input: "day", want: GranularityDay},
		{name: "month", input: "month", want: GranularityMonth},
		{name: "empty invalid", input: "", wantError: true},
		{name: "week unsupported", input: "week", wantError: true},
		{name: "case sensitive", input: "Day", wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ParseGranularity(tc.input)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, g)
		})
	}
}

func TestKeyFor(t *testing.T) {
	ts := time.Date(2023, 3, 20, 23, 59, 59, 0, time.UTC)

	require.Equal(t, BucketKey{Unit: GranularityDay, Day: "20-03-2023"}, KeyFor(ts, GranularityDay))
	require.Equal(t, BucketKey{Unit: GranularityMonth, Month: 2}, KeyFor(ts, GranularityMonth))
	require.Equal(t, "March", KeyFor(ts, GranularityMonth).String())
}

func TestKeyFor_UsesLocalCalendar(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC on the 20th is already the 21st in UTC+7.
	ts := time.Date(2023, 3, 20, 20, 0, 0, 0, time.UTC)

	require.Equal(t, "20-03-2023", KeyFor(ts, GranularityDay).Day)
	require.Equal(t, "21-03-2023", KeyFor(ts.In(jakarta), GranularityDay).Day)
}

func TestKeyFor_MonthAliasesAcrossYears(t *testing.T) {
	a := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, KeyFor(a, GranularityMonth), KeyFor(b, GranularityMonth))
	require.NotEqual(t, KeyFor(a, GranularityDay), KeyFor(b, GranularityDay))
}

func TestKeyFor_UnitsNeverCollide(t *testing.T) {
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NotEqual(t, KeyFor(ts, GranularityDay), KeyFor(ts, GranularityMonth))
}

func TestStartOfEndOf(t *testing.T) {
	ts := time.Date(2024, 2, 11, 10, 35, 42, 123456789, time.UTC)

	require.Equal(t, time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC), StartOf(ts, GranularityDay))
	require.Equal(t, time.Date(2024, 2, 11, 23, 59, 59, 999999999, time.UTC), EndOf(ts, GranularityDay))
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), StartOf(ts, GranularityMonth))
	// 2024 is a leap year.
	require.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999999999, time.UTC), EndOf(ts, GranularityMonth))
}

func TestAdvance_MonthFromFirstDay(t *testing.T) {
	jan := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	feb := Advance(jan, GranularityMonth)
	mar := Advance(feb, GranularityMonth)

	require.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), feb)
	require.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), mar)
}

func TestAdvance_DayAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// DST starts on 2023-03-12 in New York; that day is 23 hours long.
	day := time.Date(2023, 3, 12, 0, 0, 0, 0, loc)
	next := Advance(day, GranularityDay)

	require.Equal(t, time.Date(2023, 3, 13, 0, 0, 0, 0, loc), next)
	require.Equal(t, 23*time.Hour, next.Sub(day))
	require.Equal(t, 1, UnitsBetween(day, next, GranularityDay))
}

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return loc
}

func TestStartOf_MidnightInDSTGap(t *testing.T) {
	loc := saoPaulo(t)
	// DST started at 00:00 on 2018-11-04 in Sao Paulo; 00:00-00:59 never happened.
	want := time.Date(2018, 11, 4, 1, 0, 0, 0, loc)

	got := StartOf(time.Date(2018, 11, 4, 15, 0, 0, 0, loc), GranularityDay)

	require.True(t, want.Equal(got), "got %s", got)
	require.Equal(t, 4, got.Day())
	require.Equal(t, "04-11-2018", KeyFor(got, GranularityDay).Day)
}

func TestAdvance_IntoAndPastDSTGap(t *testing.T) {
	loc := saoPaulo(t)
	sat := time.Date(2018, 11, 3, 0, 0, 0, 0, loc)

	sun := Advance(sat, GranularityDay)
	mon := Advance(sun, GranularityDay)

	require.True(t, time.Date(2018, 11, 4, 1, 0, 0, 0, loc).Equal(sun), "got %s", sun)
	require.True(t, time.Date(2018, 11, 5, 0, 0, 0, 0, loc).Equal(mon), "got %s", mon)
	require.Equal(t, 23*time.Hour, sun.Sub(sat))
	require.Equal(t, 23*time.Hour, mon.Sub(sun))
}

func TestMidnight_NormalizesOverflow(t *testing.T) {
	require.Equal(t, time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC), Midnight(2023, time.February, 29, time.UTC))
	require.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), Midnight(2024, time.January, 0, time.UTC))
}

func TestUnitsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		g     Granularity
		want  int
	}{
		{
			name:  "same day",
			start: time.Date(2023, 3, 18, 1, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 3, 18, 23, 0, 0, 0, time.UTC),
			g:     GranularityDay,
			want:  0,
		},
		{
			name:  "five day window",
			start: time.Date(2023, 3, 18, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 3, 22, 0, 0, 0, 0, time.UTC),
			g:     GranularityDay,
			want:  4,
		},
		{
			name:  "across year boundary",
			start: time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			g:     GranularityDay,
			want:  1,
		},
		{
			name:  "reversed window is negative",
			start: time.Date(2023, 3, 22, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 3, 18, 0, 0, 0, 0, time.UTC),
			g:     GranularityDay,
			want:  -4,
		},
		{
			name:  "whole year of months",
			start: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			g:     GranularityMonth,
			want:  11,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, UnitsBetween(tc.start, tc.end, tc.g))
		})
	}
}

func TestUnsupportedGranularityPanics(t *testing.T) {
	ts := time.Date(2023, 3, 20, 0, 0, 0, 0, time.UTC)

	require.Panics(t, func() { KeyFor(ts, "week") })
	require.Panics(t, func() { StartOf(ts, "week") })
	require.Panics(t, func() { Advance(ts, "") })
	require.Panics(t, func() { UnitsBetween(ts, ts, "year") })
}

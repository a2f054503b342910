package aggregation

import (
	"time"
)

// WentBad reports whether the record counts as spoiled at now: its expiration
// day has been reached (same-or-after at day granularity) and it was not
// consumed on time.
//
// The result depends on now, so two calls at different wall-clock times can
// disagree for the same stored data.
func (r DatedRecord) WentBad(now time.Time) bool {
	if r.ConsumedOnTime {
		return false
	}
	expiry := StartOf(r.Date.In(now.Location()), GranularityDay)
	return !StartOf(now, GranularityDay).Before(expiry)
}

// Aggregate turns a sparse, unordered set of records into a dense series of
// went-bad counts, one DataPoint per unit from start's unit to end's unit
// inclusive, in ascending order. Empty buckets are emitted with Qty 0. A
// window whose start falls after its end yields an empty slice.
//
// Records are bucketed in start's location. Aggregate panics on an
// unsupported granularity.
func Aggregate(records []DatedRecord, start, end time.Time, g Granularity, now time.Time) []DataPoint {
	loc := start.Location()
	cursor := StartOf(start, g)
	limit := EndOf(end.In(loc), g)

	if cursor.After(limit) {
		return []DataPoint{}
	}

	groups := make(map[BucketKey][]DatedRecord)
	for _, rec := range records {
		key := KeyFor(rec.Date.In(loc), g)
		groups[key] = append(groups[key], rec)
	}

	points := make([]DataPoint, 0, UnitsBetween(cursor, limit, g)+1)
	for !cursor.After(limit) {
		qty := 0
		for _, rec := range groups[KeyFor(cursor, g)] {
			if rec.WentBad(now) {
				qty++
			}
		}

		points = append(points, DataPoint{Date: cursor, Qty: qty})
		cursor = Advance(cursor, g)
	}

	return points
}

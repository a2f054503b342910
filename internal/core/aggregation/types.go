package aggregation

import (
	"time"
)

// BucketKey identifies one calendar bucket. Exactly one of Day or Month is
// meaningful, selected by Unit, so keys of different granularities never
// collide inside a grouping map.
type BucketKey struct {
	Unit  Granularity
	Day   string // DD-MM-YYYY when Unit is day
	Month uint8  // zero-based month-of-year when Unit is month
}

func (k BucketKey) String() string {
	if k.Unit == GranularityMonth {
		return time.Month(k.Month + 1).String()
	}
	return k.Day
}

// DatedRecord is the aggregation input derived from one stored product.
type DatedRecord struct {
	Date           time.Time // expiration date
	ConsumedOnTime bool      // consumed no later than its expiration day
}

// DataPoint is one bucket of chart output.
type DataPoint struct {
	Date time.Time `json:"date"` // bucket start
	Qty  int       `json:"qty"`
}

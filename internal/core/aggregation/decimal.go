package aggregation

import "github.com/shopspring/decimal"

// ratePlaces is the precision went-bad rates are reported with.
const ratePlaces = 4

// Rate returns part/total rounded to four decimal places, or zero when
// total is not positive.
func Rate(part, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).
		DivRound(decimal.NewFromInt(int64(total)), ratePlaces)
}

// TotalQty sums the Qty of every point.
func TotalQty(points []DataPoint) int {
	total := 0
	for _, p := range points {
		total += p.Qty
	}
	return total
}

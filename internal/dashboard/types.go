package dashboard

import (
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/core/aggregation"
	"github.com/shopspring/decimal"
)

// Timeframe selects the chart window relative to now.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"  // Sunday-start week, one point per day
	TimeframeMonth Timeframe = "month" // calendar month, one point per day
	TimeframeYear  Timeframe = "year"  // calendar year, one point per month
)

// WentBadQuery represents the query parameters of the went-bad chart.
type WentBadQuery struct {
	Timeframe string `form:"timeframe"` // default: "week"
}

// WentBadResponse is the chart payload for one timeframe.
type WentBadResponse struct {
	Timeframe     Timeframe               `json:"timeframe"`
	Granularity   aggregation.Granularity `json:"granularity"`
	Start         time.Time               `json:"start"`
	End           time.Time               `json:"end"`
	GeneratedAt   time.Time               `json:"generated_at"`
	TotalProducts int                     `json:"total_products"`
	TotalWentBad  int                     `json:"total_went_bad"`
	WentBadRate   decimal.Decimal         `json:"went_bad_rate"`
	Points        []aggregation.DataPoint `json:"points"`
}

// ExpiringSoonQuery represents the query parameters of the expiring list.
type ExpiringSoonQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ExpiringSoonResponse lists active products, soonest expiration first.
type ExpiringSoonResponse struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Products    []v1.Product `json:"products"`
}

// Package dashboard serves the chart data shown on the home screen.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/core/aggregation"
	"github.com/JosephJoshua/posad/internal/core/storage"
)

const defaultExpiringLimit = 10

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid dashboard query")

// Service turns stored products into chart series.
type Service struct {
	products storage.ProductStore
	loc      *time.Location
	nowFn    func() time.Time
}

// NewService creates a dashboard service that buckets dates in loc.
func NewService(products storage.ProductStore, loc *time.Location) *Service {
	if products == nil {
		panic("dashboard: product store must not be nil")
	}
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		products: products,
		loc:      loc,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// ParseTimeframe defaults an empty value to week.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case "":
		return TimeframeWeek, nil
	case TimeframeWeek, TimeframeMonth, TimeframeYear:
		return Timeframe(s), nil
	default:
		return "", invalidQueryf("invalid timeframe: %s (must be week, month, or year)", s)
	}
}

// Window returns the inclusive chart window containing now and the
// granularity its points use. Weeks start on Sunday.
func Window(tf Timeframe, now time.Time) (start, end time.Time, g aggregation.Granularity, err error) {
	switch tf {
	case TimeframeWeek:
		g = aggregation.GranularityDay
		y, m, d := now.Date()
		sunday := d - int(now.Weekday())
		start = aggregation.Midnight(y, m, sunday, now.Location())
		end = aggregation.EndOf(aggregation.Midnight(y, m, sunday+6, now.Location()), g)
	case TimeframeMonth:
		g = aggregation.GranularityDay
		start = aggregation.StartOf(now, aggregation.GranularityMonth)
		end = aggregation.EndOf(now, aggregation.GranularityMonth)
	case TimeframeYear:
		g = aggregation.GranularityMonth
		start = aggregation.Midnight(now.Year(), time.January, 1, now.Location())
		end = aggregation.EndOf(aggregation.Midnight(now.Year(), time.December, 1, now.Location()), g)
	default:
		return time.Time{}, time.Time{}, "", invalidQueryf("invalid timeframe: %s", tf)
	}
	return start, end, g, nil
}

// WentBad builds the went-bad series for the user's products expiring inside
// the timeframe.
func (s *Service) WentBad(ctx context.Context, uid string, tf Timeframe) (*WentBadResponse, error) {
	if uid == "" {
		return nil, invalidQueryf("user id is required")
	}

	now := s.nowFn().In(s.loc)
	start, end, g, err := Window(tf, now)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListProducts(ctx, storage.ProductFilter{
		UserID:          uid,
		IncludeConsumed: true,
		ExpiresFrom:     start,
		ExpiresTo:       end,
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	records := make([]aggregation.DatedRecord, 0, len(products))
	for i := range products {
		records = append(records, products[i].Record())
	}

	points := aggregation.Aggregate(records, start, end, g, now)
	wentBad := aggregation.TotalQty(points)

	slog.Debug("[Dashboard] Built went-bad series",
		"user_id", uid,
		"timeframe", tf,
		"products", len(products),
		"went_bad", wentBad,
		"points", len(points))

	return &WentBadResponse{
		Timeframe:     tf,
		Granularity:   g,
		Start:         start,
		End:           end,
		GeneratedAt:   now,
		TotalProducts: len(products),
		TotalWentBad:  wentBad,
		WentBadRate:   aggregation.Rate(wentBad, len(products)),
		Points:        points,
	}, nil
}

// ExpiringSoon returns up to limit active products, soonest expiration first.
func (s *Service) ExpiringSoon(ctx context.Context, uid string, limit int) (*ExpiringSoonResponse, error) {
	if uid == "" {
		return nil, invalidQueryf("user id is required")
	}
	if limit <= 0 {
		limit = defaultExpiringLimit
	}

	products, err := s.products.ListProducts(ctx, storage.ProductFilter{UserID: uid})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if len(products) > limit {
		products = products[:limit]
	}
	if products == nil {
		products = []v1.Product{}
	}

	return &ExpiringSoonResponse{
		GeneratedAt: s.nowFn().In(s.loc),
		Products:    products,
	}, nil
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

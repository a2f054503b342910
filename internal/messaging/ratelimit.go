package messaging

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedSender throttles SendAll calls to a fixed number of batches per
// second.
type RateLimitedSender struct {
	next    Sender
	limiter *rate.Limiter
}

// NewRateLimitedSender wraps next. batchesPerSecond must be positive; burst
// below one is raised to one.
func NewRateLimitedSender(next Sender, batchesPerSecond float64, burst int) *RateLimitedSender {
	if next == nil {
		panic("messaging: sender must not be nil")
	}
	if batchesPerSecond <= 0 {
		panic(fmt.Sprintf("messaging: invalid rate %v", batchesPerSecond))
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedSender{next: next, limiter: rate.NewLimiter(rate.Limit(batchesPerSecond), burst)}
}

func (s *RateLimitedSender) SendAll(ctx context.Context, messages []Message) (BatchResponse, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return BatchResponse{}, fmt.Errorf("rate limit wait: %w", err)
	}
	return s.next.SendAll(ctx, messages)
}

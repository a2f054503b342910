// Package messaging hands push notifications to the delivery gateway.
package messaging

import (
	"context"
	"errors"
)

// ErrBatchTooLarge is returned when a single SendAll call exceeds the
// sender's batch limit.
var ErrBatchTooLarge = errors.New("message batch too large")

// Message is one push notification addressed to one device token.
type Message struct {
	Token     string
	Title     string
	Body      string
	Link      string
	UserID    string
	ProductID string
}

// SendResponse is the outcome for the message at the same index.
type SendResponse struct {
	MessageID string
	Error     error
}

// BatchResponse summarizes one SendAll call.
type BatchResponse struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResponse
}

// Sender delivers a batch of messages. A non-nil error means the batch as a
// whole could not be handed off; per-message failures are reported in the
// BatchResponse.
type Sender interface {
	SendAll(ctx context.Context, messages []Message) (BatchResponse, error)
}

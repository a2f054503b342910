package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JosephJoshua/posad/internal/core/batch"
)

// LogSender logs messages instead of delivering them. Used in development
// and when no gateway is configured.
type LogSender struct{}

func (LogSender) SendAll(_ context.Context, messages []Message) (BatchResponse, error) {
	if len(messages) > batch.MaxSendBatch {
		return BatchResponse{}, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(messages), batch.MaxSendBatch)
	}

	resp := BatchResponse{Responses: make([]SendResponse, len(messages))}
	for i, msg := range messages {
		slog.Info("[LogSender] Notification",
			"user_id", msg.UserID,
			"product_id", msg.ProductID,
			"title", msg.Title,
			"body", msg.Body)
		resp.Responses[i] = SendResponse{MessageID: fmt.Sprintf("log-%d", i)}
	}
	resp.SuccessCount = len(messages)
	return resp, nil
}

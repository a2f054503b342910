package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JosephJoshua/posad/internal/core/batch"
	"github.com/redis/go-redis/v9"
)

// RedisStreamSender publishes messages to a Redis stream consumed by the push
// gateway. Each SendAll call is one pipeline of XADDs.
type RedisStreamSender struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewRedisStreamSender creates a sender from a redis:// URL. maxLen caps the
// stream length approximately; zero disables trimming.
func NewRedisStreamSender(url, stream string, maxLen int64) (*RedisStreamSender, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return NewRedisStreamSenderWithClient(redis.NewClient(opts), stream, maxLen), nil
}

// NewRedisStreamSenderWithClient wraps an existing client.
func NewRedisStreamSenderWithClient(client *redis.Client, stream string, maxLen int64) *RedisStreamSender {
	if client == nil {
		panic("messaging: redis client must not be nil")
	}
	if stream == "" {
		panic("messaging: stream must not be empty")
	}
	return &RedisStreamSender{client: client, stream: stream, maxLen: maxLen}
}

// SendAll publishes up to batch.MaxSendBatch messages. It returns an error
// only when no message could be published.
func (s *RedisStreamSender) SendAll(ctx context.Context, messages []Message) (BatchResponse, error) {
	if len(messages) == 0 {
		return BatchResponse{Responses: []SendResponse{}}, nil
	}
	if len(messages) > batch.MaxSendBatch {
		return BatchResponse{}, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(messages), batch.MaxSendBatch)
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(messages))
	queuedAt := time.Now().UTC().Format(time.RFC3339)

	for i, msg := range messages {
		args := &redis.XAddArgs{
			Stream: s.stream,
			Values: map[string]interface{}{
				"token":      msg.Token,
				"title":      msg.Title,
				"body":       msg.Body,
				"link":       msg.Link,
				"user_id":    msg.UserID,
				"product_id": msg.ProductID,
				"queued_at":  queuedAt,
			},
		}
		if s.maxLen > 0 {
			args.MaxLen = s.maxLen
			args.Approx = true
		}
		cmds[i] = pipe.XAdd(ctx, args)
	}

	// Exec reports the first failed command; per-command results are read below.
	_, execErr := pipe.Exec(ctx)

	resp := BatchResponse{Responses: make([]SendResponse, len(messages))}
	for i, cmd := range cmds {
		id, err := cmd.Result()
		resp.Responses[i] = SendResponse{MessageID: id, Error: err}
		if err != nil {
			resp.FailureCount++
			continue
		}
		resp.SuccessCount++
	}

	if resp.SuccessCount == 0 && execErr != nil {
		return resp, fmt.Errorf("failed to publish %d message(s) to %s: %w", len(messages), s.stream, execErr)
	}

	slog.Debug("[RedisStreamSender] Published batch",
		"stream", s.stream,
		"success", resp.SuccessCount,
		"failure", resp.FailureCount)
	return resp, nil
}

// Ping checks connectivity to Redis.
func (s *RedisStreamSender) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisStreamSender) Close() error {
	return s.client.Close()
}

// Package notifier sends push reminders for products approaching their
// expiration date.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/core/batch"
	"github.com/JosephJoshua/posad/internal/core/storage"
	"github.com/JosephJoshua/posad/internal/messaging"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// RunResult summarizes one notifier run.
type RunResult struct {
	Products     int // products found across all tiers
	Notified     int // products stamped as notified
	Skipped      int // products whose owner no longer exists
	Messages     int // messages built for owners' tokens
	Sent         int // messages accepted by the sender
	Failed       int // messages rejected by the sender or lost with a failed batch
	SendBatches  int
	WriteBatches int
}

// Job finds expiring products, notifies their owners and records the
// notification time.
type Job struct {
	users    storage.UserStore
	products storage.ProductStore
	sender   messaging.Sender
	tiers    []Tier
	loc      *time.Location
	link     string
	nowFn    func() time.Time
}

// NewJob creates a job. Tiers must already be validated.
func NewJob(
	users storage.UserStore,
	products storage.ProductStore,
	sender messaging.Sender,
	tiers []Tier,
	loc *time.Location,
	link string,
) *Job {
	if users == nil || products == nil || sender == nil {
		panic("notifier: stores and sender must not be nil")
	}
	if len(tiers) == 0 {
		panic("notifier: at least one tier is required")
	}
	if loc == nil {
		loc = time.Local
	}
	return &Job{
		users:    users,
		products: products,
		sender:   sender,
		tiers:    tiers,
		loc:      loc,
		link:     link,
		nowFn:    time.Now,
	}
}

// Run performs one pass. Products are only marked notified when every send
// batch was handed off, so a failed pass is retried on the next run.
func (j *Job) Run(ctx context.Context) (RunResult, error) {
	start := time.Now()
	result, err := j.run(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}
	recordRun(status, time.Since(start).Seconds(), result)

	return result, err
}

func (j *Job) run(ctx context.Context) (RunResult, error) {
	now := j.nowFn().In(j.loc)
	var result RunResult

	products, err := j.fetch(ctx, now)
	if err != nil {
		return result, err
	}
	result.Products = len(products)

	if len(products) == 0 {
		slog.Debug("[Notifier] No expiring products")
		return result, nil
	}

	owners, err := j.users.GetUsers(ctx, ownerIDs(products))
	if err != nil {
		return result, fmt.Errorf("load owners: %w", err)
	}

	messages := make([]messaging.Message, 0, len(products))
	keys := make([]v1.ProductKey, 0, len(products))

	for i := range products {
		p := &products[i]
		owner, ok := owners[p.UserID]
		if !ok {
			slog.Warn("[Notifier] Skipping product with missing owner",
				"product_id", p.ID,
				"user_id", p.UserID)
			result.Skipped++
			continue
		}

		for _, token := range owner.MessagingTokens {
			messages = append(messages, j.message(p, token, now))
		}
		keys = append(keys, p.Key())
	}
	result.Messages = len(messages)

	for i, chunk := range batch.Split(batch.MaxSendBatch, messages) {
		resp, err := j.sender.SendAll(ctx, chunk)
		if err != nil {
			result.Failed += len(chunk)
			return result, fmt.Errorf("send batch %d: %w", i+1, err)
		}
		result.SendBatches++
		result.Sent += resp.SuccessCount
		result.Failed += resp.FailureCount

		if resp.FailureCount > 0 {
			slog.Warn("[Notifier] Some messages failed to send",
				"batch", i+1,
				"failed", resp.FailureCount,
				"sent", resp.SuccessCount)
		}
	}

	type writeProgress struct {
		batches int
		keys    int
		err     error
	}

	at := j.nowFn().UTC()
	progress := batch.Reduce(batch.MaxWriteBatch, keys, func(acc writeProgress, chunk []v1.ProductKey) writeProgress {
		if acc.err != nil {
			return acc
		}
		if err := j.products.MarkNotified(ctx, chunk, at); err != nil {
			acc.err = fmt.Errorf("mark notified batch %d: %w", acc.batches+1, err)
			return acc
		}
		acc.batches++
		acc.keys += len(chunk)
		return acc
	}, writeProgress{})

	result.WriteBatches = progress.batches
	result.Notified = progress.keys
	if progress.err != nil {
		return result, progress.err
	}

	slog.Info("[Notifier] Run complete",
		"products", result.Products,
		"notified", result.Notified,
		"skipped", result.Skipped,
		"messages", result.Messages,
		"sent", result.Sent,
		"failed", result.Failed,
		"send_batches", result.SendBatches,
		"write_batches", result.WriteBatches)

	return result, nil
}

// fetch queries every tier concurrently and concatenates the results in tier
// order. A product matched by more than one tier is kept once.
func (j *Job) fetch(ctx context.Context, now time.Time) ([]v1.Product, error) {
	perTier := make([][]v1.Product, len(j.tiers))

	g, gctx := errgroup.WithContext(ctx)
	for i, tier := range j.tiers {
		g.Go(func() error {
			found, err := j.products.FindExpiring(gctx, tier.Query(now))
			if err != nil {
				return fmt.Errorf("fetch tier %s: %w", tier.Name, err)
			}
			perTier[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[v1.ProductKey]struct{})
	var products []v1.Product
	for i, found := range perTier {
		slog.Debug("[Notifier] Tier fetched", "tier", j.tiers[i].Name, "count", len(found))
		for _, p := range found {
			if _, dup := seen[p.Key()]; dup {
				continue
			}
			seen[p.Key()] = struct{}{}
			products = append(products, p)
		}
	}
	return products, nil
}

func (j *Job) message(p *v1.Product, token string, now time.Time) messaging.Message {
	expiringIn := strings.TrimSpace(humanize.RelTime(now, p.ExpirationDate, "", ""))

	return messaging.Message{
		Token:     token,
		Title:     fmt.Sprintf("Expiring soon - %s", p.Name),
		Body:      fmt.Sprintf("%s is expiring in %s. Go check on it now!", p.Name, expiringIn),
		Link:      j.link,
		UserID:    p.UserID,
		ProductID: p.ID,
	}
}

func ownerIDs(products []v1.Product) []string {
	seen := make(map[string]struct{}, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		ids = append(ids, p.UserID)
	}
	return ids
}

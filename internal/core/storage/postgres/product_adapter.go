package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/core/batch"
	"github.com/JosephJoshua/posad/internal/core/storage"
)

// ProductAdapter implements storage.ProductStore using PostgreSQL.
type ProductAdapter struct {
	db *sql.DB
}

// NewProductAdapter creates a ProductAdapter sharing the given connection.
func NewProductAdapter(db *sql.DB) *ProductAdapter {
	return &ProductAdapter{db: db}
}

// AddProduct returns storage.ErrNotFound when the section does not belong to
// the user and storage.ErrDuplicate when the ID is taken.
func (a *ProductAdapter) AddProduct(ctx context.Context, p *v1.Product) error {
	_, err := a.db.ExecContext(ctx, queryInsertProduct,
		p.ID,
		p.UserID,
		p.SectionID,
		p.Name,
		p.ImageURL,
		p.ImageSource,
		p.ExpirationDate,
		nullTime(p.ConsumedAt),
		p.IsOnTime,
		nullTime(p.LastNotified),
		p.CreatedAt,
	)
	if err != nil {
		mapped := mapWriteError(err)
		if errors.Is(mapped, storage.ErrNotFound) || errors.Is(mapped, storage.ErrDuplicate) {
			return mapped
		}
		return fmt.Errorf("failed to add product: %w", err)
	}

	slog.Debug("[ProductAdapter] Added product",
		"user_id", p.UserID,
		"section_id", p.SectionID,
		"product_id", p.ID)
	return nil
}

// GetProduct returns storage.ErrNotFound when key addresses no product.
func (a *ProductAdapter) GetProduct(ctx context.Context, key v1.ProductKey) (*v1.Product, error) {
	p, err := scanProductRow(a.db.QueryRowContext(ctx, queryGetProduct, key.UserID, key.SectionID, key.ProductID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct writes the editable fields of p.
func (a *ProductAdapter) UpdateProduct(ctx context.Context, p *v1.Product) error {
	result, err := a.db.ExecContext(ctx, queryUpdateProduct,
		p.UserID,
		p.SectionID,
		p.ID,
		p.Name,
		p.ImageURL,
		p.ImageSource,
		p.ExpirationDate,
		nullTime(p.LastNotified),
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return expectAffected(result)
}

func (a *ProductAdapter) DeleteProduct(ctx context.Context, key v1.ProductKey) error {
	result, err := a.db.ExecContext(ctx, queryDeleteProduct, key.UserID, key.SectionID, key.ProductID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return expectAffected(result)
}

// CompleteProduct records consumption. Completing twice overwrites the
// earlier timestamp.
func (a *ProductAdapter) CompleteProduct(ctx context.Context, key v1.ProductKey, consumedAt time.Time, onTime bool) error {
	result, err := a.db.ExecContext(ctx, queryCompleteProduct,
		key.UserID,
		key.SectionID,
		key.ProductID,
		consumedAt,
		onTime,
	)
	if err != nil {
		return fmt.Errorf("failed to complete product: %w", err)
	}
	return expectAffected(result)
}

// ListProducts returns products matching filter ordered by expiration date.
func (a *ProductAdapter) ListProducts(ctx context.Context, filter storage.ProductFilter) ([]v1.Product, error) {
	rows, err := a.db.QueryContext(ctx, queryListProducts,
		filter.UserID,
		filter.SectionID,
		filter.IncludeConsumed,
		boundOrNull(filter.ExpiresFrom),
		boundOrNull(filter.ExpiresTo),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return collectProducts(rows)
}

// FindExpiring scans active products of every user inside the query window.
func (a *ProductAdapter) FindExpiring(ctx context.Context, q storage.ExpiringQuery) ([]v1.Product, error) {
	rows, err := a.db.QueryContext(ctx, queryFindExpiring, q.Start, q.End, q.NotifiedBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to query expiring products: %w", err)
	}
	return collectProducts(rows)
}

// MarkNotified stamps last_notified on every key in a single transaction.
// Keys that no longer exist are skipped.
func (a *ProductAdapter) MarkNotified(ctx context.Context, keys []v1.ProductKey, at time.Time) error {
	if len(keys) == 0 {
		return nil
	}
	if len(keys) > batch.MaxWriteBatch {
		return fmt.Errorf("mark notified: %d keys exceed write batch limit %d", len(keys), batch.MaxWriteBatch)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mark notified: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, queryMarkNotified)
	if err != nil {
		return fmt.Errorf("mark notified: prepare update: %w", err)
	}
	defer stmt.Close()

	for _, key := range keys {
		if _, err := stmt.ExecContext(ctx, key.UserID, key.SectionID, key.ProductID, at); err != nil {
			return fmt.Errorf("mark notified: update %s: %w", key.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("mark notified: commit: %w", err)
	}

	slog.Debug("[ProductAdapter] Marked products notified", "count", len(keys), "at", at)
	return nil
}

func collectProducts(rows *sql.Rows) ([]v1.Product, error) {
	defer rows.Close()

	products := []v1.Product{}
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

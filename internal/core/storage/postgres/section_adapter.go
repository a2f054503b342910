package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/core/ordering"
	"github.com/JosephJoshua/posad/internal/core/storage"
	"github.com/lib/pq"
)

// SectionAdapter implements storage.SectionStore. Mutations of the order list
// lock the owning user row so concurrent adds and deletes serialize.
type SectionAdapter struct {
	db *sql.DB
}

// NewSectionAdapter creates a SectionAdapter sharing the given connection.
func NewSectionAdapter(db *sql.DB) *SectionAdapter {
	return &SectionAdapter{db: db}
}

// ListSections returns the user's sections in the user's display order.
// Sections missing from the order list come last, by name.
func (a *SectionAdapter) ListSections(ctx context.Context, userID string) ([]v1.Section, error) {
	order, err := a.GetSectionOrder(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := a.db.QueryContext(ctx, queryListSections, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []v1.Section
	for rows.Next() {
		section, err := scanSectionRow(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, *section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sections: %w", err)
	}

	return ordering.Apply(order, sections, func(s v1.Section) string { return s.ID }), nil
}

// GetSection returns storage.ErrNotFound when the user has no such section.
func (a *SectionAdapter) GetSection(ctx context.Context, userID, sectionID string) (*v1.Section, error) {
	section, err := scanSectionRow(a.db.QueryRowContext(ctx, queryGetSection, userID, sectionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return section, nil
}

// GetSectionOrder returns the stored order list of section IDs.
func (a *SectionAdapter) GetSectionOrder(ctx context.Context, userID string) ([]string, error) {
	var order []string
	err := a.db.QueryRowContext(ctx, querySelectOrder, userID).Scan(pq.Array(&order))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read section order: %w", err)
	}
	return order, nil
}

// AddSection inserts the section and splices it into the order list after
// afterID in one transaction.
func (a *SectionAdapter) AddSection(ctx context.Context, section *v1.Section, afterID string) error {
	return a.withLockedOrder(ctx, "add section", section.UserID, func(tx *sql.Tx, order []string) ([]string, error) {
		if _, err := tx.ExecContext(ctx, queryInsertSection,
			section.ID,
			section.UserID,
			section.Name,
			section.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("insert section: %w", mapWriteError(err))
		}
		return ordering.InsertAfter(order, section.ID, afterID), nil
	})
}

// DeleteSection removes the section and its order entry in one transaction.
func (a *SectionAdapter) DeleteSection(ctx context.Context, userID, sectionID string) error {
	return a.withLockedOrder(ctx, "delete section", userID, func(tx *sql.Tx, order []string) ([]string, error) {
		result, err := tx.ExecContext(ctx, queryDeleteSection, userID, sectionID)
		if err != nil {
			return nil, fmt.Errorf("delete section: %w", err)
		}
		if err := expectAffected(result); err != nil {
			return nil, err
		}
		return ordering.Remove(order, sectionID), nil
	})
}

// RenameSection returns storage.ErrNotFound when the user has no such section.
func (a *SectionAdapter) RenameSection(ctx context.Context, userID, sectionID, name string) error {
	result, err := a.db.ExecContext(ctx, queryRenameSection, userID, sectionID, name)
	if err != nil {
		return fmt.Errorf("failed to rename section: %w", err)
	}
	return expectAffected(result)
}

// withLockedOrder runs fn with the user's order list locked FOR UPDATE and
// writes back the list fn returns, all in one transaction.
func (a *SectionAdapter) withLockedOrder(
	ctx context.Context,
	op string,
	userID string,
	fn func(tx *sql.Tx, order []string) ([]string, error),
) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	defer tx.Rollback() //nolint:errcheck

	var order []string
	err = tx.QueryRowContext(ctx, querySelectOrderForUpdate, userID).Scan(pq.Array(&order))
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%s: read order for update: %w", op, err)
	}

	next, err := fn(tx, order)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, queryUpdateOrder, userID, textArray(next)); err != nil {
		return fmt.Errorf("%s: write order: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	slog.Debug("[SectionAdapter] Updated section order", "op", op, "user_id", userID, "sections", len(next))
	return nil
}

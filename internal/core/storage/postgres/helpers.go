package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/core/storage"
	"github.com/lib/pq"
)

// Postgres error codes mapped onto storage sentinels.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// textArray encodes ss for a TEXT[] NOT NULL column. pq encodes a nil slice
// as NULL, so nil is written as an empty array.
func textArray(ss []string) interface{} {
	if ss == nil {
		ss = []string{}
	}
	return pq.Array(ss)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUserRow(row scanner) (*v1.User, error) {
	var user v1.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.AuthProvider,
		pq.Array(&user.MessagingTokens),
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &user, nil
}

func scanSectionRow(row scanner) (*v1.Section, error) {
	var section v1.Section
	if err := row.Scan(&section.ID, &section.UserID, &section.Name, &section.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan section row: %w", err)
	}
	return &section, nil
}

// scanProductRow scans a row selected with productColumns. Nullable
// timestamps become nil pointers.
func scanProductRow(row scanner) (*v1.Product, error) {
	var p v1.Product
	var consumedAt, lastNotified sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.SectionID,
		&p.Name,
		&p.ImageURL,
		&p.ImageSource,
		&p.ExpirationDate,
		&consumedAt,
		&p.IsOnTime,
		&lastNotified,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product row: %w", err)
	}

	p.ConsumedAt = timePtr(consumedAt)
	p.LastNotified = timePtr(lastNotified)
	return &p, nil
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// boundOrNull maps a zero time to SQL NULL.
func boundOrNull(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// mapWriteError translates constraint violations into storage sentinels.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return storage.ErrDuplicate
		case pqForeignKeyViolation:
			return storage.ErrNotFound
		}
	}
	return err
}

// expectAffected returns storage.ErrNotFound when result touched no rows.
func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

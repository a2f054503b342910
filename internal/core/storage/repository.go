package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
)

// ErrNotFound is returned when the addressed user, section or product does
// not exist for the caller.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a record with the same key already exists.
var ErrDuplicate = errors.New("already exists")

// ProductFilter scopes ListProducts. Zero values leave a dimension
// unbounded.
type ProductFilter struct {
	UserID          string
	SectionID       string
	IncludeConsumed bool
	ExpiresFrom     time.Time
	ExpiresTo       time.Time
}

// ExpiringQuery selects products across all users that are still active,
// expire within [Start, End] and were last notified no later than
// NotifiedBefore, or never.
type ExpiringQuery struct {
	Start          time.Time
	End            time.Time
	NotifiedBefore time.Time
}

// UserStore persists user profiles.
type UserStore interface {
	// CreateUser stores the profile together with its first section and an
	// order list holding only that section, atomically.
	CreateUser(ctx context.Context, user *v1.User, initial *v1.Section) error
	GetUser(ctx context.Context, id string) (*v1.User, error)
	// GetUsers returns the users found among ids keyed by ID. Missing IDs
	// are absent from the map.
	GetUsers(ctx context.Context, ids []string) (map[string]*v1.User, error)
	// AddMessagingToken adds token to the user's token set. Adding a token
	// that is already present is a no-op.
	AddMessagingToken(ctx context.Context, userID, token string) error
}

// SectionStore persists sections and each user's section order.
type SectionStore interface {
	// ListSections returns the user's sections in display order.
	ListSections(ctx context.Context, userID string) ([]v1.Section, error)
	GetSection(ctx context.Context, userID, sectionID string) (*v1.Section, error)
	// AddSection inserts the section and places it after afterID in the
	// user's order list in one transaction.
	AddSection(ctx context.Context, section *v1.Section, afterID string) error
	RenameSection(ctx context.Context, userID, sectionID, name string) error
	// DeleteSection removes the section, its products and its order entry
	// in one transaction.
	DeleteSection(ctx context.Context, userID, sectionID string) error
	GetSectionOrder(ctx context.Context, userID string) ([]string, error)
}

// ProductStore persists products.
type ProductStore interface {
	AddProduct(ctx context.Context, product *v1.Product) error
	GetProduct(ctx context.Context, key v1.ProductKey) (*v1.Product, error)
	UpdateProduct(ctx context.Context, product *v1.Product) error
	DeleteProduct(ctx context.Context, key v1.ProductKey) error
	CompleteProduct(ctx context.Context, key v1.ProductKey, consumedAt time.Time, onTime bool) error
	// ListProducts returns matching products ordered by expiration date
	// ascending.
	ListProducts(ctx context.Context, filter ProductFilter) ([]v1.Product, error)
	FindExpiring(ctx context.Context, query ExpiringQuery) ([]v1.Product, error)
	// MarkNotified stamps last_notified on every key in one transaction.
	// Callers chunk keys to batch.MaxWriteBatch.
	MarkNotified(ctx context.Context, keys []v1.ProductKey, at time.Time) error
}

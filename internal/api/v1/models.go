package v1

import (
	"fmt"
	"time"

	"github.com/JosephJoshua/posad/internal/core/aggregation"
)

// Auth providers a profile can be registered with.
const (
	AuthProviderGoogle = "google"
	AuthProviderEmail  = "email"
)

// ImageSourceUser marks an image URL supplied by the user.
const ImageSourceUser = "user"

// InitialSectionName is the section every new user starts with.
const InitialSectionName = "Fridge"

// User is a registered profile. ID is the subject issued by the identity
// provider.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	AuthProvider    string    `json:"auth_provider"`
	MessagingTokens []string  `json:"messaging_tokens,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Section groups products, e.g. "Fridge" or "Pantry".
type Section struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is one perishable item tracked by a user.
type Product struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	SectionID      string     `json:"section_id"`
	Name           string     `json:"name"`
	ImageURL       string     `json:"image_url,omitempty"`
	ImageSource    string     `json:"image_source,omitempty"`
	ExpirationDate time.Time  `json:"expiration_date"`
	ConsumedAt     *time.Time `json:"consumed_at,omitempty"`
	IsOnTime       bool       `json:"is_on_time"`
	LastNotified   *time.Time `json:"last_notified,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Consumed reports whether the product has been marked as consumed.
func (p *Product) Consumed() bool {
	return p.ConsumedAt != nil
}

// Record derives the aggregation input for this product.
func (p *Product) Record() aggregation.DatedRecord {
	return aggregation.DatedRecord{
		Date:           p.ExpirationDate,
		ConsumedOnTime: p.Consumed() && p.IsOnTime,
	}
}

// Validate ensures the product has all required attributes.
func (p *Product) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("user_id is required")
	}

	if p.SectionID == "" {
		return fmt.Errorf("section_id is required")
	}

	if p.Name == "" {
		return fmt.Errorf("name is required")
	}

	if p.ExpirationDate.IsZero() {
		return fmt.Errorf("expiration_date is required")
	}

	return nil
}

// OnTime reports whether consumedAt falls no later than the last instant of
// the expiration day, evaluated in the expiration date's location.
func OnTime(expiration, consumedAt time.Time) bool {
	end := aggregation.EndOf(expiration, aggregation.GranularityDay)
	return !consumedAt.In(expiration.Location()).After(end)
}

// SectionWithProducts is a section together with its active products.
type SectionWithProducts struct {
	Section
	Products []Product `json:"products"`
}

// ProductKey addresses one product within a user's section.
type ProductKey struct {
	UserID    string
	SectionID string
	ProductID string
}

// Key returns the address of p.
func (p *Product) Key() ProductKey {
	return ProductKey{UserID: p.UserID, SectionID: p.SectionID, ProductID: p.ID}
}

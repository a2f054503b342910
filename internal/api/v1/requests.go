package v1

import "time"

// RegisterUserRequest creates the caller's profile.
type RegisterUserRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	AuthProvider string `json:"auth_provider" binding:"required,oneof=google email"`
}

// MessagingTokenRequest registers a push token for the caller's device.
type MessagingTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// AddSectionRequest creates a section placed after AfterID, or last when
// AfterID is empty.
type AddSectionRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	AfterID string `json:"after_id"`
}

// EditSectionRequest renames a section.
type EditSectionRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// AddProductRequest creates a product in the section named by the path.
type AddProductRequest struct {
	Name           string    `json:"name" binding:"required,max=200"`
	ExpirationDate time.Time `json:"expiration_date" binding:"required"`
	ImageURL       string    `json:"image_url" binding:"omitempty,url"`
}

// EditProductRequest updates the given fields of a product. A product cannot
// move between sections.
type EditProductRequest struct {
	Name           *string    `json:"name" binding:"omitempty,max=200"`
	ExpirationDate *time.Time `json:"expiration_date"`
	ImageURL       *string    `json:"image_url" binding:"omitempty,url"`
}

// Empty reports whether the request changes nothing.
func (r *EditProductRequest) Empty() bool {
	return r.Name == nil && r.ExpirationDate == nil && r.ImageURL == nil
}

// CompleteProductRequest marks a product as consumed. A zero ConsumedAt
// means now.
type CompleteProductRequest struct {
	ConsumedAt time.Time `json:"consumed_at"`
}

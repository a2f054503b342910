// Package products serves the user, section and product endpoints.
package products

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/JosephJoshua/posad/internal/api/v1"
	"github.com/JosephJoshua/posad/internal/core/storage"
	"github.com/google/uuid"
)

// ErrInvalidRequest marks request validation errors that should return HTTP 400.
var ErrInvalidRequest = errors.New("invalid request")

// Service implements profile, section and product management on top of the
// stores.
type Service struct {
	users    storage.UserStore
	sections storage.SectionStore
	products storage.ProductStore
	loc      *time.Location
	nowFn    func() time.Time
	newID    func() string
}

// NewService creates a product service. loc is the calendar used to decide
// whether a product was consumed on time.
func NewService(
	users storage.UserStore,
	sections storage.SectionStore,
	products storage.ProductStore,
	loc *time.Location,
) *Service {
	if users == nil {
		panic("products: user store must not be nil")
	}
	if sections == nil {
		panic("products: section store must not be nil")
	}
	if products == nil {
		panic("products: product store must not be nil")
	}
	if loc == nil {
		loc = time.Local
	}

	return &Service{
		users:    users,
		sections: sections,
		products: products,
		loc:      loc,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
		newID: uuid.NewString,
	}
}

// RegisterUser creates the caller's profile together with the initial
// section.
func (s *Service) RegisterUser(ctx context.Context, uid string, req v1.RegisterUserRequest) (*v1.User, error) {
	now := s.nowFn()
	user := &v1.User{
		ID:           uid,
		Name:         req.Name,
		Email:        req.Email,
		AuthProvider: req.AuthProvider,
		CreatedAt:    now,
	}
	initial := &v1.Section{
		ID:        s.newID(),
		UserID:    uid,
		Name:      v1.InitialSectionName,
		CreatedAt: now,
	}

	if err := s.users.CreateUser(ctx, user, initial); err != nil {
		return nil, fmt.Errorf("register user %s: %w", uid, err)
	}

	slog.Info("[Products] Registered user", "user_id", uid, "auth_provider", req.AuthProvider)
	return user, nil
}

func (s *Service) AddMessagingToken(ctx context.Context, uid, token string) error {
	if err := s.users.AddMessagingToken(ctx, uid, token); err != nil {
		return fmt.Errorf("add messaging token: %w", err)
	}
	return nil
}

// ListSectionsWithProducts returns the user's sections in display order, each
// with its active products sorted by expiration.
func (s *Service) ListSectionsWithProducts(ctx context.Context, uid string) ([]v1.SectionWithProducts, error) {
	sections, err := s.sections.ListSections(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	active, err := s.products.ListProducts(ctx, storage.ProductFilter{UserID: uid})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	bySection := make(map[string][]v1.Product, len(sections))
	for _, p := range active {
		bySection[p.SectionID] = append(bySection[p.SectionID], p)
	}

	out := make([]v1.SectionWithProducts, 0, len(sections))
	for _, sec := range sections {
		products := bySection[sec.ID]
		if products == nil {
			products = []v1.Product{}
		}
		out = append(out, v1.SectionWithProducts{Section: sec, Products: products})
	}
	return out, nil
}

// AddSection creates a section placed after req.AfterID.
func (s *Service) AddSection(ctx context.Context, uid string, req v1.AddSectionRequest) (*v1.Section, error) {
	section := &v1.Section{
		ID:        s.newID(),
		UserID:    uid,
		Name:      req.Name,
		CreatedAt: s.nowFn(),
	}

	if err := s.sections.AddSection(ctx, section, req.AfterID); err != nil {
		return nil, fmt.Errorf("add section: %w", err)
	}
	return section, nil
}

func (s *Service) RenameSection(ctx context.Context, uid, sectionID, name string) error {
	if err := s.sections.RenameSection(ctx, uid, sectionID, name); err != nil {
		return fmt.Errorf("rename section %s: %w", sectionID, err)
	}
	return nil
}

func (s *Service) DeleteSection(ctx context.Context, uid, sectionID string) error {
	if err := s.sections.DeleteSection(ctx, uid, sectionID); err != nil {
		return fmt.Errorf("delete section %s: %w", sectionID, err)
	}

	slog.Info("[Products] Deleted section", "user_id", uid, "section_id", sectionID)
	return nil
}

// ListSectionProducts returns the active products of one section. Returns
// storage.ErrNotFound for a section the user does not own.
func (s *Service) ListSectionProducts(ctx context.Context, uid, sectionID string) ([]v1.Product, error) {
	if _, err := s.sections.GetSection(ctx, uid, sectionID); err != nil {
		return nil, fmt.Errorf("get section %s: %w", sectionID, err)
	}

	products, err := s.products.ListProducts(ctx, storage.ProductFilter{UserID: uid, SectionID: sectionID})
	if err != nil {
		return nil, fmt.Errorf("list products in section %s: %w", sectionID, err)
	}
	return products, nil
}

func (s *Service) AddProduct(ctx context.Context, uid, sectionID string, req v1.AddProductRequest) (*v1.Product, error) {
	product := &v1.Product{
		ID:             s.newID(),
		UserID:         uid,
		SectionID:      sectionID,
		Name:           req.Name,
		ImageURL:       req.ImageURL,
		ExpirationDate: req.ExpirationDate,
		CreatedAt:      s.nowFn(),
	}
	if req.ImageURL != "" {
		product.ImageSource = v1.ImageSourceUser
	}

	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if err := s.products.AddProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	return product, nil
}

// EditProduct applies the non-nil fields of req. Moving the expiration date
// clears the notification stamp so the product is notified again.
func (s *Service) EditProduct(ctx context.Context, key v1.ProductKey, req v1.EditProductRequest) (*v1.Product, error) {
	if req.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidRequest)
	}

	product, err := s.products.GetProduct(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", key.ProductID, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
		product.ImageSource = ""
		if product.ImageURL != "" {
			product.ImageSource = v1.ImageSourceUser
		}
	}
	if req.ExpirationDate != nil && !req.ExpirationDate.Equal(product.ExpirationDate) {
		product.ExpirationDate = *req.ExpirationDate
		product.LastNotified = nil
	}

	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if err := s.products.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("update product %s: %w", key.ProductID, err)
	}
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, key v1.ProductKey) error {
	if err := s.products.DeleteProduct(ctx, key); err != nil {
		return fmt.Errorf("delete product %s: %w", key.ProductID, err)
	}
	return nil
}

// CompleteProduct marks the product consumed at consumedAt, or now when
// consumedAt is zero. The product is on time when consumed no later than the
// end of its expiration day.
func (s *Service) CompleteProduct(ctx context.Context, key v1.ProductKey, consumedAt time.Time) (*v1.Product, error) {
	product, err := s.products.GetProduct(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", key.ProductID, err)
	}

	if consumedAt.IsZero() {
		consumedAt = s.nowFn()
	}
	onTime := v1.OnTime(product.ExpirationDate.In(s.loc), consumedAt)

	if err := s.products.CompleteProduct(ctx, key, consumedAt, onTime); err != nil {
		return nil, fmt.Errorf("complete product %s: %w", key.ProductID, err)
	}

	product.ConsumedAt = &consumedAt
	product.IsOnTime = onTime

	slog.Info("[Products] Completed product",
		"user_id", key.UserID,
		"product_id", key.ProductID,
		"on_time", onTime)
	return product, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"github.com/invenflow/invenflow-api/internal/core/domain"
	"github.com/invenflow/invenflow-api/internal/core/ports"
)

// ReviewService lets customers review products and administrators moderate.
type ReviewService struct {
	reviews  ports.ReviewRepository
	products ports.ProductRepository
	registry *domain.Registry
	logger   zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, products ports.ProductRepository, registry *domain.Registry, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, registry: registry, logger: logger}
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *ReviewService) Create(ctx context.Context, ident domain.Identity, input ports.ReviewInput) (*domain.Review, error) {
	if !s.registry.Allows(domain.ActionReviewCreate, ident.Role) {
		return nil, domain.ErrForbidden
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	if _, err := s.products.FindByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	review := &domain.Review{
		ID:           "REV-" + id.String()[:8],
		ProductID:    input.ProductID,
		CustomerID:   ident.ID,
		CustomerName: ident.Name,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info().Str("review_id", review.ID).Str("product_id", review.ProductID).Msg("review created")
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, ident domain.Identity, id string) error {
	if !s.registry.Allows(domain.ActionReviewDelete, ident.Role) {
		return domain.ErrForbidden
	}
	if _, err := s.reviews.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("review_id", id).Msg("review removed")
	return nil
}

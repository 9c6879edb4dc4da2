package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// Get returns a property by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("property.Get: %w", err)
	}
	return p, nil
}

// List returns properties matching the filter, paginated.
func (s *Service) List(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	filter.Page = filter.Page.Normalize()

	properties, err := s.properties.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("property.List: %w", err)
	}
	return properties, nil
}

package community

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// Get returns a single community update by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.CommunityUpdate, error) {
	upd, err := s.updates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("community.Get: %w", err)
	}
	return upd, nil
}

// List returns community updates matching the filter.
func (s *Service) List(ctx context.Context, filter domain.CommunityUpdateFilter) ([]domain.CommunityUpdate, error) {
	filter.Page = filter.Page.Normalize()

	updates, err := s.updates.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("community.List: %w", err)
	}
	return updates, nil
}

package community

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Update applies a merge-patch to a community update. Only the creator or an
// admin may edit. The existence check runs first, so an unknown id is
// NotFound even for callers who would fail the ownership check.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateUpdateInput) (*domain.CommunityUpdate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("community.Update: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("community.Update: %w", err)
	}

	current, err := s.updates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("community.Update: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) && current.CreatedBy != userID {
		return nil, fmt.Errorf("community.Update: %w", domain.ErrForbidden)
	}

	var impactLevel *domain.ImpactLevel
	if input.ImpactLevel != nil {
		lvl := domain.ImpactLevel(*input.ImpactLevel)
		impactLevel = &lvl
	}

	var updated *domain.CommunityUpdate
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.updates.Update(txCtx, id, domain.CommunityUpdateParams{
			UpdateType:  input.UpdateType,
			Title:       input.Title,
			Description: input.Description,
			ImpactLevel: impactLevel,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
			Location:    input.Location,
		})
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCommunityUpdate,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    changedUpdateFields(input),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("community.Update: %w", err)
	}

	s.log.InfoContext(ctx, "community update edited", slog.String("update_id", id.String()))

	return updated, nil
}

func changedUpdateFields(input UpdateUpdateInput) map[string]any {
	changes := make(map[string]any)
	if input.UpdateType != nil {
		changes["update_type"] = *input.UpdateType
	}
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.ImpactLevel != nil {
		changes["impact_level"] = *input.ImpactLevel
	}
	if input.StartDate != nil {
		changes["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		changes["end_date"] = *input.EndDate
	}
	if input.Location != nil {
		changes["location"] = input.Location
	}
	return changes
}

package community

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Create publishes a community update. The update is verified from the start
// iff the creator is an admin; updates from any other role wait for an admin
// to verify them.
func (s *Service) Create(ctx context.Context, input CreateUpdateInput) (*domain.CommunityUpdate, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("community.Create: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("community.Create: %w", err)
	}

	var created *domain.CommunityUpdate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.updates.Create(txCtx, &domain.CommunityUpdate{
			PropertyID:     input.PropertyID,
			NeighborhoodID: input.NeighborhoodID,
			UpdateType:     input.UpdateType,
			Title:          input.Title,
			Description:    input.Description,
			ImpactLevel:    domain.ImpactLevel(input.ImpactLevel),
			StartDate:      input.StartDate,
			EndDate:        input.EndDate,
			Location:       input.Location,
			IsVerified:     ctxutil.IsAdminCtx(ctx),
			CreatedBy:      userID,
		})
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeCommunityUpdate,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"update_type":  created.UpdateType,
				"title":        created.Title,
				"impact_level": created.ImpactLevel.String(),
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("community.Create: %w", err)
	}

	s.log.InfoContext(ctx, "community update published",
		slog.String("update_id", created.ID.String()),
		slog.Bool("verified", created.IsVerified),
	)

	return created, nil
}

package admin

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// NotificationResult confirms a recorded neighborhood notification.
type NotificationResult struct {
	UpdateID       uuid.UUID
	NeighborhoodID string
	NotifiedAt     time.Time
}

// NotifyNeighborhood records the intent to notify a neighborhood about a
// community update and returns a confirmation. There is no delivery
// integration; the audit trail is the record of the notification.
func (s *Service) NotifyNeighborhood(ctx context.Context, updateID uuid.UUID) (*NotificationResult, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("admin.NotifyNeighborhood: %w", domain.ErrUnauthorized)
	}

	upd, err := s.updates.GetByID(ctx, updateID)
	if err != nil {
		return nil, fmt.Errorf("admin.NotifyNeighborhood: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin.NotifyNeighborhood: %w", domain.ErrForbidden)
	}

	if upd.NeighborhoodID == nil {
		return nil, fmt.Errorf("admin.NotifyNeighborhood: %w",
			domain.NewValidationError("neighborhood_id", "update is not tied to a neighborhood"))
	}

	notifiedAt := time.Now()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     adminID,
			EntityType: domain.EntityTypeCommunityUpdate,
			EntityID:   &updateID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"notification":    "neighborhood",
				"neighborhood_id": *upd.NeighborhoodID,
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("admin.NotifyNeighborhood: %w", err)
	}

	s.log.InfoContext(ctx, "neighborhood notified",
		slog.String("update_id", updateID.String()),
		slog.String("neighborhood_id", *upd.NeighborhoodID),
	)

	return &NotificationResult{
		UpdateID:       updateID,
		NeighborhoodID: *upd.NeighborhoodID,
		NotifiedAt:     notifiedAt,
	}, nil
}

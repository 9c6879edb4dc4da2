package admin

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// VerifyRenovation marks a completed renovation as verified. Only completed
// work can be verified; completion itself never sets the flag. Verifying an
// already-verified renovation is a no-op that still succeeds.
func (s *Service) VerifyRenovation(ctx context.Context, id uuid.UUID) (*domain.Renovation, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("admin.VerifyRenovation: %w", domain.ErrUnauthorized)
	}

	current, err := s.renovations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("admin.VerifyRenovation: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin.VerifyRenovation: %w", domain.ErrForbidden)
	}

	if current.Status != domain.RenovationStatusCompleted {
		return nil, fmt.Errorf("admin.VerifyRenovation: renovation not completed: %w", domain.ErrConflict)
	}

	if current.IsVerified {
		return current, nil
	}

	var verified *domain.Renovation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		verified, err = s.renovations.Verify(txCtx, id)
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     adminID,
			EntityType: domain.EntityTypeRenovation,
			EntityID:   &id,
			Action:     domain.AuditActionVerify,
			Changes:    map[string]any{"is_verified": true},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("admin.VerifyRenovation: %w", err)
	}

	s.log.InfoContext(ctx, "renovation verified", slog.String("renovation_id", id.String()))

	return verified, nil
}

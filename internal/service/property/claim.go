package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Claim establishes the caller as the owner of an unowned property.
// Claiming a property the caller already owns is a no-op success; a
// property owned by someone else returns ErrConflict.
func (s *Service) Claim(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("property.Claim: %w", err)
	}

	if current.IsOwnedBy(userID) {
		return current, nil
	}
	if current.OwnerID != nil {
		return nil, fmt.Errorf("property.Claim: property already owned: %w", domain.ErrConflict)
	}

	var claimed *domain.Property
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.properties.SetOwner(txCtx, id, userID)
		if err != nil {
			return fmt.Errorf("set owner: %w", err)
		}

		record := domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProperty,
			EntityID:   &id,
			Action:     domain.AuditActionClaim,
			Changes:    map[string]any{"owner_id": userID.String()},
		}
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		claimed = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("property.Claim: %w", err)
	}

	s.log.InfoContext(ctx, "property claimed",
		slog.String("property_id", id.String()),
		slog.String("owner_id", userID.String()))

	return claimed, nil
}

package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Create registers a new property. Properties start unowned and unverified
// regardless of who creates them; ownership is established by claiming.
func (s *Service) Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var created *domain.Property
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.properties.Create(txCtx, &domain.Property{
			Address:      input.Address,
			City:         input.City,
			State:        input.State,
			ZipCode:      input.ZipCode,
			Latitude:     input.Latitude,
			Longitude:    input.Longitude,
			PropertyType: input.PropertyType,
			YearBuilt:    input.YearBuilt,
			SquareFeet:   input.SquareFeet,
			Bedrooms:     input.Bedrooms,
			Bathrooms:    input.Bathrooms,
			LotSize:      input.LotSize,
		})
		if err != nil {
			return fmt.Errorf("create property: %w", err)
		}

		record := domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProperty,
			EntityID:   &p.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"address": p.Address, "city": p.City},
		}
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		created = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("property.Create: %w", err)
	}

	s.log.InfoContext(ctx, "property created",
		slog.String("property_id", created.ID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}

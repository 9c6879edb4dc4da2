package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Update applies a merge-patch to a property. Non-admin callers must own
// the property. The existence check runs first, so an unknown id is
// NotFound even for callers who would fail the ownership check.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*domain.Property, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("property.Update: %w", err)
	}
	if !ctxutil.IsAdminCtx(ctx) && !current.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.Property
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.properties.Update(txCtx, id, input.toParams())
		if err != nil {
			return fmt.Errorf("update property: %w", err)
		}

		record := domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeProperty,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    changedPropertyFields(input),
		}
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("property.Update: %w", err)
	}

	s.log.InfoContext(ctx, "property updated", slog.String("property_id", id.String()))

	return updated, nil
}

func changedPropertyFields(input UpdatePropertyInput) map[string]any {
	changes := map[string]any{}
	if input.Address != nil {
		changes["address"] = *input.Address
	}
	if input.City != nil {
		changes["city"] = *input.City
	}
	if input.State != nil {
		changes["state"] = *input.State
	}
	if input.ZipCode != nil {
		changes["zip_code"] = *input.ZipCode
	}
	if input.PropertyType != nil {
		changes["property_type"] = *input.PropertyType
	}
	if input.YearBuilt != nil {
		changes["year_built"] = *input.YearBuilt
	}
	if input.SquareFeet != nil {
		changes["square_feet"] = *input.SquareFeet
	}
	if input.Bedrooms != nil {
		changes["bedrooms"] = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		changes["bathrooms"] = *input.Bathrooms
	}
	if input.LotSize != nil {
		changes["lot_size"] = *input.LotSize
	}
	if input.Latitude != nil {
		changes["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		changes["longitude"] = *input.Longitude
	}
	return changes
}

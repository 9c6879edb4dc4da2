package contractor

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// ListProjects returns the calling contractor's renovations. The contractor
// scope is forced server-side: whatever filter arrives, ContractorID is
// pinned to the caller.
func (s *Service) ListProjects(ctx context.Context, status *domain.RenovationStatus, page domain.Page) ([]domain.Renovation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("contractor.ListProjects: %w", domain.ErrUnauthorized)
	}

	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("contractor.ListProjects: %w", domain.NewValidationError("status", "unknown status"))
	}

	renovations, err := s.renovations.List(ctx, domain.RenovationFilter{
		ContractorID: &userID,
		Status:       status,
		Page:         page.Normalize(),
	})
	if err != nil {
		return nil, fmt.Errorf("contractor.ListProjects: %w", err)
	}
	return renovations, nil
}

// SubmitProject creates a renovation for the calling contractor. New projects
// start in progress and unverified; verification is an admin action that never
// happens at submission time.
func (s *Service) SubmitProject(ctx context.Context, input SubmitProjectInput) (*domain.Renovation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("contractor.SubmitProject: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("contractor.SubmitProject: %w", err)
	}

	var created *domain.Renovation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.renovations.Create(txCtx, &domain.Renovation{
			PropertyID:     input.PropertyID,
			ContractorID:   userID,
			Title:          input.Title,
			Description:    input.Description,
			RenovationType: input.RenovationType,
			StartDate:      input.StartDate,
			Cost:           input.Cost,
			Materials:      input.Materials,
			Blueprints:     input.Blueprints,
			Photos:         input.Photos,
			Status:         domain.RenovationStatusInProgress,
			IsVerified:     false,
		})
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeRenovation,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"property_id":     created.PropertyID,
				"renovation_type": created.RenovationType,
				"title":           created.Title,
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("contractor.SubmitProject: %w", err)
	}

	s.log.InfoContext(ctx, "renovation project submitted",
		slog.String("renovation_id", created.ID.String()),
		slog.String("property_id", created.PropertyID.String()),
	)

	return created, nil
}

// UpdateProject applies a merge-patch to a renovation owned by the calling
// contractor. The existence check runs first, so an unknown id is NotFound
// even for callers who would fail the ownership check.
func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Renovation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("contractor.UpdateProject: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("contractor.UpdateProject: %w", err)
	}

	current, err := s.renovations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contractor.UpdateProject: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) && current.ContractorID != userID {
		return nil, fmt.Errorf("contractor.UpdateProject: %w", domain.ErrForbidden)
	}

	var updated *domain.Renovation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.renovations.Update(txCtx, id, domain.RenovationUpdateParams{
			Title:          input.Title,
			Description:    input.Description,
			RenovationType: input.RenovationType,
			Cost:           input.Cost,
			Materials:      input.Materials,
			Blueprints:     input.Blueprints,
			Photos:         input.Photos,
		})
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeRenovation,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    changedProjectFields(input),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("contractor.UpdateProject: %w", err)
	}

	s.log.InfoContext(ctx, "renovation project updated", slog.String("renovation_id", id.String()))

	return updated, nil
}

// CompleteProject moves a renovation to completed and stamps its end date.
// Completion never touches the verified flag: an admin verifies the finished
// work separately.
func (s *Service) CompleteProject(ctx context.Context, id uuid.UUID) (*domain.Renovation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("contractor.CompleteProject: %w", domain.ErrUnauthorized)
	}

	current, err := s.renovations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contractor.CompleteProject: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) && current.ContractorID != userID {
		return nil, fmt.Errorf("contractor.CompleteProject: %w", domain.ErrForbidden)
	}

	if current.Status == domain.RenovationStatusCompleted {
		return nil, fmt.Errorf("contractor.CompleteProject: renovation already completed: %w", domain.ErrConflict)
	}

	var completed *domain.Renovation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		completed, err = s.renovations.Complete(txCtx, id, time.Now())
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeRenovation,
			EntityID:   &id,
			Action:     domain.AuditActionComplete,
			Changes:    map[string]any{"status": domain.RenovationStatusCompleted.String()},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("contractor.CompleteProject: %w", err)
	}

	s.log.InfoContext(ctx, "renovation project completed", slog.String("renovation_id", id.String()))

	return completed, nil
}

func changedProjectFields(input UpdateProjectInput) map[string]any {
	changes := make(map[string]any)
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.RenovationType != nil {
		changes["renovation_type"] = *input.RenovationType
	}
	if input.Cost != nil {
		changes["cost"] = *input.Cost
	}
	if input.Materials != nil {
		changes["materials"] = input.Materials
	}
	if input.Blueprints != nil {
		changes["blueprints"] = input.Blueprints
	}
	if input.Photos != nil {
		changes["photos"] = input.Photos
	}
	return changes
}

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

// ListAssignments returns the calling contractor's assignments. The
// contractor scope is forced server-side regardless of the incoming filter.
func (s *Service) ListAssignments(ctx context.Context, status *domain.AssignmentStatus, page domain.Page) ([]domain.ContractorAssignment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("contractor.ListAssignments: %w", domain.ErrUnauthorized)
	}

	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("contractor.ListAssignments: %w", domain.NewValidationError("status", "unknown status"))
	}

	assignments, err := s.assignments.List(ctx, domain.AssignmentFilter{
		ContractorID: &userID,
		Status:       status,
		Page:         page.Normalize(),
	})
	if err != nil {
		return nil, fmt.Errorf("contractor.ListAssignments: %w", err)
	}
	return assignments, nil
}

// AdvanceAssignment moves an assignment along its lifecycle. Only the
// assigned contractor may advance it, and only one step at a time:
// assigned to in_progress, in_progress to completed. Reaching completed
// stamps the completion date.
func (s *Service) AdvanceAssignment(ctx context.Context, id uuid.UUID, next domain.AssignmentStatus) (*domain.ContractorAssignment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("contractor.AdvanceAssignment: %w", domain.ErrUnauthorized)
	}

	if !next.IsValid() {
		return nil, fmt.Errorf("contractor.AdvanceAssignment: %w", domain.NewValidationError("status", "unknown status"))
	}

	current, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contractor.AdvanceAssignment: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) && current.ContractorID != userID {
		return nil, fmt.Errorf("contractor.AdvanceAssignment: %w", domain.ErrForbidden)
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("contractor.AdvanceAssignment: cannot move %s to %s: %w",
			current.Status, next, domain.ErrConflict)
	}

	var completedDate *time.Time
	if next == domain.AssignmentStatusCompleted {
		now := time.Now()
		completedDate = &now
	}

	var advanced *domain.ContractorAssignment
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		advanced, err = s.assignments.SetStatus(txCtx, id, next, completedDate)
		if err != nil {
			return err
		}

		action := domain.AuditActionUpdate
		if next == domain.AssignmentStatusCompleted {
			action = domain.AuditActionComplete
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeAssignment,
			EntityID:   &id,
			Action:     action,
			Changes:    map[string]any{"status": next.String()},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("contractor.AdvanceAssignment: %w", err)
	}

	s.log.InfoContext(ctx, "assignment advanced",
		slog.String("assignment_id", id.String()),
		slog.String("status", next.String()),
	)

	return advanced, nil
}

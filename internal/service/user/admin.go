package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be one of homeowner, contractor, buyer, admin")
	}

	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	// An admin stripping their own admin role would lock themselves out.
	if callerID == targetUserID && role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.UpdateRole(txCtx, targetUserID, role)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}

		record := domain.AuditRecord{
			UserID:     callerID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &targetUserID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": role.String()},
		}
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return updated, nil
}

// ListUsers returns a paginated list of users, optionally filtered by role
// (admin only). The second return value is the total user count.
func (s *Service) ListUsers(ctx context.Context, role *domain.UserRole, page domain.Page) ([]domain.User, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	if role != nil && !role.IsValid() {
		return nil, 0, domain.NewValidationError("role", "invalid role")
	}

	page = page.Normalize()

	users, err := s.users.List(ctx, role, page)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers count: %w", err)
	}

	return users, total, nil
}

package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// GetMe returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetMe(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	return user, nil
}

// UpdateMe applies a merge-patch to the authenticated user's profile.
// Role is immutable by the user: a non-admin supplying a role gets
// ErrForbidden even when the value matches the current one.
func (s *Service) UpdateMe(ctx context.Context, input UpdateMeInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Role != nil && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Update(txCtx, userID, domain.UserUpdateParams{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
		})
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		if input.Role != nil {
			user, err = s.users.UpdateRole(txCtx, userID, domain.UserRole(*input.Role))
			if err != nil {
				return fmt.Errorf("update role: %w", err)
			}
		}

		record := domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Changes:    changedProfileFields(input),
		}
		if err := s.audit.Log(txCtx, record); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateMe: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))

	return updated, nil
}

func changedProfileFields(input UpdateMeInput) map[string]any {
	changes := map[string]any{}
	if input.FirstName != nil {
		changes["first_name"] = *input.FirstName
	}
	if input.LastName != nil {
		changes["last_name"] = *input.LastName
	}
	if input.Phone != nil {
		changes["phone"] = *input.Phone
	}
	if input.Role != nil {
		changes["role"] = *input.Role
	}
	return changes
}

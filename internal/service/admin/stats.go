package admin

import (
	"context"
	"fmt"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Stats returns platform-wide totals for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (*domain.AdminStats, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin.Stats: %w", domain.ErrForbidden)
	}

	totalProperties, err := s.properties.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats: count properties: %w", err)
	}
	verifiedProperties, err := s.properties.CountVerified(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats: count verified properties: %w", err)
	}
	totalReports, err := s.reports.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats: count reports: %w", err)
	}
	pendingReports, err := s.reports.CountByStatus(ctx, domain.ReportStatusPending)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats: count pending reports: %w", err)
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats: count users: %w", err)
	}
	totalUpdates, err := s.updates.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Stats: count community updates: %w", err)
	}

	return &domain.AdminStats{
		TotalProperties:       totalProperties,
		VerifiedProperties:    verifiedProperties,
		TotalReports:          totalReports,
		PendingReports:        pendingReports,
		TotalUsers:            totalUsers,
		TotalCommunityUpdates: totalUpdates,
	}, nil
}

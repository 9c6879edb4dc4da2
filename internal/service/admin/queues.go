package admin

import (
	"context"
	"fmt"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// PendingReports returns the queue of reports awaiting review. The queue is a
// view over the status field: anything pending is in it, nothing else is.
func (s *Service) PendingReports(ctx context.Context, page domain.Page) ([]domain.Report, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin.PendingReports: %w", domain.ErrForbidden)
	}

	status := domain.ReportStatusPending
	reports, err := s.reports.List(ctx, domain.ReportFilter{
		Status: &status,
		Page:   page.Normalize(),
	})
	if err != nil {
		return nil, fmt.Errorf("admin.PendingReports: %w", err)
	}
	return reports, nil
}

// PendingUpdates returns the queue of community updates awaiting
// verification.
func (s *Service) PendingUpdates(ctx context.Context, page domain.Page) ([]domain.CommunityUpdate, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("admin.PendingUpdates: %w", domain.ErrForbidden)
	}

	verified := false
	updates, err := s.updates.List(ctx, domain.CommunityUpdateFilter{
		Verified: &verified,
		Page:     page.Normalize(),
	})
	if err != nil {
		return nil, fmt.Errorf("admin.PendingUpdates: %w", err)
	}
	return updates, nil
}

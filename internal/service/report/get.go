package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// Get returns a single report by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Get: %w", err)
	}
	return rep, nil
}

// List returns reports matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	filter.Page = filter.Page.Normalize()

	reports, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("report.List: %w", err)
	}
	return reports, nil
}

package report

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Update applies a merge-patch to a pending report. Only the submitter or an
// admin may edit, and only while the report is still pending. The existence
// check runs first, so an unknown id is NotFound even for callers who would
// fail the ownership check.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateReportInput) (*domain.Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("report.Update: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("report.Update: %w", err)
	}

	current, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Update: %w", err)
	}

	if !ctxutil.IsAdminCtx(ctx) && current.SubmitterID != userID {
		return nil, fmt.Errorf("report.Update: %w", domain.ErrForbidden)
	}

	if current.Status.IsTerminal() {
		return nil, fmt.Errorf("report.Update: report already reviewed: %w", domain.ErrConflict)
	}

	var updated *domain.Report
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.reports.Update(txCtx, id, domain.ReportUpdateParams{
			ReportType:  input.ReportType,
			Title:       input.Title,
			Description: input.Description,
			ReportData:  input.ReportData,
			Attachments: input.Attachments,
		})
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeReport,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    changedReportFields(input),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("report.Update: %w", err)
	}

	s.log.InfoContext(ctx, "report updated", slog.String("report_id", id.String()))

	return updated, nil
}

func changedReportFields(input UpdateReportInput) map[string]any {
	changes := make(map[string]any)
	if input.ReportType != nil {
		changes["report_type"] = *input.ReportType
	}
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.ReportData != nil {
		changes["report_data"] = input.ReportData
	}
	if input.Attachments != nil {
		changes["attachments"] = input.Attachments
	}
	return changes
}

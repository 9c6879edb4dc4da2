package report

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Create submits a new report against a property. Every report starts in
// pending status with no reviewer set, regardless of the submitter's role.
func (s *Service) Create(ctx context.Context, input CreateReportInput) (*domain.Report, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, fmt.Errorf("report.Create: %w", domain.ErrUnauthorized)
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("report.Create: %w", err)
	}

	var created *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.reports.Create(txCtx, &domain.Report{
			PropertyID:  input.PropertyID,
			SubmitterID: userID,
			ReportType:  input.ReportType,
			Title:       input.Title,
			Description: input.Description,
			ReportData:  input.ReportData,
			Attachments: input.Attachments,
			Status:      domain.ReportStatusPending,
		})
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeReport,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"property_id": created.PropertyID,
				"report_type": created.ReportType,
				"title":       created.Title,
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("report.Create: %w", err)
	}

	s.log.InfoContext(ctx, "report submitted",
		slog.String("report_id", created.ID.String()),
		slog.String("property_id", created.PropertyID.String()),
	)

	return created, nil
}

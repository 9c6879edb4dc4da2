package report

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
	"github.com/homefax/homefax-backend/pkg/ctxutil"
)

// Approve moves a pending report to approved, recording the reviewing admin
// and the review time. A report is reviewed exactly once: a terminal report
// cannot be re-reviewed in either direction.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	rep, err := s.review(ctx, id, domain.ReportStatusApproved, nil)
	if err != nil {
		return nil, fmt.Errorf("report.Approve: %w", err)
	}

	s.log.InfoContext(ctx, "report approved", slog.String("report_id", id.String()))

	return rep, nil
}

// Reject moves a pending report to rejected and appends the rejection reason
// to the report description, so the reason survives alongside the original
// text.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) (*domain.Report, error) {
	if reason == "" {
		return nil, fmt.Errorf("report.Reject: %w", domain.NewValidationError("reason", "required"))
	}

	rep, err := s.review(ctx, id, domain.ReportStatusRejected, &reason)
	if err != nil {
		return nil, fmt.Errorf("report.Reject: %w", err)
	}

	s.log.InfoContext(ctx, "report rejected", slog.String("report_id", id.String()))

	return rep, nil
}

func (s *Service) review(ctx context.Context, id uuid.UUID, status domain.ReportStatus, reason *string) (*domain.Report, error) {
	reviewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if current.Status.IsTerminal() {
		return nil, fmt.Errorf("report already reviewed: %w", domain.ErrConflict)
	}

	var description *string
	if reason != nil {
		desc := rejectionDescription(current.Description, *reason)
		description = &desc
	}

	action := domain.AuditActionApprove
	if status == domain.ReportStatusRejected {
		action = domain.AuditActionReject
	}

	var reviewed *domain.Report
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		reviewed, err = s.reports.Review(txCtx, id, status, reviewerID, time.Now(), description)
		if err != nil {
			return err
		}

		changes := map[string]any{"status": status.String()}
		if reason != nil {
			changes["reason"] = *reason
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     reviewerID,
			EntityType: domain.EntityTypeReport,
			EntityID:   &id,
			Action:     action,
			Changes:    changes,
		})
	})
	if err != nil {
		return nil, err
	}

	return reviewed, nil
}

// rejectionDescription appends the rejection reason to the existing
// description. A missing description yields just the appended block, so the
// leading blank line is kept either way.
func rejectionDescription(current *string, reason string) string {
	base := ""
	if current != nil {
		base = *current
	}
	return base + "\n\nRejection reason: " + reason
}

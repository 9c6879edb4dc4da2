package report

import (
	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// CreateReportInput holds parameters for the report submission operation.
type CreateReportInput struct {
	PropertyID  uuid.UUID
	ReportType  string
	Title       string
	Description *string
	ReportData  map[string]any
	Attachments []string
}

// Validate validates the report creation input.
func (i CreateReportInput) Validate() error {
	var errs []domain.FieldError

	if i.PropertyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "property_id", Message: "required"})
	}
	if i.ReportType == "" {
		errs = append(errs, domain.FieldError{Field: "report_type", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateReportInput holds merge-patch parameters for the report update
// operation. nil means "leave unchanged".
type UpdateReportInput struct {
	ReportType  *string
	Title       *string
	Description *string
	ReportData  map[string]any
	Attachments []string
}

// Validate validates the report update input.
func (i UpdateReportInput) Validate() error {
	var errs []domain.FieldError

	if i.ReportType != nil && *i.ReportType == "" {
		errs = append(errs, domain.FieldError{Field: "report_type", Message: "cannot be empty"})
	}
	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

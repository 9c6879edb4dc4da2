package contractor

import (
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// SubmitProjectInput holds parameters for submitting a renovation project.
type SubmitProjectInput struct {
	PropertyID     uuid.UUID
	Title          string
	Description    *string
	RenovationType string
	StartDate      time.Time
	Cost           float64
	Materials      map[string]any
	Blueprints     []string
	Photos         []string
}

// Validate validates the project submission input.
func (i SubmitProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.PropertyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "property_id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.RenovationType == "" {
		errs = append(errs, domain.FieldError{Field: "renovation_type", Message: "required"})
	}
	if i.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "required"})
	}
	if i.Cost < 0 {
		errs = append(errs, domain.FieldError{Field: "cost", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds merge-patch parameters for editing a renovation
// project. nil means "leave unchanged".
type UpdateProjectInput struct {
	Title          *string
	Description    *string
	RenovationType *string
	Cost           *float64
	Materials      map[string]any
	Blueprints     []string
	Photos         []string
}

// Validate validates the project update input.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.RenovationType != nil && *i.RenovationType == "" {
		errs = append(errs, domain.FieldError{Field: "renovation_type", Message: "cannot be empty"})
	}
	if i.Cost != nil && *i.Cost < 0 {
		errs = append(errs, domain.FieldError{Field: "cost", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

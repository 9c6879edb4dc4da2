package community

import (
	"time"

	"github.com/google/uuid"

	"github.com/homefax/homefax-backend/internal/domain"
)

// CreateUpdateInput holds parameters for publishing a community update.
// Exactly one of PropertyID and NeighborhoodID should be set in practice,
// but both may be set for updates spanning a property and its neighborhood.
type CreateUpdateInput struct {
	PropertyID     *uuid.UUID
	NeighborhoodID *string
	UpdateType     string
	Title          string
	Description    string
	ImpactLevel    string
	StartDate      *time.Time
	EndDate        *time.Time
	Location       map[string]any
}

// Validate validates the community update creation input.
func (i CreateUpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.PropertyID == nil && i.NeighborhoodID == nil {
		errs = append(errs, domain.FieldError{Field: "property_id", Message: "either property_id or neighborhood_id is required"})
	}
	if i.UpdateType == "" {
		errs = append(errs, domain.FieldError{Field: "update_type", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if !domain.ImpactLevel(i.ImpactLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "impact_level", Message: "must be one of: low, medium, high"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not precede start_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUpdateInput holds merge-patch parameters for editing a community
// update. nil means "leave unchanged".
type UpdateUpdateInput struct {
	UpdateType  *string
	Title       *string
	Description *string
	ImpactLevel *string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    map[string]any
}

// Validate validates the community update edit input.
func (i UpdateUpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.UpdateType != nil && *i.UpdateType == "" {
		errs = append(errs, domain.FieldError{Field: "update_type", Message: "cannot be empty"})
	}
	if i.Title != nil {
		if *i.Title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(*i.Title) > 255 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if i.Description != nil && *i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "cannot be empty"})
	}
	if i.ImpactLevel != nil && !domain.ImpactLevel(*i.ImpactLevel).IsValid() {
		errs = append(errs, domain.FieldError{Field: "impact_level", Message: "must be one of: low, medium, high"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

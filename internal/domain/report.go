package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report represents an inspection, appraisal, or disclosure document
// attached to a property. A report is created in pending status and is
// reviewed exactly once by an admin, which sets ReviewedBy and ReviewedAt
// together and moves the status to a terminal value.
type Report struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	SubmitterID uuid.UUID
	ReportType  string
	Title       string
	Description *string
	ReportData  map[string]any
	Attachments []string
	Status      ReportStatus
	ReviewedBy  *uuid.UUID
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReportUpdateParams holds optional fields for a merge-patch update.
// nil means "leave unchanged".
type ReportUpdateParams struct {
	ReportType  *string
	Title       *string
	Description *string
	ReportData  map[string]any
	Attachments []string
}

// ReportFilter is the exact-match conjunction applied to report listings.
type ReportFilter struct {
	PropertyID  *uuid.UUID
	SubmitterID *uuid.UUID
	Status      *ReportStatus
	ReportType  *string
	Page        Page
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Renovation represents a contractor-submitted renovation project on a
// property. Completing a renovation stamps EndDate; verification is a
// separate admin action and is never set by completion.
type Renovation struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	ContractorID   uuid.UUID
	Title          string
	Description    *string
	RenovationType string
	StartDate      time.Time
	EndDate        *time.Time
	Cost           float64
	Materials      map[string]any
	Blueprints     []string
	Photos         []string
	Status         RenovationStatus
	IsVerified     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RenovationUpdateParams holds optional fields for a merge-patch update.
// nil means "leave unchanged".
type RenovationUpdateParams struct {
	Title          *string
	Description    *string
	RenovationType *string
	Cost           *float64
	Materials      map[string]any
	Blueprints     []string
	Photos         []string
}

// RenovationFilter is the exact-match conjunction applied to renovation listings.
type RenovationFilter struct {
	PropertyID   *uuid.UUID
	ContractorID *uuid.UUID
	Status       *RenovationStatus
	Page         Page
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContractorAssignment links a contractor to a property for a unit of work.
// CompletedDate is stamped when the assignment reaches completed.
type ContractorAssignment struct {
	ID             uuid.UUID
	ContractorID   uuid.UUID
	PropertyID     uuid.UUID
	AssignmentType string
	Status         AssignmentStatus
	AssignedDate   time.Time
	CompletedDate  *time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AssignmentFilter is the exact-match conjunction applied to assignment listings.
type AssignmentFilter struct {
	ContractorID *uuid.UUID
	PropertyID   *uuid.UUID
	Status       *AssignmentStatus
	Page         Page
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommunityUpdate represents neighborhood-level news affecting one property
// or a whole neighborhood. IsVerified is true from creation iff the creator
// is an admin; otherwise an admin verifies it later.
type CommunityUpdate struct {
	ID             uuid.UUID
	PropertyID     *uuid.UUID
	NeighborhoodID *string
	UpdateType     string
	Title          string
	Description    string
	ImpactLevel    ImpactLevel
	StartDate      *time.Time
	EndDate        *time.Time
	Location       map[string]any
	IsVerified     bool
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CommunityUpdateParams holds optional fields for a merge-patch update.
// nil means "leave unchanged".
type CommunityUpdateParams struct {
	UpdateType  *string
	Title       *string
	Description *string
	ImpactLevel *ImpactLevel
	StartDate   *time.Time
	EndDate     *time.Time
	Location    map[string]any
}

// CommunityUpdateFilter is the exact-match conjunction applied to
// community update listings.
type CommunityUpdateFilter struct {
	PropertyID     *uuid.UUID
	NeighborhoodID *string
	UpdateType     *string
	ImpactLevel    *ImpactLevel
	Verified       *bool
	Page           Page
}

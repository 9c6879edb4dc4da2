package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a real-estate parcel tracked by the system.
// OwnerID is nil until a homeowner claims the property. IsVerified and
// VerificationDate are set together by an admin verification.
type Property struct {
	ID               uuid.UUID
	Address          string
	City             string
	State            string
	ZipCode          string
	Latitude         *float64
	Longitude        *float64
	PropertyType     string
	YearBuilt        int
	SquareFeet       int
	Bedrooms         int
	Bathrooms        float64
	LotSize          *float64
	OwnerID          *uuid.UUID
	IsVerified       bool
	VerificationDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsOwnedBy reports whether userID is the current owner.
func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID != nil && *p.OwnerID == userID
}

// PropertyUpdateParams holds optional fields for a merge-patch update.
// nil means "leave unchanged".
type PropertyUpdateParams struct {
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Latitude     *float64
	Longitude    *float64
	PropertyType *string
	YearBuilt    *int
	SquareFeet   *int
	Bedrooms     *int
	Bathrooms    *float64
	LotSize      *float64
}

// PropertyFilter is the exact-match conjunction applied to property listings.
type PropertyFilter struct {
	City         *string
	PropertyType *string
	OwnerID      *uuid.UUID
	Page         Page
}

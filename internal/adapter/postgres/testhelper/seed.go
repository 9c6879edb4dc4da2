package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/homefax/homefax-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role and a fixed bcrypt hash
// placeholder. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtest",
		Role:         role,
		FirstName:    "Test",
		LastName:     "User " + suffix,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, first_name, last_name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.PasswordHash, user.Role.String(), user.FirstName, user.LastName, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProperty creates an unverified property. ownerID may be nil for an
// unclaimed property. Returns a filled domain.Property.
func SeedProperty(t *testing.T, pool *pgxpool.Pool, ownerID *uuid.UUID) domain.Property {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	property := domain.Property{
		ID:           uuid.New(),
		Address:      suffix + " Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		PropertyType: "single_family",
		YearBuilt:    1987,
		SquareFeet:   1850,
		Bedrooms:     3,
		Bathrooms:    2,
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO properties (id, address, city, state, zip_code, property_type, year_built,
		                         square_feet, bedrooms, bathrooms, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		property.ID, property.Address, property.City, property.State, property.ZipCode,
		property.PropertyType, property.YearBuilt, property.SquareFeet, property.Bedrooms,
		property.Bathrooms, property.OwnerID, property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProperty insert property: %v", err)
	}

	return property
}

// SeedReport creates a pending report on the given property from the given
// submitter. Returns a filled domain.Report.
func SeedReport(t *testing.T, pool *pgxpool.Pool, propertyID, submitterID uuid.UUID) domain.Report {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	desc := "Inspection notes " + suffix
	report := domain.Report{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		SubmitterID: submitterID,
		ReportType:  "inspection",
		Title:       "Report " + suffix,
		Description: &desc,
		Status:      domain.ReportStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO reports (id, property_id, submitter_id, report_type, title, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		report.ID, report.PropertyID, report.SubmitterID, report.ReportType, report.Title,
		report.Description, report.Status.String(), report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport insert report: %v", err)
	}

	return report
}

// SeedRenovation creates an in-progress renovation on the given property
// owned by the given contractor. Returns a filled domain.Renovation.
func SeedRenovation(t *testing.T, pool *pgxpool.Pool, propertyID, contractorID uuid.UUID) domain.Renovation {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	renovation := domain.Renovation{
		ID:             uuid.New(),
		PropertyID:     propertyID,
		ContractorID:   contractorID,
		Title:          "Renovation " + suffix,
		RenovationType: "kitchen",
		StartDate:      now,
		Cost:           12500,
		Status:         domain.RenovationStatusInProgress,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO renovations (id, property_id, contractor_id, title, renovation_type, start_date, cost, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		renovation.ID, renovation.PropertyID, renovation.ContractorID, renovation.Title,
		renovation.RenovationType, renovation.StartDate, renovation.Cost,
		renovation.Status.String(), renovation.CreatedAt, renovation.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRenovation insert renovation: %v", err)
	}

	return renovation
}

// SeedCommunityUpdate creates an unverified community update by the given
// user, scoped to a neighborhood. Returns a filled domain.CommunityUpdate.
func SeedCommunityUpdate(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.CommunityUpdate {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	neighborhood := "downtown-" + suffix
	update := domain.CommunityUpdate{
		ID:             uuid.New(),
		NeighborhoodID: &neighborhood,
		UpdateType:     "construction",
		Title:          "Update " + suffix,
		Description:    "Road work on Main St " + suffix,
		ImpactLevel:    domain.ImpactLevelMedium,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO community_updates (id, neighborhood_id, update_type, title, description, impact_level, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		update.ID, update.NeighborhoodID, update.UpdateType, update.Title, update.Description,
		update.ImpactLevel.String(), update.CreatedBy, update.CreatedAt, update.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCommunityUpdate insert update: %v", err)
	}

	return update
}

// SeedAssignment creates a contractor assignment in the assigned state.
// Returns a filled domain.ContractorAssignment.
func SeedAssignment(t *testing.T, pool *pgxpool.Pool, contractorID, propertyID uuid.UUID) domain.ContractorAssignment {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	notes := "Assignment notes " + suffix
	assignment := domain.ContractorAssignment{
		ID:             uuid.New(),
		ContractorID:   contractorID,
		PropertyID:     propertyID,
		AssignmentType: "renovation",
		Status:         domain.AssignmentStatusAssigned,
		AssignedDate:   now,
		Notes:          &notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO contractor_assignments (id, contractor_id, property_id, assignment_type, status, assigned_date, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		assignment.ID, assignment.ContractorID, assignment.PropertyID, assignment.AssignmentType,
		assignment.Status.String(), assignment.AssignedDate, assignment.Notes,
		assignment.CreatedAt, assignment.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssignment insert assignment: %v", err)
	}

	return assignment
}

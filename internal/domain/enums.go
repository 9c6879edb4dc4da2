package domain

// UserRole represents the authorization role of a user.
// Roles are a closed set with no hierarchy: every endpoint names the roles
// it admits, and admin passes a gate only when listed explicitly.
type UserRole string

const (
	UserRoleHomeowner  UserRole = "homeowner"
	UserRoleContractor UserRole = "contractor"
	UserRoleBuyer      UserRole = "buyer"
	UserRoleAdmin      UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleHomeowner, UserRoleContractor, UserRoleBuyer, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ReportStatus represents the review state of a property report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusApproved, ReportStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusApproved || s == ReportStatusRejected
}

// RenovationStatus represents the lifecycle state of a renovation project.
type RenovationStatus string

const (
	RenovationStatusPlanned    RenovationStatus = "planned"
	RenovationStatusInProgress RenovationStatus = "in_progress"
	RenovationStatusCompleted  RenovationStatus = "completed"
)

func (s RenovationStatus) String() string { return string(s) }

func (s RenovationStatus) IsValid() bool {
	switch s {
	case RenovationStatusPlanned, RenovationStatusInProgress, RenovationStatusCompleted:
		return true
	}
	return false
}

// AssignmentStatus represents the state of a contractor assignment.
type AssignmentStatus string

const (
	AssignmentStatusAssigned   AssignmentStatus = "assigned"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

func (s AssignmentStatus) String() string { return string(s) }

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusInProgress, AssignmentStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the assignment may advance to next.
// The only legal moves are assigned → in_progress → completed.
func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	switch s {
	case AssignmentStatusAssigned:
		return next == AssignmentStatusInProgress
	case AssignmentStatusInProgress:
		return next == AssignmentStatusCompleted
	}
	return false
}

// ImpactLevel represents the severity of a community update.
type ImpactLevel string

const (
	ImpactLevelLow    ImpactLevel = "low"
	ImpactLevelMedium ImpactLevel = "medium"
	ImpactLevelHigh   ImpactLevel = "high"
)

func (l ImpactLevel) String() string { return string(l) }

func (l ImpactLevel) IsValid() bool {
	switch l {
	case ImpactLevelLow, ImpactLevelMedium, ImpactLevelHigh:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeProperty        EntityType = "PROPERTY"
	EntityTypeReport          EntityType = "REPORT"
	EntityTypeRenovation      EntityType = "RENOVATION"
	EntityTypeCommunityUpdate EntityType = "COMMUNITY_UPDATE"
	EntityTypeAssignment      EntityType = "ASSIGNMENT"
	EntityTypeUser            EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProperty, EntityTypeReport, EntityTypeRenovation,
		EntityTypeCommunityUpdate, EntityTypeAssignment, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate   AuditAction = "CREATE"
	AuditActionUpdate   AuditAction = "UPDATE"
	AuditActionDelete   AuditAction = "DELETE"
	AuditActionApprove  AuditAction = "APPROVE"
	AuditActionReject   AuditAction = "REJECT"
	AuditActionClaim    AuditAction = "CLAIM"
	AuditActionVerify   AuditAction = "VERIFY"
	AuditActionComplete AuditAction = "COMPLETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionApprove, AuditActionReject, AuditActionClaim,
		AuditActionVerify, AuditActionComplete:
		return true
	}
	return false
}

package domain

// AdminStats aggregates platform-wide counters for the admin dashboard.
type AdminStats struct {
	TotalProperties       int
	VerifiedProperties    int
	TotalReports          int
	PendingReports        int
	TotalUsers            int
	TotalCommunityUpdates int
}

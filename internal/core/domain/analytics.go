package domain

// DashboardSnapshot is the aggregate headline view returned by the
// analytics dashboard endpoint. It is immutable per load; a reload
// replaces it wholesale.
type DashboardSnapshot struct {
	TotalComplaints      int     `json:"total_complaints"`
	PendingComplaints    int     `json:"pending_complaints"`
	InProgressComplaints int     `json:"in_progress_complaints"`
	ResolvedComplaints   int     `json:"resolved_complaints"`
	RecentComplaints     int     `json:"recent_complaints"`
	AverageRating        float64 `json:"average_rating"`
	ResolutionRate       float64 `json:"resolution_rate"`
}

// MinistryMetric is one row of the complaints-by-ministry breakdown.
// Row order is the backend-provided ranking and must be preserved.
type MinistryMetric struct {
	Ministry   string `json:"ministry"`
	Code       string `json:"code"`
	Total      int    `json:"total"`
	Resolved   int    `json:"resolved"`
	Pending    int    `json:"pending"`
	InProgress int    `json:"in_progress"`
}

// DistrictMetric is one row of the complaints-by-district breakdown.
// The untruncated collection feeds the district filter facet; only the
// chart view is capped.
type DistrictMetric struct {
	District string `json:"district"`
	Total    int    `json:"total"`
}

// CategoryMetric is one slice of the complaints-by-category breakdown.
type CategoryMetric struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TimelinePoint is one month of complaint volume. The sequence arrives
// chronologically ordered and is never re-sorted client side.
type TimelinePoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ResolutionTier buckets a ministry's resolution rate for badge styling.
type ResolutionTier string

const (
	TierResolved   ResolutionTier = "resolved"
	TierInProgress ResolutionTier = "in-progress"
	TierPending    ResolutionTier = "pending"
)

// MinistryPerformanceRow is one row of the ministry performance table.
type MinistryPerformanceRow struct {
	Ministry          string  `json:"ministry"`
	TotalComplaints   int     `json:"total_complaints"`
	Resolved          int     `json:"resolved"`
	ResolutionRate    float64 `json:"resolution_rate"`
	AvgResolutionDays float64 `json:"avg_resolution_days"`
}

// Tier maps the resolution rate onto its badge tier. Both boundaries
// are inclusive: 70 is already "resolved", 40 is already "in-progress".
func (r MinistryPerformanceRow) Tier() ResolutionTier {
	switch {
	case r.ResolutionRate >= 70:
		return TierResolved
	case r.ResolutionRate >= 40:
		return TierInProgress
	default:
		return TierPending
	}
}

// UnresolvedByMinistry is one row of the unresolved backlog breakdown.
type UnresolvedByMinistry struct {
	Ministry        string `json:"ministry"`
	UnresolvedCount int    `json:"unresolved_count"`
}

// TopIssue is one keyword of the top-issues tag cloud.
type TopIssue struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
)

func TestMinistryPerformanceRow_Tier(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want domain.ResolutionTier
	}{
		{"70 is resolved boundary inclusive", 70, domain.TierResolved},
		{"above 70 is resolved", 92.5, domain.TierResolved},
		{"69 is in-progress", 69, domain.TierInProgress},
		{"40 is in-progress boundary inclusive", 40, domain.TierInProgress},
		{"39 is pending", 39, domain.TierPending},
		{"zero is pending", 0, domain.TierPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := domain.MinistryPerformanceRow{Ministry: "Health", ResolutionRate: tt.rate}
			assert.Equal(t, tt.want, row.Tier())
		})
	}
}

func TestNewStatusChartSpec(t *testing.T) {
	snap := domain.DashboardSnapshot{
		PendingComplaints:    3,
		InProgressComplaints: 2,
		ResolvedComplaints:   5,
	}

	spec := domain.NewStatusChartSpec(snap)

	assert.Equal(t, domain.ChartStatus, spec.Key)
	assert.Equal(t, domain.KindDoughnut, spec.Kind)
	assert.Equal(t, []string{"Pending", "In Progress", "Resolved"}, spec.Labels)
	require.Len(t, spec.Series, 1)
	assert.Equal(t, []int{3, 2, 5}, spec.Series[0].Values)

	sum := 0
	for _, v := range spec.Series[0].Values {
		sum += v
	}
	assert.Equal(t, 10, sum)
}

func TestNewDistrictChartSpec_TruncatesToTen(t *testing.T) {
	rows := make([]domain.DistrictMetric, 14)
	for i := range rows {
		rows[i] = domain.DistrictMetric{District: fmt.Sprintf("District %d", i), Total: 100 - i}
	}

	spec := domain.NewDistrictChartSpec(rows)

	assert.Len(t, spec.Labels, 10)
	require.Len(t, spec.Series, 1)
	assert.Len(t, spec.Series[0].Values, 10)
	// Backend ordering is preserved, never re-sorted.
	assert.Equal(t, "District 0", spec.Labels[0])
	assert.Equal(t, "District 9", spec.Labels[9])
}

func TestNewDistrictChartSpec_ShortCollection(t *testing.T) {
	rows := []domain.DistrictMetric{{District: "Kampala", Total: 12}}

	spec := domain.NewDistrictChartSpec(rows)

	assert.Equal(t, []string{"Kampala"}, spec.Labels)
	assert.Equal(t, []int{12}, spec.Series[0].Values)
}

func TestNewMinistryChartSpec(t *testing.T) {
	rows := []domain.MinistryMetric{
		{Ministry: "Ministry of Health", Code: "MOH", Total: 40, Resolved: 25, Pending: 10, InProgress: 5},
		{Ministry: "Ministry of Works", Code: "MOW", Total: 30, Resolved: 6, Pending: 20, InProgress: 4},
	}

	spec := domain.NewMinistryChartSpec(rows)

	assert.Equal(t, domain.KindGroupedBar, spec.Kind)
	assert.Equal(t, []string{"MOH", "MOW"}, spec.Labels)
	require.Len(t, spec.Series, 2)
	assert.Equal(t, "Total", spec.Series[0].Label)
	assert.Equal(t, []int{40, 30}, spec.Series[0].Values)
	assert.Equal(t, "Resolved", spec.Series[1].Label)
	assert.Equal(t, []int{25, 6}, spec.Series[1].Values)
	require.Len(t, spec.Tooltips, 2)
	assert.Equal(t, "Pending: 10, In Progress: 5", spec.Tooltips[0])
}

func TestNewTimelineChartSpec_PreservesOrder(t *testing.T) {
	points := []domain.TimelinePoint{
		{Month: "2026-03", Count: 7},
		{Month: "2026-01", Count: 4}, // deliberately out of order
		{Month: "2026-02", Count: 9},
	}

	spec := domain.NewTimelineChartSpec(points)

	assert.True(t, spec.Filled)
	assert.Equal(t, []string{"2026-03", "2026-01", "2026-02"}, spec.Labels)
	assert.Equal(t, []int{7, 4, 9}, spec.Series[0].Values)
}

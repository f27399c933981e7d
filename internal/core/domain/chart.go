package domain

import "fmt"

// ChartKey identifies one fixed visualization slot on the dashboard.
// At most one live widget may exist per key at any time.
type ChartKey string

const (
	ChartMinistry   ChartKey = "ministry"
	ChartStatus     ChartKey = "status"
	ChartDistrict   ChartKey = "district"
	ChartCategory   ChartKey = "category"
	ChartTimeline   ChartKey = "timeline"
	ChartUnresolved ChartKey = "unresolved"
)

// ChartKind selects how a spec's series map onto visual channels.
type ChartKind string

const (
	KindGroupedBar    ChartKind = "grouped-bar"
	KindDoughnut      ChartKind = "doughnut"
	KindHorizontalBar ChartKind = "horizontal-bar"
	KindPie           ChartKind = "pie"
	KindLine          ChartKind = "line"
)

// Series is one named sequence of values aligned with the spec's labels.
type Series struct {
	Label  string
	Values []int
}

// ChartSpec is the chart-ready shape handed to a renderer. All value
// axes are anchored at zero; specs are pure data and carry no widget
// state.
type ChartSpec struct {
	Key    ChartKey
	Kind   ChartKind
	Title  string
	Labels []string
	Series []Series

	// Tooltips carries supplementary per-label hover detail, aligned
	// with Labels. Empty for charts without extra detail.
	Tooltips []string

	// Filled requests an area fill under a line series.
	Filled bool
}

// districtChartLimit caps the district chart to the first rows of the
// backend-ordered collection. The filter facet uses the full collection.
const districtChartLimit = 10

// Fixed human-readable chart titles.
const (
	TitleMinistry   = "Complaint Distribution by Ministry"
	TitleStatus     = "Status Distribution"
	TitleDistrict   = "Top 10 Districts by Complaint Volume"
	TitleCategory   = "Complaints by Category"
	TitleTimeline   = "Complaint Trends Over Time"
	TitleUnresolved = "Unresolved Complaints by Ministry"
)

// NewMinistryChartSpec builds the grouped bar chart: one group per
// ministry code with total and resolved series. Pending and in-progress
// counts surface only as supplementary tooltip text.
func NewMinistryChartSpec(rows []MinistryMetric) ChartSpec {
	labels := make([]string, len(rows))
	totals := make([]int, len(rows))
	resolved := make([]int, len(rows))
	tooltips := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.Code
		totals[i] = row.Total
		resolved[i] = row.Resolved
		tooltips[i] = fmt.Sprintf("Pending: %d, In Progress: %d", row.Pending, row.InProgress)
	}
	return ChartSpec{
		Key:    ChartMinistry,
		Kind:   KindGroupedBar,
		Title:  TitleMinistry,
		Labels: labels,
		Series: []Series{
			{Label: "Total", Values: totals},
			{Label: "Resolved", Values: resolved},
		},
		Tooltips: tooltips,
	}
}

// NewStatusChartSpec builds the status doughnut from the dashboard
// snapshot. The three segments are fixed in both identity and order.
func NewStatusChartSpec(snap DashboardSnapshot) ChartSpec {
	return ChartSpec{
		Key:    ChartStatus,
		Kind:   KindDoughnut,
		Title:  TitleStatus,
		Labels: []string{"Pending", "In Progress", "Resolved"},
		Series: []Series{{
			Label:  "Complaints",
			Values: []int{snap.PendingComplaints, snap.InProgressComplaints, snap.ResolvedComplaints},
		}},
	}
}

// NewDistrictChartSpec builds the horizontal district bar chart from the
// first ten rows of the already-ranked collection.
func NewDistrictChartSpec(rows []DistrictMetric) ChartSpec {
	if len(rows) > districtChartLimit {
		rows = rows[:districtChartLimit]
	}
	labels := make([]string, len(rows))
	values := make([]int, len(rows))
	for i, row := range rows {
		labels[i] = row.District
		values[i] = row.Total
	}
	return ChartSpec{
		Key:    ChartDistrict,
		Kind:   KindHorizontalBar,
		Title:  TitleDistrict,
		Labels: labels,
		Series: []Series{{Label: "Complaints", Values: values}},
	}
}

// NewCategoryChartSpec builds the category pie chart. Slice colors are a
// renderer concern: a fixed palette indexed by position, cycling.
func NewCategoryChartSpec(rows []CategoryMetric) ChartSpec {
	labels := make([]string, len(rows))
	values := make([]int, len(rows))
	for i, row := range rows {
		labels[i] = row.Category
		values[i] = row.Count
	}
	return ChartSpec{
		Key:    ChartCategory,
		Kind:   KindPie,
		Title:  TitleCategory,
		Labels: labels,
		Series: []Series{{Label: "Complaints", Values: values}},
	}
}

// NewTimelineChartSpec builds the filled line chart over the month
// sequence as given.
func NewTimelineChartSpec(points []TimelinePoint) ChartSpec {
	labels := make([]string, len(points))
	values := make([]int, len(points))
	for i, p := range points {
		labels[i] = p.Month
		values[i] = p.Count
	}
	return ChartSpec{
		Key:    ChartTimeline,
		Kind:   KindLine,
		Title:  TitleTimeline,
		Labels: labels,
		Series: []Series{{Label: "Complaints", Values: values}},
		Filled: true,
	}
}

// NewUnresolvedChartSpec builds the horizontal unresolved-backlog bar
// chart keyed by ministry name.
func NewUnresolvedChartSpec(rows []UnresolvedByMinistry) ChartSpec {
	labels := make([]string, len(rows))
	values := make([]int, len(rows))
	for i, row := range rows {
		labels[i] = row.Ministry
		values[i] = row.UnresolvedCount
	}
	return ChartSpec{
		Key:    ChartUnresolved,
		Kind:   KindHorizontalBar,
		Title:  TitleUnresolved,
		Labels: labels,
		Series: []Series{{Label: "Unresolved Complaints", Values: values}},
	}
}

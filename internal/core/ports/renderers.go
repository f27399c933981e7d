package ports

import "github.com/civicpulse/civicpulse-cli/internal/core/domain"

// Widget is a live chart bound to its draw surface. Destroy releases
// the surface; after Destroy the widget must not be used again.
type Widget interface {
	Destroy()
}

// ChartRenderer materializes a chart spec into a live widget. Rendering
// fails if the spec's surface already hosts a live widget; the chart
// manager guarantees the old widget is destroyed first.
type ChartRenderer interface {
	Render(spec domain.ChartSpec) (Widget, error)
}

// StatPanel displays the headline dashboard numbers.
type StatPanel interface {
	ShowSnapshot(snap domain.DashboardSnapshot)
}

// PerformanceTable displays the ministry performance rows, or an
// explicit empty-state message when there are none.
type PerformanceTable interface {
	ShowRows(rows []domain.MinistryPerformanceRow)
}

// TagCloud displays the top-issue keywords, or an explicit empty-state
// message when there are none.
type TagCloud interface {
	ShowIssues(issues []domain.TopIssue)
}

// FormView is the rendering surface of one submission form. Busy
// disables the triggering control; Ready re-enables it. ResetFields
// clears the form after a successful submission.
type FormView interface {
	Busy(label string)
	Ready()
	ShowSuccess(body string)
	ShowError(body string)
	ShowValidation(message string)
	ResetFields()
}

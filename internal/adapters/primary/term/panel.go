package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// StatPanel renders the dashboard headline numbers.
type StatPanel struct {
	out io.Writer
}

var _ ports.StatPanel = (*StatPanel)(nil)

// NewStatPanel creates a stat panel writing to out. A nil out defaults
// to stdout.
func NewStatPanel(out io.Writer) *StatPanel {
	if out == nil {
		out = os.Stdout
	}
	return &StatPanel{out: out}
}

// ShowSnapshot renders the headline stats in a fixed order.
func (p *StatPanel) ShowSnapshot(snap domain.DashboardSnapshot) {
	rows := []struct {
		label string
		value string
	}{
		{"Total Complaints", fmt.Sprintf("%d", snap.TotalComplaints)},
		{"Pending", fmt.Sprintf("%d", snap.PendingComplaints)},
		{"In Progress", fmt.Sprintf("%d", snap.InProgressComplaints)},
		{"Resolved", fmt.Sprintf("%d", snap.ResolvedComplaints)},
		{"Last 7 Days", fmt.Sprintf("%d", snap.RecentComplaints)},
		{"Average Rating", fmt.Sprintf("%.1f / 5", snap.AverageRating)},
		{"Resolution Rate", fmt.Sprintf("%.1f%%", snap.ResolutionRate)},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprintf("%s %s",
			styleLabel.Render(fmt.Sprintf("%-18s", row.label)),
			styleValue.Render(row.value)))
	}
	fmt.Fprintln(p.out, styleFrame.Render(styleTitle.Render("Dashboard")+"\n"+b.String()))
}

package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// Table renders the ministry performance rows with tier badges.
type Table struct {
	out io.Writer
}

var _ ports.PerformanceTable = (*Table)(nil)

// NewTable creates a performance table writing to out. A nil out
// defaults to stdout.
func NewTable(out io.Writer) *Table {
	if out == nil {
		out = os.Stdout
	}
	return &Table{out: out}
}

// ShowRows renders the rows in the order given. An empty collection
// renders the empty-state line instead of a bare header.
func (t *Table) ShowRows(rows []domain.MinistryPerformanceRow) {
	title := styleTitle.Render("Ministry Performance")
	if len(rows) == 0 {
		fmt.Fprintln(t.out, styleFrame.Render(title+"\n"+styleMuted.Render("No data available")))
		return
	}

	var b strings.Builder
	b.WriteString(styleLabel.Render(fmt.Sprintf("%-28s %9s %9s %7s %10s",
		"Ministry", "Total", "Resolved", "Rate", "Avg Days")))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(fmt.Sprintf("%-28s %9d %9d %6.1f%% %10.1f %s",
			truncate(row.Ministry, 28),
			row.TotalComplaints,
			row.Resolved,
			row.ResolutionRate,
			row.AvgResolutionDays,
			tierBadge(row.Tier()),
		))
	}
	fmt.Fprintln(t.out, styleFrame.Render(title+"\n"+b.String()))
}

func tierBadge(tier domain.ResolutionTier) string {
	switch tier {
	case domain.TierResolved:
		return styleBadgeResolved.Render(string(tier))
	case domain.TierInProgress:
		return styleBadgeInProgress.Render(string(tier))
	default:
		return styleBadgePending.Render(string(tier))
	}
}

// truncate shortens by runes so multi-byte district and ministry names
// never split mid-character.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

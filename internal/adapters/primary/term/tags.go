package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// TagCloud renders the top complaint issues as weighted keyword tags.
type TagCloud struct {
	out io.Writer
}

var _ ports.TagCloud = (*TagCloud)(nil)

// NewTagCloud creates a tag cloud writing to out. A nil out defaults to
// stdout.
func NewTagCloud(out io.Writer) *TagCloud {
	if out == nil {
		out = os.Stdout
	}
	return &TagCloud{out: out}
}

// ShowIssues renders the keywords in backend rank order, the heavier
// counts in bold. An empty collection renders the empty-state line.
func (c *TagCloud) ShowIssues(issues []domain.TopIssue) {
	title := styleTitle.Render("Top Issues")
	if len(issues) == 0 {
		fmt.Fprintln(c.out, styleFrame.Render(title+"\n"+styleMuted.Render("No issues identified yet")))
		return
	}

	limit := 0
	for _, issue := range issues {
		if issue.Count > limit {
			limit = issue.Count
		}
	}

	tags := make([]string, len(issues))
	for i, issue := range issues {
		style := lipgloss.NewStyle().Foreground(seriesColor(i))
		if limit > 0 && issue.Count*2 >= limit {
			style = style.Bold(true)
		}
		tags[i] = style.Render(fmt.Sprintf("%s (%d)", issue.Keyword, issue.Count))
	}
	fmt.Fprintln(c.out, styleFrame.Render(title+"\n"+strings.Join(tags, "  ")))
}

package term

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

const (
	barWidth     = 30
	labelWidth   = 18
	sparkGlyphs  = "▁▂▃▄▅▆▇█"
	legendSwatch = "■"
)

// Renderer draws chart specs as framed lipgloss blocks. Each chart key
// names a draw surface; a surface holds at most one live widget, and
// rendering onto an occupied surface fails until the holder is
// destroyed.
type Renderer struct {
	out io.Writer

	mu       sync.Mutex
	occupied map[domain.ChartKey]*chartWidget
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// NewRenderer creates a chart renderer writing to out. A nil out
// defaults to stdout.
func NewRenderer(out io.Writer) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	return &Renderer{
		out:      out,
		occupied: make(map[domain.ChartKey]*chartWidget),
	}
}

// Render draws spec onto the surface named by spec.Key and returns the
// widget holding that surface.
func (r *Renderer) Render(spec domain.ChartSpec) (ports.Widget, error) {
	r.mu.Lock()
	if _, taken := r.occupied[spec.Key]; taken {
		r.mu.Unlock()
		return nil, fmt.Errorf("surface %q: %w", spec.Key, apperrors.ErrSurfaceOccupied)
	}
	w := &chartWidget{renderer: r, key: spec.Key}
	r.occupied[spec.Key] = w
	r.mu.Unlock()

	var body string
	switch spec.Kind {
	case domain.KindGroupedBar:
		body = renderGroupedBars(spec)
	case domain.KindHorizontalBar:
		body = renderBars(spec)
	case domain.KindDoughnut, domain.KindPie:
		body = renderSegments(spec)
	case domain.KindLine:
		body = renderLine(spec)
	default:
		body = styleMuted.Render("Unsupported chart kind: " + string(spec.Kind))
	}

	fmt.Fprintln(r.out, styleFrame.Render(styleTitle.Render(spec.Title)+"\n"+body))
	return w, nil
}

// chartWidget holds one draw surface until destroyed. Destroy is
// idempotent.
type chartWidget struct {
	renderer *Renderer
	key      domain.ChartKey

	once sync.Once
}

var _ ports.Widget = (*chartWidget)(nil)

func (w *chartWidget) Destroy() {
	w.once.Do(func() {
		w.renderer.mu.Lock()
		if w.renderer.occupied[w.key] == w {
			delete(w.renderer.occupied, w.key)
		}
		w.renderer.mu.Unlock()
	})
}

func renderBars(spec domain.ChartSpec) string {
	if len(spec.Labels) == 0 || len(spec.Series) == 0 {
		return styleMuted.Render("No data available")
	}
	values := spec.Series[0].Values
	limit := maxValue(values)
	var b strings.Builder
	for i, label := range spec.Labels {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(barLine(label, values[i], limit, colorSkyBlue))
	}
	return b.String()
}

// renderGroupedBars stacks the per-label bars of every series, with a
// tooltip line under each group when the spec carries one.
func renderGroupedBars(spec domain.ChartSpec) string {
	if len(spec.Labels) == 0 || len(spec.Series) == 0 {
		return styleMuted.Render("No data available")
	}
	limit := 0
	for _, s := range spec.Series {
		if m := maxValue(s.Values); m > limit {
			limit = m
		}
	}
	var b strings.Builder
	for i, label := range spec.Labels {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(styleValue.Render(label))
		for si, s := range spec.Series {
			b.WriteByte('\n')
			b.WriteString(barLine("  "+s.Label, s.Values[i], limit, seriesColor(si)))
		}
		if i < len(spec.Tooltips) && spec.Tooltips[i] != "" {
			b.WriteByte('\n')
			b.WriteString("  " + styleMuted.Render(spec.Tooltips[i]))
		}
	}
	return b.String()
}

// renderSegments draws doughnut and pie specs as a swatch legend with
// counts and share percentages. Swatch colors cycle the fixed palette
// by position.
func renderSegments(spec domain.ChartSpec) string {
	if len(spec.Labels) == 0 || len(spec.Series) == 0 {
		return styleMuted.Render("No data available")
	}
	values := spec.Series[0].Values
	total := 0
	for _, v := range values {
		total += v
	}
	var b strings.Builder
	for i, label := range spec.Labels {
		if i > 0 {
			b.WriteByte('\n')
		}
		share := 0.0
		if total > 0 {
			share = float64(values[i]) / float64(total) * 100
		}
		swatch := lipgloss.NewStyle().Foreground(seriesColor(i)).Render(legendSwatch)
		b.WriteString(fmt.Sprintf("%s %s %s %s",
			swatch,
			padLabel(label),
			styleValue.Render(fmt.Sprintf("%4d", values[i])),
			styleLabel.Render(fmt.Sprintf("(%.1f%%)", share)),
		))
	}
	return b.String()
}

// renderLine draws the series as a block-glyph sparkline with the first
// and last labels as the axis hint.
func renderLine(spec domain.ChartSpec) string {
	if len(spec.Labels) == 0 || len(spec.Series) == 0 {
		return styleMuted.Render("No data available")
	}
	values := spec.Series[0].Values
	limit := maxValue(values)
	glyphs := []rune(sparkGlyphs)
	var spark strings.Builder
	for _, v := range values {
		idx := 0
		if limit > 0 {
			idx = v * (len(glyphs) - 1) / limit
		}
		spark.WriteRune(glyphs[idx])
	}
	line := lipgloss.NewStyle().Foreground(colorSkyBlue).Render(spark.String())
	axis := styleLabel.Render(spec.Labels[0] + " .. " + spec.Labels[len(spec.Labels)-1])
	if spec.Filled {
		fill := lipgloss.NewStyle().Foreground(colorDeepNavy).
			Render(strings.Repeat("▔", len(values)))
		return line + "\n" + fill + "\n" + axis
	}
	return line + "\n" + axis
}

func barLine(label string, value, limit int, color lipgloss.Color) string {
	filled := 0
	if limit > 0 {
		filled = value * barWidth / limit
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	return fmt.Sprintf("%s %s %s", padLabel(label), bar, styleValue.Render(fmt.Sprintf("%d", value)))
}

func padLabel(label string) string {
	label = truncate(label, labelWidth)
	return styleLabel.Render(fmt.Sprintf("%-*s", labelWidth, label))
}

func maxValue(values []int) int {
	m := 0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

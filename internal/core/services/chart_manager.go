package services

import (
	"log/slog"
	"sync"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// ChartManager owns the registry of live chart widgets, one slot per
// chart key. It enforces the central lifecycle invariant: a key's old
// widget is destroyed before the replacement binds the same draw
// surface, so no two live widgets ever share a key.
type ChartManager struct {
	renderer ports.ChartRenderer
	logger   *slog.Logger

	mu   sync.Mutex
	live map[domain.ChartKey]ports.Widget
}

// NewChartManager creates a chart manager over the given renderer.
func NewChartManager(renderer ports.ChartRenderer, logger *slog.Logger) *ChartManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartManager{
		renderer: renderer,
		logger:   logger,
		live:     make(map[domain.ChartKey]ports.Widget),
	}
}

// Upsert renders spec into the slot named by spec.Key. Any live widget
// on that key is destroyed first, synchronously, before the new widget
// binds. On render failure the slot is left empty.
func (m *ChartManager) Upsert(spec domain.ChartSpec) (ports.Widget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.live[spec.Key]; ok {
		old.Destroy()
		delete(m.live, spec.Key)
	}

	widget, err := m.renderer.Render(spec)
	if err != nil {
		m.logger.Error("chart render failed", "chart", string(spec.Key), "error", err)
		return nil, err
	}

	m.live[spec.Key] = widget
	return widget, nil
}

// Live returns the current widget for key, if any.
func (m *ChartManager) Live(key domain.ChartKey) (ports.Widget, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.live[key]
	return w, ok
}

// LiveCount returns the number of live widgets.
func (m *ChartManager) LiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// DestroyAll releases every live widget. Used on shutdown.
func (m *ChartManager) DestroyAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, w := range m.live {
		w.Destroy()
		delete(m.live, key)
	}
}

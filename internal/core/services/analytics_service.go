package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
	"github.com/civicpulse/civicpulse-cli/internal/infrastructure/logging"
)

// AnalyticsService fans out to the metric endpoints and routes each
// payload to its widget, table or facet sink. Metrics are independent:
// a slow or failing fetch never blocks the others, and a partial
// dashboard is an accepted degraded state. Failures go to the
// diagnostic log only, never to a blocking user-facing error.
type AnalyticsService struct {
	gateway ports.Gateway
	charts  *ChartManager
	facets  *FacetStore
	stats   ports.StatPanel
	table   ports.PerformanceTable
	tags    ports.TagCloud
	logger  *slog.Logger
}

var _ ports.AnalyticsLoader = (*AnalyticsService)(nil)

// NewAnalyticsService wires the orchestrator to its rendering sinks.
func NewAnalyticsService(
	gateway ports.Gateway,
	charts *ChartManager,
	facets *FacetStore,
	stats ports.StatPanel,
	table ports.PerformanceTable,
	tags ports.TagCloud,
	logger *slog.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		gateway: gateway,
		charts:  charts,
		facets:  facets,
		stats:   stats,
		table:   table,
		tags:    tags,
		logger:  logger,
	}
}

// LoadAll runs one full load cycle. Idempotent: each call replaces the
// previous cycle's widgets and facets wholesale. Returns when every
// metric has reached its terminal outcome.
func (s *AnalyticsService) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup

	run := func(metric string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mctx := logging.WithMetric(ctx, metric)
			if err := fn(mctx); err != nil {
				if errors.Is(err, apperrors.ErrSessionExpired) {
					// Teardown already ran globally; nothing to render.
					s.logger.Warn("metric load aborted, session expired", "metric", metric)
					return
				}
				s.logger.Error("metric load failed", "metric", metric, "error", err)
			}
		}()
	}

	run("dashboard", s.loadDashboard)
	run("complaints-by-ministry", s.loadMinistry)
	run("complaints-by-district", s.loadDistrict)
	run("complaints-by-category", s.loadCategory)
	run("complaints-timeline", s.loadTimeline)
	run("ministry-performance", s.loadPerformance)
	run("unresolved-by-ministry", s.loadUnresolved)
	run("top-issues", s.loadTopIssues)

	wg.Wait()
}

// loadDashboard feeds the stat panel and, once the snapshot has
// resolved, builds the derived status chart. The status chart has no
// endpoint of its own.
func (s *AnalyticsService) loadDashboard(ctx context.Context) error {
	var snap domain.DashboardSnapshot
	if err := s.gateway.Get(ctx, "/analytics/dashboard", &snap); err != nil {
		return err
	}
	s.stats.ShowSnapshot(snap)
	_, err := s.charts.Upsert(domain.NewStatusChartSpec(snap))
	return err
}

func (s *AnalyticsService) loadMinistry(ctx context.Context) error {
	var rows []domain.MinistryMetric
	if err := s.gateway.Get(ctx, "/analytics/complaints-by-ministry", &rows); err != nil {
		return err
	}
	_, err := s.charts.Upsert(domain.NewMinistryChartSpec(rows))
	return err
}

// loadDistrict feeds both the capped district chart and the full
// district facet from one fetch.
func (s *AnalyticsService) loadDistrict(ctx context.Context) error {
	var rows []domain.DistrictMetric
	if err := s.gateway.Get(ctx, "/analytics/complaints-by-district", &rows); err != nil {
		return err
	}
	s.facets.ReplaceDistricts(rows)
	_, err := s.charts.Upsert(domain.NewDistrictChartSpec(rows))
	return err
}

func (s *AnalyticsService) loadCategory(ctx context.Context) error {
	var rows []domain.CategoryMetric
	if err := s.gateway.Get(ctx, "/analytics/complaints-by-category", &rows); err != nil {
		return err
	}
	_, err := s.charts.Upsert(domain.NewCategoryChartSpec(rows))
	return err
}

func (s *AnalyticsService) loadTimeline(ctx context.Context) error {
	var points []domain.TimelinePoint
	if err := s.gateway.Get(ctx, "/analytics/complaints-timeline", &points); err != nil {
		return err
	}
	_, err := s.charts.Upsert(domain.NewTimelineChartSpec(points))
	return err
}

func (s *AnalyticsService) loadPerformance(ctx context.Context) error {
	var rows []domain.MinistryPerformanceRow
	if err := s.gateway.Get(ctx, "/analytics/ministry-performance", &rows); err != nil {
		return err
	}
	s.facets.ReplaceMinistries(rows)
	s.table.ShowRows(rows)
	return nil
}

func (s *AnalyticsService) loadUnresolved(ctx context.Context) error {
	var rows []domain.UnresolvedByMinistry
	if err := s.gateway.Get(ctx, "/analytics/unresolved-by-ministry", &rows); err != nil {
		return err
	}
	_, err := s.charts.Upsert(domain.NewUnresolvedChartSpec(rows))
	return err
}

func (s *AnalyticsService) loadTopIssues(ctx context.Context) error {
	var issues []domain.TopIssue
	if err := s.gateway.Get(ctx, "/analytics/top-issues", &issues); err != nil {
		return err
	}
	s.tags.ShowIssues(issues)
	return nil
}

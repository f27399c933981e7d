package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	"github.com/civicpulse/civicpulse-cli/internal/core/mocks"
	"github.com/civicpulse/civicpulse-cli/internal/core/services"
)

func statusSpec() domain.ChartSpec {
	return domain.NewStatusChartSpec(domain.DashboardSnapshot{
		PendingComplaints: 1, InProgressComplaints: 2, ResolvedComplaints: 3,
	})
}

func TestChartManager_Upsert(t *testing.T) {
	t.Run("first upsert renders a widget", func(t *testing.T) {
		renderer := mocks.NewMockChartRenderer()
		widget := mocks.NewMockWidget()
		renderer.On("Render", mock.AnythingOfType("domain.ChartSpec")).Return(widget, nil)

		mgr := services.NewChartManager(renderer, nil)

		got, err := mgr.Upsert(statusSpec())

		require.NoError(t, err)
		assert.Same(t, widget, got)
		assert.Equal(t, 1, mgr.LiveCount())
		renderer.AssertExpectations(t)
	})

	t.Run("second upsert destroys the old widget before rendering", func(t *testing.T) {
		var events []string

		renderer := mocks.NewMockChartRenderer()
		first := mocks.NewMockWidget()
		second := mocks.NewMockWidget()
		first.On("Destroy").Run(func(mock.Arguments) { events = append(events, "destroy") })

		renderer.On("Render", mock.AnythingOfType("domain.ChartSpec")).
			Run(func(mock.Arguments) { events = append(events, "render") }).
			Return(first, nil).Once()
		renderer.On("Render", mock.AnythingOfType("domain.ChartSpec")).
			Run(func(mock.Arguments) { events = append(events, "render") }).
			Return(second, nil).Once()

		mgr := services.NewChartManager(renderer, nil)

		_, err := mgr.Upsert(statusSpec())
		require.NoError(t, err)
		got, err := mgr.Upsert(statusSpec())
		require.NoError(t, err)

		assert.Same(t, second, got)
		assert.Equal(t, 1, mgr.LiveCount(), "exactly one live handle per key")
		assert.Equal(t, []string{"render", "destroy", "render"}, events,
			"old widget must be destroyed before the replacement binds")
		first.AssertExpectations(t)
	})

	t.Run("different keys keep independent widgets", func(t *testing.T) {
		renderer := mocks.NewMockChartRenderer()
		renderer.On("Render", mock.AnythingOfType("domain.ChartSpec")).Return(mocks.NewMockWidget(), nil)

		mgr := services.NewChartManager(renderer, nil)

		_, err := mgr.Upsert(statusSpec())
		require.NoError(t, err)
		_, err = mgr.Upsert(domain.NewCategoryChartSpec([]domain.CategoryMetric{{Category: "roads", Count: 3}}))
		require.NoError(t, err)

		assert.Equal(t, 2, mgr.LiveCount())
		_, ok := mgr.Live(domain.ChartStatus)
		assert.True(t, ok)
		_, ok = mgr.Live(domain.ChartCategory)
		assert.True(t, ok)
	})

	t.Run("render failure leaves the slot empty", func(t *testing.T) {
		renderer := mocks.NewMockChartRenderer()
		renderer.On("Render", mock.AnythingOfType("domain.ChartSpec")).Return(nil, errors.New("surface busy"))

		mgr := services.NewChartManager(renderer, nil)

		_, err := mgr.Upsert(statusSpec())

		require.Error(t, err)
		assert.Equal(t, 0, mgr.LiveCount())
		_, ok := mgr.Live(domain.ChartStatus)
		assert.False(t, ok)
	})
}

func TestChartManager_DestroyAll(t *testing.T) {
	renderer := mocks.NewMockChartRenderer()
	w1 := mocks.NewMockWidget()
	w2 := mocks.NewMockWidget()
	w1.On("Destroy").Once()
	w2.On("Destroy").Once()
	renderer.On("Render", mock.AnythingOfType("domain.ChartSpec")).Return(w1, nil).Once()
	renderer.On("Render", mock.AnythingOfType("domain.ChartSpec")).Return(w2, nil).Once()

	mgr := services.NewChartManager(renderer, nil)
	_, err := mgr.Upsert(statusSpec())
	require.NoError(t, err)
	_, err = mgr.Upsert(domain.NewCategoryChartSpec(nil))
	require.NoError(t, err)

	mgr.DestroyAll()

	assert.Equal(t, 0, mgr.LiveCount())
	w1.AssertExpectations(t)
	w2.AssertExpectations(t)
}

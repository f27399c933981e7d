package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/mocks"
	"github.com/civicpulse/civicpulse-cli/internal/core/services"
)

func TestReportGenerator_Generate(t *testing.T) {
	t.Run("attributes the report to the current user", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		gateway.On("Post", mock.Anything, "/analytics/generate-report", map[string]any{
			"generated_by": int64(42),
		}, mock.Anything).Return(nil)

		store := newTestSession(t)
		require.NoError(t, store.Set("issued-token", domain.User{ID: 42, Name: "Amina"}))

		svc := services.NewReportGenerator(gateway, store, nil)
		require.NoError(t, svc.Generate(context.Background()))
		gateway.AssertExpectations(t)
	})

	t.Run("requires a login", func(t *testing.T) {
		gateway := mocks.NewMockGateway()

		svc := services.NewReportGenerator(gateway, newTestSession(t), nil)
		err := svc.Generate(context.Background())

		require.ErrorIs(t, err, apperrors.ErrLoginRequired)
		gateway.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps a rejection onto the privilege hint", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		gateway.On("Post", mock.Anything, "/analytics/generate-report", mock.Anything, mock.Anything).
			Return(apperrors.NewHTTPError(403, `{"error": "admin only"}`))

		store := newTestSession(t)
		require.NoError(t, store.Set("issued-token", domain.User{ID: 7}))

		svc := services.NewReportGenerator(gateway, store, nil)
		err := svc.Generate(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrReportForbidden)
	})

	t.Run("passes an expired session through untouched", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		gateway.On("Post", mock.Anything, "/analytics/generate-report", mock.Anything, mock.Anything).
			Return(apperrors.ErrSessionExpired)

		store := newTestSession(t)
		require.NoError(t, store.Set("issued-token", domain.User{ID: 7}))

		svc := services.NewReportGenerator(gateway, store, nil)
		err := svc.Generate(context.Background())

		require.ErrorIs(t, err, apperrors.ErrSessionExpired)
		assert.NotErrorIs(t, err, apperrors.ErrReportForbidden)
	})
}

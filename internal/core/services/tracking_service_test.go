package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/mocks"
	"github.com/civicpulse/civicpulse-cli/internal/core/services"
)

func TestTrackingQuery_Lookup(t *testing.T) {
	t.Run("normalizes the entered number before the fetch", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		gateway.On("Get", mock.Anything, "/feedback/complaint/TRK-001", mock.Anything).
			Run(mocks.RespondJSON(`{"tracking_number": "TRK-001", "status": "In Progress", "category": "roads", "priority": "High", "location": "Kampala", "created_at": "2026-08-01T09:30:00"}`)).
			Return(nil)

		q := services.NewTrackingQuery(gateway, nil)
		view, err := q.Lookup(context.Background(), "  trk-001 ")

		require.NoError(t, err)
		assert.Equal(t, "TRK-001", view.TrackingNumber)
		assert.Equal(t, "In Progress", view.Status)
		assert.Empty(t, view.ResolvedAt, "unresolved complaints carry no resolution timestamp")
	})

	t.Run("blank input is rejected without a network call", func(t *testing.T) {
		gateway := mocks.NewMockGateway()

		q := services.NewTrackingQuery(gateway, nil)
		_, err := q.Lookup(context.Background(), "   ")

		require.ErrorIs(t, err, apperrors.ErrTrackingNumberEmpty)
		assert.True(t, apperrors.IsValidation(err))
		gateway.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown number surfaces as not found", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		gateway.On("Get", mock.Anything, "/feedback/complaint/TRK-404", mock.Anything).
			Return(notFound("/feedback/complaint/TRK-404"))

		q := services.NewTrackingQuery(gateway, nil)
		_, err := q.Lookup(context.Background(), "trk-404")

		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("backfills the number when the response omits it", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		gateway.On("Get", mock.Anything, "/feedback/complaint/TRK-002", mock.Anything).
			Run(mocks.RespondJSON(`{"status": "Resolved", "resolved_at": "2026-08-20T14:00:00"}`)).
			Return(nil)

		q := services.NewTrackingQuery(gateway, nil)
		view, err := q.Lookup(context.Background(), "TRK-002")

		require.NoError(t, err)
		assert.Equal(t, "TRK-002", view.TrackingNumber)
		assert.Equal(t, "2026-08-20T14:00:00", view.ResolvedAt)
	})
}

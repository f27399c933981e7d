package services_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/mocks"
	"github.com/civicpulse/civicpulse-cli/internal/core/services"
)

func renderComplaint(r domain.ComplaintReceipt) string {
	return fmt.Sprintf("Tracking: %s Priority: %s", r.TrackingNumber, r.Complaint.Priority)
}

func validComplaint() domain.ComplaintInput {
	return domain.ComplaintInput{
		Name:        "Amina",
		Phone:       "555-0100",
		Category:    "roads",
		Location:    "Kampala",
		Description: "pothole on main street",
	}
}

func TestComplaintController_Submit(t *testing.T) {
	t.Run("success renders receipt, clears fields and re-enables the form", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		resolver := mocks.NewMockCitizenResolver()
		view := mocks.NewMockFormView()

		resolver.On("Resolve", mock.Anything, "Amina", "555-0100", "Kampala").
			Return(domain.Citizen{ID: 7, Name: "Amina", Phone: "555-0100"}, nil)
		gateway.On("Post", mock.Anything, "/feedback/complaint", map[string]any{
			"citizen_id":  int64(7),
			"category":    "roads",
			"location":    "Kampala",
			"description": "pothole on main street",
		}, mock.Anything).
			Run(mocks.RespondJSON(`{"tracking_number": "TRK-001", "complaint": {"priority": "High", "category": "roads"}}`)).
			Return(nil)
		view.On("Busy", "Submitting complaint...").Once()
		view.On("ShowSuccess", mock.AnythingOfType("string")).Once()
		view.On("ResetFields").Once()
		view.On("Ready").Once()

		ctrl := services.NewComplaintController(gateway, resolver, view, renderComplaint, nil)
		err := ctrl.Submit(context.Background(), validComplaint())

		require.NoError(t, err)
		assert.Equal(t, domain.PhaseSucceeded, ctrl.Phase())
		view.AssertExpectations(t)
		success := view.Calls[1]
		require.Equal(t, "ShowSuccess", success.Method)
		assert.Contains(t, success.Arguments.String(0), "TRK-001")
		assert.Contains(t, success.Arguments.String(0), "High")
		gateway.AssertExpectations(t)
	})

	t.Run("incomplete input never reaches the network", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		resolver := mocks.NewMockCitizenResolver()
		view := mocks.NewMockFormView()
		view.On("ShowValidation", mock.AnythingOfType("string")).Once()

		ctrl := services.NewComplaintController(gateway, resolver, view, renderComplaint, nil)
		in := validComplaint()
		in.Description = ""
		err := ctrl.Submit(context.Background(), in)

		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, domain.PhaseIdle, ctrl.Phase())
		resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		gateway.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		view.AssertNotCalled(t, "Busy", mock.Anything)
	})

	t.Run("backend failure shows the generic message only", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		resolver := mocks.NewMockCitizenResolver()
		view := mocks.NewMockFormView()

		resolver.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.Citizen{ID: 7}, nil)
		gateway.On("Post", mock.Anything, "/feedback/complaint", mock.Anything, mock.Anything).
			Return(apperrors.NewHTTPError(500, `{"error": "db down"}`))
		view.On("Busy", mock.Anything).Once()
		view.On("Ready").Once()
		view.On("ShowError", "Failed to submit complaint. Please try again.").Once()

		ctrl := services.NewComplaintController(gateway, resolver, view, renderComplaint, nil)
		err := ctrl.Submit(context.Background(), validComplaint())

		require.Error(t, err)
		assert.Equal(t, domain.PhaseFailed, ctrl.Phase())
		view.AssertExpectations(t)
		view.AssertNotCalled(t, "ShowSuccess", mock.Anything)
		view.AssertNotCalled(t, "ResetFields")
	})

	t.Run("expired session re-enables the form without a form-level error", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		resolver := mocks.NewMockCitizenResolver()
		view := mocks.NewMockFormView()

		resolver.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.Citizen{}, apperrors.ErrSessionExpired)
		view.On("Busy", mock.Anything).Once()
		view.On("Ready").Once()

		ctrl := services.NewComplaintController(gateway, resolver, view, renderComplaint, nil)
		err := ctrl.Submit(context.Background(), validComplaint())

		require.ErrorIs(t, err, apperrors.ErrSessionExpired)
		view.AssertNotCalled(t, "ShowError", mock.Anything)
	})
}

func TestRatingController_Submit(t *testing.T) {
	renderRating := func(r domain.RatingReceipt) string {
		return fmt.Sprintf("%s rated %d", r.ServiceType, r.Rating)
	}

	t.Run("unset rating prompts for a selection without a network call", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		resolver := mocks.NewMockCitizenResolver()
		view := mocks.NewMockFormView()
		view.On("ShowValidation", "Please select a rating before submitting.").Once()

		ctrl := services.NewRatingController(gateway, resolver, view, renderRating, nil)
		err := ctrl.Submit(context.Background(), domain.RatingInput{
			Name:        "Amina",
			Phone:       "555-0100",
			ServiceType: "Passport Office",
			Location:    "Kampala",
			Rating:      domain.RatingUnset,
		})

		require.ErrorIs(t, err, apperrors.ErrRatingUnset)
		assert.Equal(t, domain.PhaseIdle, ctrl.Phase())
		resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		gateway.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		view.AssertExpectations(t)
	})

	t.Run("receipt is assembled locally from the input", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		resolver := mocks.NewMockCitizenResolver()
		view := mocks.NewMockFormView()

		resolver.On("Resolve", mock.Anything, "Amina", "555-0100", "").
			Return(domain.Citizen{ID: 3}, nil)
		gateway.On("Post", mock.Anything, "/feedback/rating", map[string]any{
			"citizen_id":       int64(3),
			"service_type":     "Passport Office",
			"service_location": "Kampala",
			"rating":           4,
			"comment":          "quick service",
		}, mock.Anything).Return(nil)
		view.On("Busy", "Submitting rating...").Once()
		view.On("ShowSuccess", "Passport Office rated 4").Once()
		view.On("ResetFields").Once()
		view.On("Ready").Once()

		ctrl := services.NewRatingController(gateway, resolver, view, renderRating, nil)
		err := ctrl.Submit(context.Background(), domain.RatingInput{
			Name:        "Amina",
			Phone:       "555-0100",
			ServiceType: "Passport Office",
			Location:    "Kampala",
			Rating:      4,
			Comment:     "quick service",
		})

		require.NoError(t, err)
		view.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})
}

func TestFeedbackController_Submit(t *testing.T) {
	renderFeedback := func(r domain.FeedbackReceipt) string {
		return "Sentiment: " + r.Analysis.Sentiment
	}
	feedbackIn := domain.FeedbackInput{
		Name:     "Amina",
		Phone:    "555-0100",
		PolicyID: "12",
		Text:     "The new policy works well.",
	}

	t.Run("success renders the sentiment analysis", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		resolver := mocks.NewMockCitizenResolver()
		view := mocks.NewMockFormView()

		resolver.On("Resolve", mock.Anything, "Amina", "555-0100", "").
			Return(domain.Citizen{ID: 9}, nil)
		gateway.On("Post", mock.Anything, "/feedback/policy", map[string]any{
			"policy_id":     "12",
			"citizen_id":    int64(9),
			"feedback_text": "The new policy works well.",
		}, mock.Anything).
			Run(mocks.RespondJSON(`{"analysis": {"sentiment": "positive", "themes": ["service delivery"]}}`)).
			Return(nil)
		view.On("Busy", "Submitting feedback...").Once()
		view.On("ShowSuccess", "Sentiment: positive").Once()
		view.On("ResetFields").Once()
		view.On("Ready").Once()

		ctrl := services.NewFeedbackController(gateway, resolver, view, renderFeedback, nil)
		require.NoError(t, ctrl.Submit(context.Background(), feedbackIn))
		view.AssertExpectations(t)
	})

	t.Run("response without analysis counts as a failure", func(t *testing.T) {
		gateway := mocks.NewMockGateway()
		resolver := mocks.NewMockCitizenResolver()
		view := mocks.NewMockFormView()

		resolver.On("Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(domain.Citizen{ID: 9}, nil)
		gateway.On("Post", mock.Anything, "/feedback/policy", mock.Anything, mock.Anything).
			Run(mocks.RespondJSON(`{}`)).
			Return(nil)
		view.On("Busy", mock.Anything).Once()
		view.On("Ready").Once()
		view.On("ShowError", "Failed to submit feedback. Please try again.").Once()

		ctrl := services.NewFeedbackController(gateway, resolver, view, renderFeedback, nil)
		err := ctrl.Submit(context.Background(), feedbackIn)

		require.Error(t, err)
		assert.Equal(t, domain.PhaseFailed, ctrl.Phase())
		view.AssertNotCalled(t, "ShowSuccess", mock.Anything)
	})
}

// The in-flight guard must hold from the moment an attempt is
// admitted, not only once the submit step has started: two attempts
// whose validations overlap still submit exactly once.
func TestSubmissionController_GuardCoversValidationWindow(t *testing.T) {
	view := mocks.NewMockFormView()
	view.On("Busy", "working...").Once()
	view.On("ShowSuccess", mock.Anything).Once()
	view.On("ResetFields").Once()
	view.On("Ready").Once()

	entered := make(chan struct{})
	release := make(chan struct{})
	var validations, submits atomic.Int32

	ctrl := services.NewSubmissionController(
		"slow", "working...", "failed",
		view,
		func(in string) error {
			if validations.Add(1) == 1 {
				close(entered)
				<-release
			}
			return nil
		},
		func(ctx context.Context, in string) (string, error) {
			submits.Add(1)
			return in, nil
		},
		func(out string) string { return out },
		nil,
	)

	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(context.Background(), "first") }()
	<-entered

	err := ctrl.Submit(context.Background(), "second")
	assert.ErrorIs(t, err, apperrors.ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), validations.Load())
	assert.Equal(t, int32(1), submits.Load(), "exactly one submission runs per controller")
}

func TestSubmissionController_RejectsConcurrentSubmit(t *testing.T) {
	view := mocks.NewMockFormView()
	view.On("Busy", "working...").Once()
	view.On("ShowSuccess", mock.Anything).Once()
	view.On("ResetFields").Once()
	view.On("Ready").Once()

	entered := make(chan struct{})
	release := make(chan struct{})
	ctrl := services.NewSubmissionController(
		"slow", "working...", "failed",
		view,
		nil,
		func(ctx context.Context, in string) (string, error) {
			close(entered)
			<-release
			return in, nil
		},
		func(out string) string { return out },
		nil,
	)

	done := make(chan error, 1)
	go func() { done <- ctrl.Submit(context.Background(), "first") }()
	<-entered

	assert.Equal(t, domain.PhaseSubmitting, ctrl.Phase())
	err := ctrl.Submit(context.Background(), "second")
	assert.ErrorIs(t, err, apperrors.ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, domain.PhaseSucceeded, ctrl.Phase())
}

package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// FeedbackController is the policy feedback form pipeline.
type FeedbackController = SubmissionController[domain.FeedbackInput, domain.FeedbackReceipt]

// ComplaintController is the complaint form pipeline.
type ComplaintController = SubmissionController[domain.ComplaintInput, domain.ComplaintReceipt]

// RatingController is the service rating form pipeline.
type RatingController = SubmissionController[domain.RatingInput, domain.RatingReceipt]

// NewFeedbackController wires the policy feedback form: resolve the
// citizen by phone, submit the feedback, and render the returned
// sentiment analysis. A response without a sentiment label or themes is
// treated as a failed submission.
func NewFeedbackController(
	gateway ports.Gateway,
	resolver ports.CitizenResolver,
	view ports.FormView,
	render func(domain.FeedbackReceipt) string,
	logger *slog.Logger,
) *FeedbackController {
	submit := func(ctx context.Context, in domain.FeedbackInput) (domain.FeedbackReceipt, error) {
		citizen, err := resolver.Resolve(ctx, in.Name, in.Phone, "")
		if err != nil {
			return domain.FeedbackReceipt{}, err
		}

		var receipt domain.FeedbackReceipt
		body := map[string]any{
			"policy_id":     in.PolicyID,
			"citizen_id":    citizen.ID,
			"feedback_text": in.Text,
		}
		if err := gateway.Post(ctx, "/feedback/policy", body, &receipt); err != nil {
			return domain.FeedbackReceipt{}, err
		}
		if receipt.Analysis.Sentiment == "" || len(receipt.Analysis.Themes) == 0 {
			return domain.FeedbackReceipt{}, apperrors.NewTransportError(
				"POST /feedback/policy", errors.New("analysis missing sentiment or themes"))
		}
		return receipt, nil
	}

	return NewSubmissionController(
		"feedback",
		"Submitting feedback...",
		"Failed to submit feedback. Please try again.",
		view,
		domain.FeedbackInput.Validate,
		submit,
		render,
		logger,
	)
}

// NewComplaintController wires the complaint form. The complaint
// location doubles as the district hint during citizen resolution. The
// dashboard is not refreshed automatically on success.
func NewComplaintController(
	gateway ports.Gateway,
	resolver ports.CitizenResolver,
	view ports.FormView,
	render func(domain.ComplaintReceipt) string,
	logger *slog.Logger,
) *ComplaintController {
	submit := func(ctx context.Context, in domain.ComplaintInput) (domain.ComplaintReceipt, error) {
		citizen, err := resolver.Resolve(ctx, in.Name, in.Phone, in.Location)
		if err != nil {
			return domain.ComplaintReceipt{}, err
		}

		var receipt domain.ComplaintReceipt
		body := map[string]any{
			"citizen_id":  citizen.ID,
			"category":    in.Category,
			"location":    in.Location,
			"description": in.Description,
		}
		if err := gateway.Post(ctx, "/feedback/complaint", body, &receipt); err != nil {
			return domain.ComplaintReceipt{}, err
		}
		return receipt, nil
	}

	return NewSubmissionController(
		"complaint",
		"Submitting complaint...",
		"Failed to submit complaint. Please try again.",
		view,
		domain.ComplaintInput.Validate,
		submit,
		render,
		logger,
	)
}

// NewRatingController wires the service rating form. An unset rating is
// rejected locally before any network call; the receipt is assembled
// from the input for the repeated-glyph rendering.
func NewRatingController(
	gateway ports.Gateway,
	resolver ports.CitizenResolver,
	view ports.FormView,
	render func(domain.RatingReceipt) string,
	logger *slog.Logger,
) *RatingController {
	submit := func(ctx context.Context, in domain.RatingInput) (domain.RatingReceipt, error) {
		citizen, err := resolver.Resolve(ctx, in.Name, in.Phone, "")
		if err != nil {
			return domain.RatingReceipt{}, err
		}

		body := map[string]any{
			"citizen_id":       citizen.ID,
			"service_type":     in.ServiceType,
			"service_location": in.Location,
			"rating":           in.Rating,
			"comment":          in.Comment,
		}
		if err := gateway.Post(ctx, "/feedback/rating", body, nil); err != nil {
			return domain.RatingReceipt{}, err
		}
		return domain.RatingReceipt{
			ServiceType: in.ServiceType,
			Location:    in.Location,
			Rating:      in.Rating,
		}, nil
	}

	return NewSubmissionController(
		"rating",
		"Submitting rating...",
		"Failed to submit rating. Please try again.",
		view,
		domain.RatingInput.Validate,
		submit,
		render,
		logger,
	)
}

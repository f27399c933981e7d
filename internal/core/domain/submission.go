package domain

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
)

// SubmissionPhase is the lifecycle state of one submission attempt.
// Succeeded and Failed are terminal for the attempt; the next submit
// starts over from Idle.
type SubmissionPhase int

const (
	PhaseIdle SubmissionPhase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p SubmissionPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// inputValidate is the validator instance for form inputs.
var inputValidate = validator.New(validator.WithRequiredStructEnabled())

// FeedbackInput is the policy feedback form payload.
type FeedbackInput struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	PolicyID string `validate:"required"`
	Text     string `validate:"required"`
}

// Validate rejects incomplete feedback input before any network call.
func (in FeedbackInput) Validate() error {
	if err := inputValidate.Struct(in); err != nil {
		return apperrors.NewValidationError(err, "Name, phone, policy and feedback text are all required.")
	}
	return nil
}

// ComplaintInput is the complaint form payload. Location doubles as the
// district hint during citizen resolution.
type ComplaintInput struct {
	Name        string `validate:"required"`
	Phone       string `validate:"required"`
	Category    string `validate:"required"`
	Location    string `validate:"required"`
	Description string `validate:"required"`
}

// Validate rejects incomplete complaint input before any network call.
func (in ComplaintInput) Validate() error {
	if err := inputValidate.Struct(in); err != nil {
		return apperrors.NewValidationError(err, "Name, phone, category, location and description are all required.")
	}
	return nil
}

// RatingUnset is the sentinel value of an untouched rating selector.
const RatingUnset = 0

// RatingInput is the service rating form payload.
type RatingInput struct {
	Name        string `validate:"required"`
	Phone       string `validate:"required"`
	ServiceType string `validate:"required"`
	Location    string `validate:"required"`
	Rating      int    `validate:"min=1,max=5"`
	Comment     string
}

// Validate rejects incomplete rating input. An unset rating is reported
// distinctly so the form can prompt for a selection rather than show a
// generic failure.
func (in RatingInput) Validate() error {
	if in.Rating == RatingUnset {
		return apperrors.NewValidationError(apperrors.ErrRatingUnset, "Please select a rating before submitting.")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return apperrors.NewValidationError(apperrors.ErrRatingOutOfRange, "Rating must be between 1 and 5.")
	}
	if err := inputValidate.Struct(in); err != nil {
		return apperrors.NewValidationError(err, "Name, phone, service type and location are all required.")
	}
	return nil
}

// FeedbackAnalysis is the sentiment analysis attached to an accepted
// policy feedback submission.
type FeedbackAnalysis struct {
	Sentiment string   `json:"sentiment"`
	Themes    []string `json:"themes"`
}

// FeedbackReceipt is the backend response to a policy feedback
// submission.
type FeedbackReceipt struct {
	Analysis FeedbackAnalysis `json:"analysis"`
}

// ComplaintDetail is the triaged classification of an accepted
// complaint.
type ComplaintDetail struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
}

// ComplaintReceipt is the backend response to a complaint submission.
// The tracking number is backend-issued and opaque.
type ComplaintReceipt struct {
	TrackingNumber string          `json:"tracking_number"`
	Complaint      ComplaintDetail `json:"complaint"`
}

// RatingReceipt echoes an accepted service rating for rendering. It is
// assembled locally from the submitted input.
type RatingReceipt struct {
	ServiceType string
	Location    string
	Rating      int
}

// ComplaintStatusView is the tracking lookup result. Timestamps are
// rendered as received; ResolvedAt is present only for resolved
// complaints.
type ComplaintStatusView struct {
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
	Category       string `json:"category"`
	Priority       string `json:"priority"`
	Location       string `json:"location"`
	CreatedAt      string `json:"created_at"`
	ResolvedAt     string `json:"resolved_at,omitempty"`
}

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/civicpulse/civicpulse-cli/internal/adapters/primary/term"
	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
)

// submitOutcome folds the controller result into the process exit
// status. Validation prompts and form-level failures were already
// rendered by the form view, so the command fails with a short marker
// rather than repeating them.
func submitOutcome(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsValidation(err) {
		return errors.New("submission rejected")
	}
	return errors.New("submission failed")
}

func stageIdentity(view *term.FormView) {
	view.StageField("name", flagName)
	view.StageField("phone", flagPhone)
}

func runSubmitFeedback(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	stageIdentity(a.feedbackView)
	a.feedbackView.StageField("policy", flagPolicyID)
	a.feedbackView.StageField("text", flagText)

	return submitOutcome(a.feedback.Submit(cmd.Context(), domain.FeedbackInput{
		Name:     flagName,
		Phone:    flagPhone,
		PolicyID: flagPolicyID,
		Text:     flagText,
	}))
}

func runSubmitComplaint(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	stageIdentity(a.complaintView)
	a.complaintView.StageField("category", flagCategory)
	a.complaintView.StageField("location", flagLocation)
	a.complaintView.StageField("description", flagDescription)

	return submitOutcome(a.complaint.Submit(cmd.Context(), domain.ComplaintInput{
		Name:        flagName,
		Phone:       flagPhone,
		Category:    flagCategory,
		Location:    flagLocation,
		Description: flagDescription,
	}))
}

func runSubmitRating(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	stageIdentity(a.ratingView)
	a.ratingView.StageField("service", flagServiceType)
	a.ratingView.StageField("location", flagLocation)

	return submitOutcome(a.rating.Submit(cmd.Context(), domain.RatingInput{
		Name:        flagName,
		Phone:       flagPhone,
		ServiceType: flagServiceType,
		Location:    flagLocation,
		Rating:      flagRating,
		Comment:     flagComment,
	}))
}

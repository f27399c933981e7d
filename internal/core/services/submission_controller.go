package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// SubmissionController is the shared 4-state pipeline behind the
// feedback, complaint and rating forms: idle, submitting, then a
// terminal succeeded or failed per attempt. While submitting, the
// triggering control is disabled via the form view; the next
// user-initiated submit starts a fresh attempt from idle.
type SubmissionController[I any, O any] struct {
	name         string
	busyLabel    string
	errorMessage string
	view         ports.FormView
	validate     func(in I) error
	submit       func(ctx context.Context, in I) (O, error)
	render       func(out O) string
	logger       *slog.Logger

	mu    sync.Mutex
	phase domain.SubmissionPhase
}

// NewSubmissionController builds a controller from its three steps:
// local validation, the resolve+submit pipeline, and success
// rendering. errorMessage is the generic user-facing failure text; the
// technical reason only reaches the diagnostic log.
func NewSubmissionController[I any, O any](
	name string,
	busyLabel string,
	errorMessage string,
	view ports.FormView,
	validate func(in I) error,
	submit func(ctx context.Context, in I) (O, error),
	render func(out O) string,
	logger *slog.Logger,
) *SubmissionController[I, O] {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionController[I, O]{
		name:         name,
		busyLabel:    busyLabel,
		errorMessage: errorMessage,
		view:         view,
		validate:     validate,
		submit:       submit,
		render:       render,
		logger:       logger,
	}
}

// Phase returns the current lifecycle state.
func (c *SubmissionController[I, O]) Phase() domain.SubmissionPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Submit runs one submission attempt. Validation failures are rendered
// as prompts without touching the network and leave the controller
// idle. A second Submit while one is in flight is rejected; submissions
// from other forms are unaffected since each form owns its controller.
// The attempt claims the submitting phase in the same critical section
// as the in-flight check, so two overlapping attempts can never both
// pass the guard.
func (c *SubmissionController[I, O]) Submit(ctx context.Context, in I) error {
	c.mu.Lock()
	if c.phase == domain.PhaseSubmitting {
		c.mu.Unlock()
		return apperrors.ErrSubmissionInFlight
	}
	c.phase = domain.PhaseSubmitting
	c.mu.Unlock()

	if c.validate != nil {
		if err := c.validate(in); err != nil {
			c.setPhase(domain.PhaseIdle)
			c.view.ShowValidation(err.Error())
			return err
		}
	}

	c.view.Busy(c.busyLabel)

	out, err := c.submit(ctx, in)
	if err != nil {
		c.setPhase(domain.PhaseFailed)
		c.view.Ready()
		if errors.Is(err, apperrors.ErrSessionExpired) {
			// Handled globally; the form never renders this one.
			return err
		}
		c.logger.Error("submission failed", "form", c.name, "error", err)
		c.view.ShowError(c.errorMessage)
		return err
	}

	c.setPhase(domain.PhaseSucceeded)
	c.view.ShowSuccess(c.render(out))
	c.view.ResetFields()
	c.view.Ready()
	return nil
}

func (c *SubmissionController[I, O]) setPhase(p domain.SubmissionPhase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

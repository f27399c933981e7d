package services

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// TrackingQuery is the single-shot complaint status lookup.
type TrackingQuery struct {
	gateway ports.Gateway
	logger  *slog.Logger
}

var _ ports.TrackingService = (*TrackingQuery)(nil)

// NewTrackingQuery creates a tracking lookup over the gateway.
func NewTrackingQuery(gateway ports.Gateway, logger *slog.Logger) *TrackingQuery {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackingQuery{gateway: gateway, logger: logger}
}

// Lookup normalizes the user-entered tracking number and fetches the
// complaint status. An unknown number surfaces as ErrNotFound, which
// callers render distinctly from transport failures.
func (s *TrackingQuery) Lookup(ctx context.Context, raw string) (domain.ComplaintStatusView, error) {
	number := domain.NormalizeTrackingNumber(raw)
	if number == "" {
		return domain.ComplaintStatusView{}, apperrors.NewValidationError(
			apperrors.ErrTrackingNumberEmpty, "Enter a tracking number.")
	}

	var view domain.ComplaintStatusView
	if err := s.gateway.Get(ctx, "/feedback/complaint/"+url.PathEscape(number), &view); err != nil {
		return domain.ComplaintStatusView{}, err
	}
	if view.TrackingNumber == "" {
		view.TrackingNumber = number
	}
	return view, nil
}

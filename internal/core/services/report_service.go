package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// ReportGenerator triggers backend report generation on behalf of the
// logged-in user. The endpoint is admin-gated, so failures carry a
// privilege hint instead of the generic failure message.
type ReportGenerator struct {
	gateway ports.Gateway
	session ports.Session
	logger  *slog.Logger
}

var _ ports.ReportService = (*ReportGenerator)(nil)

// NewReportGenerator creates a report service over the gateway.
func NewReportGenerator(gateway ports.Gateway, session ports.Session, logger *slog.Logger) *ReportGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportGenerator{gateway: gateway, session: session, logger: logger}
}

// Generate requests a new report attributed to the current user.
func (s *ReportGenerator) Generate(ctx context.Context) error {
	user, ok := s.session.CurrentUser()
	if !ok {
		return apperrors.ErrLoginRequired
	}

	body := map[string]any{"generated_by": user.ID}
	if err := s.gateway.Post(ctx, "/analytics/generate-report", body, nil); err != nil {
		if errors.Is(err, apperrors.ErrSessionExpired) {
			return err
		}
		s.logger.Error("report generation failed", "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrReportForbidden, err)
	}
	return nil
}

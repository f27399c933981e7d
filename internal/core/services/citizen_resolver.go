package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// CitizenService resolves citizen identities with get-or-create
// semantics keyed by phone. Two near-simultaneous resolutions for the
// same unknown phone may both register; the backend is the authority
// on phone uniqueness, not this layer.
type CitizenService struct {
	gateway ports.Gateway
	logger  *slog.Logger
}

var _ ports.CitizenResolver = (*CitizenService)(nil)

// NewCitizenService creates a citizen resolver over the gateway.
func NewCitizenService(gateway ports.Gateway, logger *slog.Logger) *CitizenService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CitizenService{gateway: gateway, logger: logger}
}

// Resolve looks the citizen up by phone and returns the existing record
// unchanged when found; name and district on the request are ignored on
// that path. An unknown phone triggers exactly one register call. Any
// failure other than the not-found lookup signal surfaces as
// ErrCitizenResolutionFailed.
func (s *CitizenService) Resolve(ctx context.Context, name, phone, district string) (domain.Citizen, error) {
	var existing domain.Citizen
	err := s.gateway.Get(ctx, "/citizens/phone/"+url.PathEscape(phone), &existing)
	if err == nil {
		return existing, nil
	}
	if errors.Is(err, apperrors.ErrSessionExpired) {
		return domain.Citizen{}, err
	}
	if !apperrors.IsNotFound(err) {
		return domain.Citizen{}, fmt.Errorf("%w: lookup by phone: %v", apperrors.ErrCitizenResolutionFailed, err)
	}

	s.logger.Debug("citizen not found, registering", "phone", phone)

	body := map[string]any{"name": name, "phone": phone}
	if district != "" {
		body["district"] = district
	}
	var created struct {
		Citizen domain.Citizen `json:"citizen"`
	}
	if err := s.gateway.Post(ctx, "/citizens/register", body, &created); err != nil {
		if errors.Is(err, apperrors.ErrSessionExpired) {
			return domain.Citizen{}, err
		}
		return domain.Citizen{}, fmt.Errorf("%w: register: %v", apperrors.ErrCitizenResolutionFailed, err)
	}
	return created.Citizen, nil
}

package services

import (
	"context"
	"log/slog"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// AuthService drives the login/logout session lifecycle against the
// backend auth endpoint.
type AuthService struct {
	gateway ports.Gateway
	session ports.Session
	logger  *slog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService creates an auth service over the gateway and session
// store.
func NewAuthService(gateway ports.Gateway, session ports.Session, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{gateway: gateway, session: session, logger: logger}
}

// Login authenticates with the national ID number and password, and
// persists the issued token and user record for subsequent commands.
func (s *AuthService) Login(ctx context.Context, nin, password string) (domain.User, error) {
	var resp struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	body := map[string]any{"nin": nin, "password": password}
	if err := s.gateway.Post(ctx, "/auth/login", body, &resp); err != nil {
		return domain.User{}, err
	}
	if err := s.session.Set(resp.Token, resp.User); err != nil {
		return domain.User{}, err
	}
	s.logger.Info("logged in", "user_id", resp.User.ID)
	return resp.User, nil
}

// Logout clears the persisted session.
func (s *AuthService) Logout() error {
	return s.session.Clear()
}

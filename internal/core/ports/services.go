package ports

import (
	"context"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
)

// CitizenResolver resolves a citizen identity with get-or-create
// semantics keyed by phone. The district hint is only used on the
// create path.
type CitizenResolver interface {
	Resolve(ctx context.Context, name, phone, district string) (domain.Citizen, error)
}

// AnalyticsLoader fans out to the metric endpoints and routes each
// payload to its widget. Safe to call repeatedly; a failing metric
// never blocks the others.
type AnalyticsLoader interface {
	LoadAll(ctx context.Context)
}

// TrackingService looks a complaint up by its tracking number.
type TrackingService interface {
	Lookup(ctx context.Context, raw string) (domain.ComplaintStatusView, error)
}

// ReportService triggers backend report generation. The endpoint is
// admin-gated; failures carry a privilege hint.
type ReportService interface {
	Generate(ctx context.Context) error
}

// AuthService drives the login/logout session lifecycle.
type AuthService interface {
	Login(ctx context.Context, nin, password string) (domain.User, error)
	Logout() error
}

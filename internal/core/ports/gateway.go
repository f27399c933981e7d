package ports

import (
	"context"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
)

// Gateway is the typed request boundary to the platform backend. It
// attaches the bearer token when a session holds one, and maps
// non-2xx and transport failures onto the error taxonomy in
// core/errors. No retries happen at this layer.
type Gateway interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

// Session is the process-wide token and current-user store. It is set
// at login, cleared at logout or by the gateway on a 401 response, and
// read by every authenticated request.
type Session interface {
	Token() string
	CurrentUser() (domain.User, bool)
	Set(token string, user domain.User) error
	Clear() error
	Authenticated() bool
}

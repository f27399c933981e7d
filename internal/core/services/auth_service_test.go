package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	apperrors "github.com/civicpulse/civicpulse-cli/internal/core/errors"
	"github.com/civicpulse/civicpulse-cli/internal/core/mocks"
	"github.com/civicpulse/civicpulse-cli/internal/core/services"
	"github.com/civicpulse/civicpulse-cli/internal/session"
)

func newTestSession(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestAuthService_Login(t *testing.T) {
	gateway := mocks.NewMockGateway()
	gateway.On("Post", mock.Anything, "/auth/login", map[string]any{
		"nin":      "CM1234567890",
		"password": "hunter2",
	}, mock.Anything).
		Run(mocks.RespondJSON(`{"token": "issued-token", "user": {"id": 42, "name": "Amina", "district_name": "Kampala"}}`)).
		Return(nil)

	store := newTestSession(t)
	svc := services.NewAuthService(gateway, store, nil)

	user, err := svc.Login(context.Background(), "CM1234567890", "hunter2")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "issued-token", store.Token())
	current, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Amina", current.Name)
}

func TestAuthService_LoginFailureLeavesSessionEmpty(t *testing.T) {
	gateway := mocks.NewMockGateway()
	gateway.On("Post", mock.Anything, "/auth/login", mock.Anything, mock.Anything).
		Return(apperrors.NewHTTPError(401, `{"error": "invalid credentials"}`))

	store := newTestSession(t)
	svc := services.NewAuthService(gateway, store, nil)

	_, err := svc.Login(context.Background(), "CM1234567890", "wrong")

	require.Error(t, err)
	assert.Empty(t, store.Token())
}

func TestAuthService_Logout(t *testing.T) {
	store := newTestSession(t)
	require.NoError(t, store.Set("issued-token", domain.User{ID: 42}))

	svc := services.NewAuthService(mocks.NewMockGateway(), store, nil)
	require.NoError(t, svc.Logout())

	assert.Empty(t, store.Token())
	_, ok := store.CurrentUser()
	assert.False(t, ok)
}

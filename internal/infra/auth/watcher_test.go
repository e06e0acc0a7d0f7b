package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSession captures the states a watcher forwards.
type recordingSession struct {
	usecase.SessionUsecase
	states []entity.AuthState
}

func (r *recordingSession) OnAuthChange(_ context.Context, state entity.AuthState) (*usecase.MergeOutcome, error) {
	r.states = append(r.states, state)

	return nil, nil
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return raw
}

func createTestWatcher(t *testing.T, token string) (*Watcher, *recordingSession) {
	t.Helper()

	session := &recordingSession{}
	watcher := New(Params{
		Tokens:  service.StaticToken(token),
		Session: session,
		Logger:  slog.Default(),
	})
	watcher.now = func() time.Time { return time.Unix(1700000000, 0) }

	return watcher, session
}

func TestWatcher_ValidTokenAuthenticates(t *testing.T) {
	exp := time.Unix(1700003600, 0)
	token := signedToken(t, jwt.MapClaims{"sub": "user-1", "exp": exp.Unix()})
	watcher, session := createTestWatcher(t, token)

	_, err := watcher.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, session.states, 1)
	state := session.states[0]
	assert.True(t, state.Authenticated)
	assert.Equal(t, "user-1", state.Subject)
	assert.True(t, state.ExpiresAt.Equal(exp))
}

func TestWatcher_EmptyTokenIsGuest(t *testing.T) {
	watcher, session := createTestWatcher(t, "")

	_, err := watcher.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, session.states, 1)
	assert.True(t, session.states[0].Guest())
}

func TestWatcher_ExpiredTokenIsGuest(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-1", "exp": int64(1600000000)})
	watcher, session := createTestWatcher(t, token)

	_, err := watcher.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, session.states, 1)
	assert.True(t, session.states[0].Guest())
}

func TestWatcher_MalformedTokenIsGuest(t *testing.T) {
	watcher, session := createTestWatcher(t, "not-a-jwt")

	_, err := watcher.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, session.states, 1)
	assert.True(t, session.states[0].Guest())
}

func TestWatcher_TokenWithoutSubjectIsGuest(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"exp": int64(1700003600)})
	watcher, session := createTestWatcher(t, token)

	_, err := watcher.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, session.states, 1)
	assert.True(t, session.states[0].Guest())
}

func TestWatcher_TokenSourceFailureIsGuest(t *testing.T) {
	session := &recordingSession{}
	watcher := New(Params{
		Tokens: service.TokenSourceFunc(func(context.Context) (string, error) {
			return "", assert.AnError
		}),
		Session: session,
		Logger:  slog.Default(),
	})

	_, err := watcher.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, session.states, 1)
	assert.True(t, session.states[0].Guest())
}

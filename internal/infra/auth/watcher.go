// Package auth derives the session's authentication state from the access
// token and feeds state transitions into the session usecase.
package auth

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

// Params defines the parameters required for the auth watcher.
type Params struct {
	fx.In

	Tokens  service.TokenSource
	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// Watcher observes the token source and forwards authentication transitions
// to the session. Tokens are issued and verified elsewhere; the claims are
// read unverified here purely to learn who the session belongs to, the same
// way a UI shell decides which account name to render. The commerce service
// remains the authority and answers 401 when the token is not actually valid.
type Watcher struct {
	tokens  service.TokenSource
	session usecase.SessionUsecase
	logger  *slog.Logger
	now     func() time.Time
}

// New is the constructor for Watcher.
func New(params Params) *Watcher {
	return &Watcher{
		tokens:  params.Tokens,
		session: params.Session,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// Sync resolves the current token, derives the authentication state and
// applies it to the session. The session edge-gates internally, so calling
// Sync repeatedly with an unchanged token is cheap and safe.
func (w *Watcher) Sync(ctx context.Context) (*usecase.MergeOutcome, error) {
	raw, err := w.tokens.Token(ctx)
	if err != nil {
		w.logger.Warn("token resolution failed, treating session as guest", slog.Any("error", err))
		raw = ""
	}

	state := w.stateFromToken(raw)

	return w.session.OnAuthChange(ctx, state)
}

// stateFromToken maps a raw access token to an AuthState. Anything that does
// not parse as a JWT with an unexpired lifetime counts as a guest.
func (w *Watcher) stateFromToken(raw string) entity.AuthState {
	if raw == "" {
		return entity.AuthState{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		w.logger.Warn("access token is not a parseable JWT", slog.Any("error", err))

		return entity.AuthState{}
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return entity.AuthState{}
	}

	state := entity.AuthState{Authenticated: true, Subject: subject}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if !exp.After(w.now()) {
			return entity.AuthState{}
		}
		state.ExpiresAt = exp.Time
	}

	return state
}

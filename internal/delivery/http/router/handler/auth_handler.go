// Package handler contains the echo handlers of the commerce-stub API.
package handler

import (
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Config *config.Config
}

// AuthHandler issues development access tokens. There is no account database
// behind it: any subject logs in and gets a signed token.
type AuthHandler struct {
	secret string
	ttl    time.Duration
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	secret := ""
	if params.Config.Stub != nil {
		secret = params.Config.Stub.Secret
	}

	return &AuthHandler{secret: secret, ttl: time.Hour}
}

// LoginRequest is the request body for minting a token.
type LoginRequest struct {
	Subject string `json:"subject" validate:"required"`
}

// LoginResponse carries the minted token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// Login mints an HS256 access token for the requested subject.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	expiresAt := time.Now().Add(h.ttl)
	claims := jwt.MapClaims{
		"sub": req.Subject,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		return response.InternalServerError(c, "TOKEN_SIGNING_FAILED", "Could not sign token")
	}

	return c.JSON(http.StatusOK, LoginResponse{AccessToken: token, ExpiresAt: expiresAt.Unix()})
}

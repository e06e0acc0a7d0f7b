package router

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/service"
	"storefront/internal/infra/commerce"
	"storefront/internal/infra/memstore"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// newStubServer boots the stub's echo instance on an httptest listener.
func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{Stub: &config.StubConfig{Port: 8280, Secret: testSecret}}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	r := NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{Config: cfg}),
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{Accounts: memstore.NewAccounts(memstore.DefaultCatalog())}),
		WishlistHandler: handler.NewWishlistHandler(handler.WishlistHandlerParams{Accounts: memstore.NewAccounts(memstore.DefaultCatalog())}),
		AuthMiddleware:  middleware.NewAuthMiddleware(cfg),
		RequestID:       middleware.NewRequestIDMiddleware(slog.Default()),
	})
	r.RegisterRoutes(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server
}

func mintToken(t *testing.T, subject string) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": subject, "exp": time.Now().Add(time.Hour).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return raw
}

func newClientFor(t *testing.T, server *httptest.Server, token string) *commerce.Client {
	t.Helper()

	return commerce.NewClient(server.URL+"/api/v1", server.Client(), service.StaticToken(token), slog.Default())
}

// The commerce client and the stub must agree on every wire shape; this walks
// the whole cart surface through a real HTTP round trip.
func TestStub_CartEndToEnd(t *testing.T) {
	server := newStubServer(t)
	client := newClientFor(t, server, mintToken(t, "user-1"))
	ctx := context.Background()

	cart, err := client.FetchCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	item, err := client.AddItem(ctx, service.AddCartItemInput{ProductID: 1, Quantity: 2, SelectedSize: "42"})
	require.NoError(t, err)
	assert.Positive(t, item.ID)
	assert.Equal(t, 2, item.Quantity)
	assert.InDelta(t, 2*89.90, item.TotalPrice, 0.001)
	assert.Equal(t, "Trail Running Shoes", item.Product.Name)

	// Same identity triple merges server-side.
	merged, err := client.AddItem(ctx, service.AddCartItemInput{ProductID: 1, Quantity: 1, SelectedSize: "42"})
	require.NoError(t, err)
	assert.Equal(t, item.ID, merged.ID)
	assert.Equal(t, 3, merged.Quantity)

	require.NoError(t, client.UpdateItemQuantity(ctx, item.ID, 1))

	cart, err = client.FetchCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Summary.TotalItems)
	assert.InDelta(t, 89.90, cart.Summary.TotalPrice, 0.001)

	require.NoError(t, client.RemoveItem(ctx, item.ID))
	cart, err = client.FetchCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = client.AddItem(ctx, service.AddCartItemInput{ProductID: 2, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, client.ClearCart(ctx))
	cart, err = client.FetchCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestStub_WishlistEndToEnd(t *testing.T) {
	server := newStubServer(t)
	client := newClientFor(t, server, mintToken(t, "user-1"))
	ctx := context.Background()

	require.NoError(t, client.AddToWishlist(ctx, 3))

	err := client.AddToWishlist(ctx, 3)
	require.Error(t, err)
	assert.True(t, service.IsAlreadyExists(err))

	items, err := client.FetchWishlist(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].Product.ID)

	require.NoError(t, client.RemoveFromWishlist(ctx, 3))
	items, err = client.FetchWishlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStub_UnknownProductAnswers404(t *testing.T) {
	server := newStubServer(t)
	client := newClientFor(t, server, mintToken(t, "user-1"))

	_, err := client.AddItem(context.Background(), service.AddCartItemInput{ProductID: 999, Quantity: 1})
	require.Error(t, err)

	var apiErr *service.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "PRODUCT_NOT_FOUND", apiErr.Code)
}

func TestStub_MissingTokenAnswers401(t *testing.T) {
	server := newStubServer(t)
	client := newClientFor(t, server, "")

	_, err := client.FetchCart(context.Background())
	require.ErrorIs(t, err, service.ErrSessionExpired)
}

func TestStub_ExpiredTokenAnswers401(t *testing.T) {
	server := newStubServer(t)

	claims := jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	client := newClientFor(t, server, raw)
	_, err = client.FetchCart(context.Background())
	require.ErrorIs(t, err, service.ErrSessionExpired)
}

func TestStub_LoginMintsUsableToken(t *testing.T) {
	server := newStubServer(t)

	body, err := json.Marshal(handler.LoginRequest{Subject: "user-7"})
	require.NoError(t, err)

	resp, err := server.Client().Post(server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login handler.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.AccessToken)

	client := newClientFor(t, server, login.AccessToken)
	cart, err := client.FetchCart(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

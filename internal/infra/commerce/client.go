// Package commerce implements the HTTP client for the remote commerce API.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const requestIDHeader = "X-Request-ID"

// Params defines the parameters required for the commerce client.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Tokens service.TokenSource
}

// Client talks to the commerce API over HTTP. It implements both the cart and
// wishlist surfaces.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  service.TokenSource
	logger  *slog.Logger
}

var (
	_ service.CartAPI     = (*Client)(nil)
	_ service.WishlistAPI = (*Client)(nil)
)

// New creates a commerce client from configuration.
func New(params Params) *Client {
	return NewClient(params.Config.API.BaseURL, &http.Client{Timeout: params.Config.API.Timeout}, params.Tokens, params.Logger)
}

// NewClient creates a commerce client with an explicit http.Client, which
// tests use to point at an httptest server.
func NewClient(baseURL string, httpClient *http.Client, tokens service.TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		logger:  logger,
	}
}

// fetchCartResponse is the wire shape of GET /cart. An empty cart arrives as
// {"message":"Cart is empty"} with no cart object.
type fetchCartResponse struct {
	Cart *struct {
		CartItems []entity.RemoteCartItem `json:"CartItems"`
	} `json:"cart"`
	Summary *entity.CartSummary `json:"summary"`
	Message string              `json:"message"`
}

// FetchCart returns the account's current cart.
func (c *Client) FetchCart(ctx context.Context) (*entity.RemoteCart, error) {
	var resp fetchCartResponse
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &resp); err != nil {
		return nil, err
	}

	cart := &entity.RemoteCart{Items: []entity.RemoteCartItem{}}
	if resp.Cart != nil {
		cart.Items = resp.Cart.CartItems
	}
	if resp.Summary != nil {
		cart.Summary = *resp.Summary
	}

	return cart, nil
}

// AddItem creates a cart line and returns the server-owned result.
func (c *Client) AddItem(ctx context.Context, input service.AddCartItemInput) (*entity.RemoteCartItem, error) {
	var item entity.RemoteCartItem
	if err := c.do(ctx, http.MethodPost, "/cart/items", input, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdateItemQuantity overwrites the quantity of a cart line.
func (c *Client) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	body := map[string]int{"quantity": quantity}

	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/cart/items/%d", itemID), body, nil)
}

// RemoveItem deletes a cart line.
func (c *Client) RemoveItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/items/%d", itemID), nil, nil)
}

// ClearCart deletes every cart line.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart/items", nil, nil)
}

// FetchWishlist returns the account's wishlist entries.
func (c *Client) FetchWishlist(ctx context.Context) ([]entity.RemoteWishlistItem, error) {
	var resp struct {
		Wishlist []entity.RemoteWishlistItem `json:"wishlist"`
	}
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Wishlist == nil {
		resp.Wishlist = []entity.RemoteWishlistItem{}
	}

	return resp.Wishlist, nil
}

// AddToWishlist adds a product to the wishlist.
func (c *Client) AddToWishlist(ctx context.Context, productID int64) error {
	body := map[string]int64{"productId": productID}

	return c.do(ctx, http.MethodPost, "/wishlist", body, nil)
}

// RemoveFromWishlist removes a product from the wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/wishlist/%d", productID), nil, nil)
}

// ClearWishlist removes every wishlist entry.
func (c *Client) ClearWishlist(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/wishlist", nil, nil)
}

// errorResponse covers the error shapes the service answers with.
type errorResponse struct {
	Message string `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return errors.Wrap(err, "resolve access token")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "read %s %s response", method, path)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.asAPIError(resp.StatusCode, payload)
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return errors.Wrapf(err, "decode %s %s response", method, path)
		}
	}

	return nil
}

// asAPIError maps a failed response to the structured error shape. 401-class
// failures additionally wrap ErrSessionExpired so callers can reset to a
// guest view instead of retrying.
func (c *Client) asAPIError(status int, payload []byte) error {
	apiErr := &service.APIError{StatusCode: status, Message: http.StatusText(status)}

	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err == nil {
		if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
		if parsed.Error != nil {
			apiErr.Code = parsed.Error.Code
		}
	}

	c.logger.Debug("commerce api error",
		slog.Int("status", status),
		slog.String("code", apiErr.Code),
		slog.String("message", apiErr.Message))

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return errors.Wrap(service.ErrSessionExpired, apiErr.Error())
	}

	return apiErr
}

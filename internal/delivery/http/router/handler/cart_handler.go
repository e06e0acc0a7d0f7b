package handler

import (
	"net/http"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/memstore"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	Accounts *memstore.Accounts
}

// CartHandler serves the per-account cart endpoints.
type CartHandler struct {
	accounts *memstore.Accounts
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{accounts: params.Accounts}
}

// cartEnvelope is the response shape of GET /cart when the cart has lines.
type cartEnvelope struct {
	Cart struct {
		CartItems []entity.RemoteCartItem `json:"CartItems"`
	} `json:"cart"`
	Summary entity.CartSummary `json:"summary"`
}

// GetCart returns the account's cart. An empty cart answers with a message
// body instead of an empty collection.
func (h *CartHandler) GetCart(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)

	items, summary := h.accounts.Cart(subject)
	if len(items) == 0 {
		return response.Message(c, http.StatusOK, "Cart is empty")
	}

	envelope := cartEnvelope{Summary: summary}
	envelope.Cart.CartItems = items

	return c.JSON(http.StatusOK, envelope)
}

// AddItem creates or merges a cart line.
func (h *CartHandler) AddItem(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)

	var input service.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.accounts.AddCartItem(subject, input)
	if err != nil {
		if errors.Is(err, memstore.ErrProductNotFound) {
			return response.NotFound(c, "PRODUCT_NOT_FOUND", err.Error())
		}

		return response.InternalServerError(c, "CART_ADD_FAILED", err.Error())
	}

	return c.JSON(http.StatusCreated, item)
}

// UpdateItemQuantityRequest is the request body for PATCH /cart/items/:id.
type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// UpdateItemQuantity overwrites the quantity of a line.
func (h *CartHandler) UpdateItemQuantity(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	var req UpdateItemQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.accounts.UpdateCartItem(subject, itemID, req.Quantity); err != nil {
		return response.NotFound(c, "CART_ITEM_NOT_FOUND", err.Error())
	}

	return response.Message(c, http.StatusOK, "Cart item updated")
}

// RemoveItem deletes a line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item id")
	}

	if err := h.accounts.RemoveCartItem(subject, itemID); err != nil {
		return response.NotFound(c, "CART_ITEM_NOT_FOUND", err.Error())
	}

	return response.Message(c, http.StatusOK, "Cart item removed")
}

// ClearCart deletes every line of the account's cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)
	h.accounts.ClearCart(subject)

	return response.Message(c, http.StatusOK, "Cart cleared")
}

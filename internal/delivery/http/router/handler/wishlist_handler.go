package handler

import (
	"net/http"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/memstore"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WishlistHandlerParams holds dependencies for WishlistHandler, injected by Fx.
type WishlistHandlerParams struct {
	fx.In

	Accounts *memstore.Accounts
}

// WishlistHandler serves the per-account wishlist endpoints.
type WishlistHandler struct {
	accounts *memstore.Accounts
}

// NewWishlistHandler is the constructor for WishlistHandler.
func NewWishlistHandler(params WishlistHandlerParams) *WishlistHandler {
	return &WishlistHandler{accounts: params.Accounts}
}

// GetWishlist returns the account's wishlist entries.
func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)

	return c.JSON(http.StatusOK, map[string][]entity.RemoteWishlistItem{
		"wishlist": h.accounts.Wishlist(subject),
	})
}

// AddWishlistRequest is the request body for POST /wishlist.
type AddWishlistRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// AddItem adds a product to the wishlist. Duplicates answer 409, which the
// client reclassifies as success.
func (h *WishlistHandler) AddItem(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)

	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.accounts.AddWishlistItem(subject, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, memstore.ErrDuplicateWishlist):
			return response.Conflict(c, "ALREADY_EXISTS", "Product already exists in wishlist")
		case errors.Is(err, memstore.ErrProductNotFound):
			return response.NotFound(c, "PRODUCT_NOT_FOUND", err.Error())
		default:
			return response.InternalServerError(c, "WISHLIST_ADD_FAILED", err.Error())
		}
	}

	return c.JSON(http.StatusCreated, item)
}

// RemoveItem removes a product from the wishlist.
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	h.accounts.RemoveWishlistItem(subject, productID)

	return response.Message(c, http.StatusOK, "Wishlist item removed")
}

// ClearWishlist removes every wishlist entry.
func (h *WishlistHandler) ClearWishlist(c echo.Context) error {
	subject, _ := deliverycontext.GetSubject(c)
	h.accounts.ClearWishlist(subject)

	return response.Message(c, http.StatusOK, "Wishlist cleared")
}

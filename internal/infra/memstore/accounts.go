// Package memstore keeps per-account cart and wishlist state in memory. It
// backs the commerce-stub server; nothing survives a restart.
package memstore

import (
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

var (
	// ErrProductNotFound is returned when the referenced product is not in
	// the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrLineNotFound is returned when the referenced cart line does not
	// exist for the account.
	ErrLineNotFound = errors.New("cart item not found")

	// ErrDuplicateWishlist is returned when the product is already on the
	// account's wishlist.
	ErrDuplicateWishlist = errors.New("product already exists in wishlist")
)

type account struct {
	cart     []entity.RemoteCartItem
	wishlist []entity.RemoteWishlistItem
}

// Accounts is the in-memory state of every known account, keyed by the token
// subject.
type Accounts struct {
	mu       sync.Mutex
	accounts map[string]*account
	catalog  map[int64]entity.Product
	nextID   int64
}

// NewAccounts creates an empty account store over the given catalog.
func NewAccounts(catalog []entity.Product) *Accounts {
	products := make(map[int64]entity.Product, len(catalog))
	for _, p := range catalog {
		products[p.ID] = p
	}

	return &Accounts{
		accounts: map[string]*account{},
		catalog:  products,
		nextID:   1,
	}
}

// DefaultCatalog returns the product fixtures the stub ships with.
func DefaultCatalog() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Trail Running Shoes", Price: 89.90, ImageURL: "/img/products/1.jpg"},
		{ID: 2, Name: "Merino Wool Socks", Price: 14.50, ImageURL: "/img/products/2.jpg"},
		{ID: 3, Name: "Waterproof Shell Jacket", Price: 179.00, ImageURL: "/img/products/3.jpg"},
		{ID: 4, Name: "Climbing Chalk Bag", Price: 22.00, ImageURL: "/img/products/4.jpg"},
		{ID: 5, Name: "Insulated Water Bottle", Price: 31.95, ImageURL: "/img/products/5.jpg"},
		{ID: 6, Name: "Headlamp 400lm", Price: 44.90, ImageURL: "/img/products/6.jpg"},
		{ID: 7, Name: "Down Sleeping Bag", Price: 249.00, ImageURL: "/img/products/7.jpg"},
		{ID: 8, Name: "Folding Trekking Poles", Price: 64.00, ImageURL: "/img/products/8.jpg"},
		{ID: 9, Name: "Dry Bag 20L", Price: 18.90, ImageURL: "/img/products/9.jpg"},
	}
}

// Product looks up a catalog entry.
func (a *Accounts) Product(id int64) (entity.Product, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.catalog[id]

	return p, ok
}

// Cart returns a snapshot of the account's cart lines and their summary.
func (a *Accounts) Cart(subject string) ([]entity.RemoteCartItem, entity.CartSummary) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc := a.accountLocked(subject)
	items := make([]entity.RemoteCartItem, len(acc.cart))
	copy(items, acc.cart)

	return items, summarize(items)
}

// AddCartItem adds a line to the account's cart. A line with the same
// identity triple is merged server-side by summing quantities.
func (a *Accounts) AddCartItem(subject string, input service.AddCartItemInput) (entity.RemoteCartItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	product, ok := a.catalog[input.ProductID]
	if !ok {
		return entity.RemoteCartItem{}, errors.Wrapf(ErrProductNotFound, "product %d", input.ProductID)
	}

	acc := a.accountLocked(subject)
	key := entity.CartLineKey{
		ProductID:     input.ProductID,
		SelectedSize:  input.SelectedSize,
		SelectedColor: input.SelectedColor,
	}
	for i := range acc.cart {
		if acc.cart[i].Key() != key {
			continue
		}
		acc.cart[i].Quantity += input.Quantity
		acc.cart[i].TotalPrice = product.Price * float64(acc.cart[i].Quantity)

		return acc.cart[i], nil
	}

	item := entity.RemoteCartItem{
		ID:            a.nextID,
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		TotalPrice:    product.Price * float64(input.Quantity),
		SelectedSize:  input.SelectedSize,
		SelectedColor: input.SelectedColor,
		Product:       product,
	}
	a.nextID++
	acc.cart = append(acc.cart, item)

	return item, nil
}

// UpdateCartItem overwrites the quantity of a line.
func (a *Accounts) UpdateCartItem(subject string, itemID int64, quantity int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc := a.accountLocked(subject)
	for i := range acc.cart {
		if acc.cart[i].ID != itemID {
			continue
		}
		unit := acc.cart[i].UnitPrice()
		acc.cart[i].Quantity = quantity
		acc.cart[i].TotalPrice = unit * float64(quantity)

		return nil
	}

	return errors.Wrapf(ErrLineNotFound, "item %d", itemID)
}

// RemoveCartItem deletes a line by its ID.
func (a *Accounts) RemoveCartItem(subject string, itemID int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc := a.accountLocked(subject)
	for i := range acc.cart {
		if acc.cart[i].ID != itemID {
			continue
		}
		acc.cart = append(acc.cart[:i], acc.cart[i+1:]...)

		return nil
	}

	return errors.Wrapf(ErrLineNotFound, "item %d", itemID)
}

// ClearCart removes every line of the account's cart.
func (a *Accounts) ClearCart(subject string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.accountLocked(subject).cart = nil
}

// Wishlist returns a snapshot of the account's wishlist entries.
func (a *Accounts) Wishlist(subject string) []entity.RemoteWishlistItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc := a.accountLocked(subject)
	items := make([]entity.RemoteWishlistItem, len(acc.wishlist))
	copy(items, acc.wishlist)

	return items
}

// AddWishlistItem adds a product to the wishlist. Duplicates are rejected
// with ErrDuplicateWishlist rather than ignored.
func (a *Accounts) AddWishlistItem(subject string, productID int64) (entity.RemoteWishlistItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	product, ok := a.catalog[productID]
	if !ok {
		return entity.RemoteWishlistItem{}, errors.Wrapf(ErrProductNotFound, "product %d", productID)
	}

	acc := a.accountLocked(subject)
	for _, item := range acc.wishlist {
		if item.Product.ID == productID {
			return entity.RemoteWishlistItem{}, errors.Wrapf(ErrDuplicateWishlist, "product %d", productID)
		}
	}

	item := entity.RemoteWishlistItem{ID: a.nextID, Product: product}
	a.nextID++
	acc.wishlist = append(acc.wishlist, item)

	return item, nil
}

// RemoveWishlistItem removes a product from the wishlist. Removing an absent
// product is a no-op.
func (a *Accounts) RemoveWishlistItem(subject string, productID int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc := a.accountLocked(subject)
	for i := range acc.wishlist {
		if acc.wishlist[i].Product.ID != productID {
			continue
		}
		acc.wishlist = append(acc.wishlist[:i], acc.wishlist[i+1:]...)

		return
	}
}

// ClearWishlist removes every wishlist entry of the account.
func (a *Accounts) ClearWishlist(subject string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.accountLocked(subject).wishlist = nil
}

func (a *Accounts) accountLocked(subject string) *account {
	acc, ok := a.accounts[subject]
	if !ok {
		acc = &account{}
		a.accounts[subject] = acc
	}

	return acc
}

func summarize(items []entity.RemoteCartItem) entity.CartSummary {
	summary := entity.CartSummary{}
	for _, item := range items {
		summary.TotalItems += item.Quantity
		summary.TotalPrice += item.TotalPrice
	}

	return summary
}

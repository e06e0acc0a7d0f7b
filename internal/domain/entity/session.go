package entity

import "time"

// AuthState describes the authentication side of a browsing session at a
// point in time. It is derived from the access token by the auth watcher;
// this package never issues or verifies tokens.
type AuthState struct {
	Authenticated bool
	Subject       string    // token subject, empty for guests
	ExpiresAt     time.Time // zero when unauthenticated or the token has no expiry
}

// Guest reports whether the session has no authenticated identity.
func (s AuthState) Guest() bool {
	return !s.Authenticated
}

// Resource names one of the two client-persisted collections.
type Resource string

// The two fixed resource namespaces of the local store.
const (
	ResourceCart     Resource = "cart"
	ResourceWishlist Resource = "wishlist"
)

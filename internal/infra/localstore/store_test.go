package localstore

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store, err := NewWithBucket(bucket, "test-key", slog.Default())
	require.NoError(t, err)

	return store
}

func TestStore_CartRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	items := []entity.LocalCartItem{
		{ProductID: 5, Quantity: 2, SelectedSize: "M", SelectedColor: "red", Timestamp: 1700000000000},
		{ProductID: 9, Quantity: 1, Timestamp: 1700000000500},
	}

	require.NoError(t, store.SaveCartItems(ctx, items))
	assert.Equal(t, items, store.ReadCartItems(ctx))
}

func TestStore_EmptyArrayRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCartItems(ctx, []entity.LocalCartItem{}))
	assert.Empty(t, store.ReadCartItems(ctx))

	require.NoError(t, store.SaveWishlistItems(ctx, []entity.LocalWishlistItem{}))
	assert.Empty(t, store.ReadWishlistItems(ctx))
}

func TestStore_ReadMissingEntryReturnsEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.Empty(t, store.ReadCartItems(ctx))
	assert.Empty(t, store.ReadWishlistItems(ctx))
}

func TestStore_ReadCorruptPayloadDegradesToEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Not valid base64url, so the codec rejects it.
	require.NoError(t, store.bucket.WriteAll(ctx, cartEntry, []byte("%%%not-encoded%%%"), nil))
	assert.Empty(t, store.ReadCartItems(ctx))

	// Valid encoding of something that is not a JSON array.
	require.NoError(t, store.bucket.WriteAll(ctx, cartEntry, []byte(store.codec.Encode([]byte("not json"))), nil))
	assert.Empty(t, store.ReadCartItems(ctx))
}

func TestStore_PersistedPayloadIsNotPlaintext(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCartItems(ctx, []entity.LocalCartItem{{ProductID: 5, Quantity: 2}}))

	raw, err := store.bucket.ReadAll(ctx, cartEntry)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "productId")
	assert.NotContains(t, string(raw), "quantity")
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveWishlistItems(ctx, []entity.LocalWishlistItem{{ProductID: 3, Timestamp: 1}}))
	require.NoError(t, store.ClearWishlist(ctx))
	require.NoError(t, store.ClearWishlist(ctx)) // absent entry is not an error
	assert.Empty(t, store.ReadWishlistItems(ctx))
}

func TestCodec_RoundTrip(t *testing.T) {
	c, err := newCodec("key")
	require.NoError(t, err)

	for _, plain := range []string{"", "a", `[{"productId":5}]`, "\x00\xff\x10"} {
		decoded, err := c.Decode(c.Encode([]byte(plain)))
		require.NoError(t, err)
		assert.Equal(t, []byte(plain), decoded)
	}
}

func TestCodec_EmptyKeyRejected(t *testing.T) {
	_, err := newCodec("")
	assert.Error(t, err)
}

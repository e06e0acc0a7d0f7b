package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	"gocloud.dev/gcerrors"
)

// The two fixed keys under which collections are persisted.
const (
	cartEntry     = string(entity.ResourceCart)
	wishlistEntry = string(entity.ResourceWishlist)
)

// Params defines the parameters required for the local store.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Store persists encoded guest collections in a blob bucket. Production uses
// a fileblob bucket under the configured directory; tests substitute memblob
// through NewWithBucket.
type Store struct {
	bucket *blob.Bucket
	codec  *codec
	logger *slog.Logger
}

var _ repository.GuestStore = (*Store)(nil)

// New opens a file-backed store rooted at the configured path.
func New(ctx context.Context, params Params) (*Store, error) {
	if err := os.MkdirAll(params.Config.LocalStore.Path, 0o755); err != nil {
		return nil, errors.Wrap(err, "create local store directory")
	}

	bucket, err := blob.OpenBucket(ctx, "file://"+params.Config.LocalStore.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open local store bucket")
	}

	return NewWithBucket(bucket, params.Config.LocalStore.ObfuscationKey, params.Logger)
}

// NewWithBucket builds a store over an already-open bucket.
func NewWithBucket(bucket *blob.Bucket, obfuscationKey string, logger *slog.Logger) (*Store, error) {
	c, err := newCodec(obfuscationKey)
	if err != nil {
		return nil, err
	}

	return &Store{bucket: bucket, codec: c, logger: logger}, nil
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// SaveCartItems persists the full guest cart collection.
func (s *Store) SaveCartItems(ctx context.Context, items []entity.LocalCartItem) error {
	return save(ctx, s, cartEntry, items)
}

// ReadCartItems returns the persisted guest cart, or an empty slice when the
// entry is absent, undecodable, or storage is unavailable.
func (s *Store) ReadCartItems(ctx context.Context) []entity.LocalCartItem {
	return read[entity.LocalCartItem](ctx, s, cartEntry)
}

// ClearCart removes the persisted cart entry. Idempotent.
func (s *Store) ClearCart(ctx context.Context) error {
	return clear(ctx, s, cartEntry)
}

// SaveWishlistItems persists the full guest wishlist collection.
func (s *Store) SaveWishlistItems(ctx context.Context, items []entity.LocalWishlistItem) error {
	return save(ctx, s, wishlistEntry, items)
}

// ReadWishlistItems returns the persisted guest wishlist, or an empty slice.
func (s *Store) ReadWishlistItems(ctx context.Context) []entity.LocalWishlistItem {
	return read[entity.LocalWishlistItem](ctx, s, wishlistEntry)
}

// ClearWishlist removes the persisted wishlist entry. Idempotent.
func (s *Store) ClearWishlist(ctx context.Context) error {
	return clear(ctx, s, wishlistEntry)
}

func save[T any](ctx context.Context, s *Store, entry string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return errors.Wrapf(err, "marshal %s items", entry)
	}

	if err := s.bucket.WriteAll(ctx, entry, []byte(s.codec.Encode(payload)), nil); err != nil {
		return errors.Wrapf(err, "persist %s items", entry)
	}

	return nil
}

func read[T any](ctx context.Context, s *Store, entry string) []T {
	encoded, err := s.bucket.ReadAll(ctx, entry)
	if err != nil {
		// Absence is the expected empty state; anything else degrades the
		// same way but is worth a log line.
		if gcerrors.Code(err) != gcerrors.NotFound {
			s.logger.Debug("local store read failed", slog.String("entry", entry), slog.Any("error", err))
		}

		return []T{}
	}

	payload, err := s.codec.Decode(string(encoded))
	if err != nil {
		s.logger.Debug("local store entry undecodable", slog.String("entry", entry), slog.Any("error", err))

		return []T{}
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		s.logger.Debug("local store entry corrupt", slog.String("entry", entry), slog.Any("error", err))

		return []T{}
	}
	if items == nil {
		items = []T{}
	}

	return items
}

func clear(ctx context.Context, s *Store, entry string) error {
	if err := s.bucket.Delete(ctx, entry); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "clear %s entry", entry)
	}

	return nil
}

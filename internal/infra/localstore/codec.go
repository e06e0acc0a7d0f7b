// Package localstore implements the encoded per-device store for guest cart
// and wishlist state.
package localstore

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

// codec applies a reversible byte transform before persisting. The transform
// is obfuscation, not encryption: it keeps PII-shaped content out of
// plaintext device storage and makes no attempt to resist tampering.
type codec struct {
	key []byte
}

func newCodec(key string) (*codec, error) {
	if len(key) == 0 {
		return nil, errors.New("obfuscation key must not be empty")
	}

	return &codec{key: []byte(key)}, nil
}

// Encode transforms plaintext into the persisted text representation.
func (c *codec) Encode(plain []byte) string {
	return base64.RawURLEncoding.EncodeToString(c.xor(plain))
}

// Decode reverses Encode. It fails on malformed base64 input; callers degrade
// to an empty collection on failure.
func (c *codec) Decode(encoded string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "decode stored payload")
	}

	return c.xor(raw), nil
}

// xor is its own inverse, so the same pass encodes and decodes.
func (c *codec) xor(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ c.key[i%len(c.key)]
	}

	return out
}

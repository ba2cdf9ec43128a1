package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HandleSize is the byte length of a ciphertext handle.
const HandleSize = 32

// Handle is an opaque, fixed-width reference to an engine ciphertext.
// It is an immutable value: accumulation never mutates a handle, it mints a
// new one. The zero value is the null sentinel meaning "no value yet" and is
// never produced by the engine (engine handles are SHA-256 digests of
// non-empty ciphertexts).
type Handle [HandleSize]byte

// NullHandle is the sentinel for accounts that have not accumulated yet.
var NullHandle Handle

// HandleOf derives the handle for an internal ciphertext.
func HandleOf(ciphertext []byte) Handle {
	return Handle(sha256.Sum256(ciphertext))
}

// IsNull reports whether h is the null sentinel.
func (h Handle) IsNull() bool {
	return h == NullHandle
}

// String returns the hex form used on the wire and in storage.
func (h Handle) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHandle decodes the hex wire form.
func ParseHandle(s string) (Handle, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return NullHandle, fmt.Errorf("decoding handle: %w", err)
	}
	if len(raw) != HandleSize {
		return NullHandle, fmt.Errorf("handle must be %d bytes, got %d", HandleSize, len(raw))
	}
	var h Handle
	copy(h[:], raw)
	return h, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account holds one identity's encrypted running total.
// TotalCiphertext is the opaque engine representation behind TotalHandle; it
// is stored so the next accumulation can seed the homomorphic addition.
// HasTotal is monotonic: once true it is never reset.
type Account struct {
	OwnerID         uuid.UUID `json:"owner_id"`
	TotalHandle     Handle    `json:"total_handle"`
	TotalCiphertext []byte    `json:"-"` // engine-internal, never exposed
	HasTotal        bool      `json:"has_total"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CurrentHandle returns the account's handle for external reads: the null
// sentinel until the first contribution has been accumulated.
func (a *Account) CurrentHandle() Handle {
	if a == nil || !a.HasTotal {
		return NullHandle
	}
	return a.TotalHandle
}

// StoredHandle is one row of the append-only handle history. Handles are
// immutable: once minted, the mapping to its ciphertext and owner never
// changes, so grants on superseded handles stay honorable forever.
type StoredHandle struct {
	Handle     Handle    `json:"handle"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Ciphertext []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// GranteeKind classifies who a decrypt-right is granted to.
type GranteeKind string

const (
	// GranteeSystem marks the processing authority's own right to reuse a
	// ciphertext in a future accumulation.
	GranteeSystem GranteeKind = "SYSTEM"
	// GranteeIdentity grants a specific identity decryption of a handle.
	GranteeIdentity GranteeKind = "IDENTITY"
	// GranteePublic marks a handle as decryptable by anyone. Terminal: there
	// is no un-publish.
	GranteePublic GranteeKind = "PUBLIC"
)

// Grant is one row of the append-only capability relation
// (handle, grantee) -> can-decrypt. Grants are bound to a specific handle
// value; when an account's total advances to a new handle, grants on the old
// handle keep applying to the old handle only. Grants are never deleted.
type Grant struct {
	Handle    Handle      `json:"handle"`
	Kind      GranteeKind `json:"kind"`
	GranteeID uuid.UUID   `json:"grantee_id,omitempty"` // uuid.Nil for SYSTEM and PUBLIC
	CreatedAt time.Time   `json:"created_at"`
}

// SystemGrant builds the processing-authority grant on a handle.
func SystemGrant(h Handle) *Grant {
	return &Grant{Handle: h, Kind: GranteeSystem, CreatedAt: time.Now().UTC()}
}

// OwnerGrant builds the owning identity's grant on a handle.
func OwnerGrant(h Handle, owner uuid.UUID) *Grant {
	return &Grant{Handle: h, Kind: GranteeIdentity, GranteeID: owner, CreatedAt: time.Now().UTC()}
}

// ViewerGrant builds a shared viewer's grant on a handle.
func ViewerGrant(h Handle, viewer uuid.UUID) *Grant {
	return &Grant{Handle: h, Kind: GranteeIdentity, GranteeID: viewer, CreatedAt: time.Now().UTC()}
}

// PublicGrant marks a handle publicly decryptable.
func PublicGrant(h Handle) *Grant {
	return &Grant{Handle: h, Kind: GranteePublic, CreatedAt: time.Now().UTC()}
}

// Covers reports whether this grant lets the given identity decrypt its
// handle.
func (g *Grant) Covers(identity uuid.UUID) bool {
	switch g.Kind {
	case GranteePublic:
		return true
	case GranteeIdentity:
		return g.GranteeID == identity
	default:
		return false
	}
}

package ports

import (
	"context"
	"time"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EncryptionEngine is the narrow contract through which the core talks to
// the homomorphic encryption machinery. Ciphertext byte slices are opaque
// engine representations: the core never inspects them, only stores and
// forwards them. Implementations must treat each call as all-or-nothing.
type EncryptionEngine interface {
	// VerifyAndDecode validates the integrity proof binding an externally
	// produced ciphertext to the submitting identity and converts it to the
	// internal representation. Any verification failure aborts the whole
	// submission.
	VerifyAndDecode(external []byte, proof string, submitter uuid.UUID) ([]byte, error)
	// EncryptZero produces the encrypted representation of 0, used to seed
	// an account's first accumulation.
	EncryptZero() ([]byte, error)
	// Add performs homomorphic addition. Not invertible by the core.
	Add(a, b []byte) ([]byte, error)
	// ToExternalHandle derives the stable opaque export form of a
	// ciphertext.
	ToExternalHandle(ct []byte) domain.Handle
}

// DecryptionOracle is the trapdoor side of an engine. Only development and
// test engines implement it in-process; production deployments run the
// decryption oracle off-system.
type DecryptionOracle interface {
	Decrypt(ct []byte) (uint64, error)
}

// HandleCache is a best-effort read cache of identity -> current total
// handle.
type HandleCache interface {
	// Get returns the cached handle and whether it was present.
	Get(ctx context.Context, owner uuid.UUID) (domain.Handle, bool, error)
	Set(ctx context.Context, owner uuid.UUID, h domain.Handle, ttl time.Duration) error
}

// ReplayGuard tracks ciphertext/proof digests to reject exact
// resubmissions.
type ReplayGuard interface {
	// CheckAndSet atomically records a digest for the given owner. Returns
	// true if the digest is new, false if it was already seen.
	CheckAndSet(ctx context.Context, owner string, digest string, ttl time.Duration) (bool, error)
	// Release forgets a digest recorded by CheckAndSet. Called when the
	// submission that recorded it fails, so a retry of the same pair is not
	// mistaken for a replay.
	Release(ctx context.Context, owner string, digest string) error
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(identity uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Identity uuid.UUID
}

// --- Service Ports (Business Logic) ---

// AccumulatorService folds encrypted contributions into per-identity
// running totals.
type AccumulatorService interface {
	SubmitContribution(ctx context.Context, req SubmitRequest) (*SubmitResult, error)
	// GetTotalHandle never fails on absent accounts: it returns the null
	// sentinel instead. Decryptability of the returned handle is governed
	// entirely by the capability controller.
	GetTotalHandle(ctx context.Context, owner uuid.UUID) (domain.Handle, error)
}

// SubmitRequest holds validated input for a contribution.
type SubmitRequest struct {
	Submitter  uuid.UUID
	Ciphertext []byte // externally-encoded engine ciphertext
	Proof      string
	ClientIP   string
}

// SubmitResult is the outcome of an accepted contribution.
type SubmitResult struct {
	OwnerID            uuid.UUID
	ContributionHandle domain.Handle
	NewTotalHandle     domain.Handle
}

// CapabilityService gates who may obtain plaintext for a handle. The grant
// relation is append-only: rights are granted, never revoked.
type CapabilityService interface {
	// GrantInitialRights issues the mandatory system and owner grants on a
	// freshly minted handle, inside the caller's transaction. Idempotent.
	GrantInitialRights(ctx context.Context, tx pgx.Tx, handle domain.Handle, owner uuid.UUID) error
	// ShareTotal grants viewer decrypt-rights on owner's current handle.
	// Not retroactive: later accumulations need a fresh share.
	ShareTotal(ctx context.Context, owner, viewer uuid.UUID) (domain.Handle, error)
	// MakeTotalPublic irreversibly marks the owner's current handle as
	// decryptable by anyone. Only that handle: later totals are private
	// again by default.
	MakeTotalPublic(ctx context.Context, owner uuid.UUID) (domain.Handle, error)
	// CanDecrypt reports whether any grant covers (handle, caller).
	CanDecrypt(ctx context.Context, handle domain.Handle, caller uuid.UUID) (bool, error)
	// DecryptHandle resolves a handle and decrypts it through the engine's
	// oracle, enforcing the grant relation.
	DecryptHandle(ctx context.Context, caller uuid.UUID, handle domain.Handle) (uint64, error)
}

// AuthService defines registration and login for participants.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.Participant, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// ReportingService exposes the read-only audit surface.
type ReportingService interface {
	ListEvents(ctx context.Context, owner uuid.UUID, limit int) ([]domain.AuditEvent, error)
	ListGrants(ctx context.Context, handle domain.Handle) ([]domain.Grant, error)
}

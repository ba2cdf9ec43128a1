package ports

import (
	"context"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence for per-identity accumulator state.
// Methods accepting pgx.Tx run inside transaction blocks; GetByOwnerForUpdate
// takes the row lock that serializes all mutations of one account.
type AccountRepository interface {
	GetByOwner(ctx context.Context, owner uuid.UUID) (*domain.Account, error)
	// Ensure materializes an empty account row for the owner if none exists.
	// SELECT ... FOR UPDATE locks nothing when the row is absent, so writers
	// must call this before GetByOwnerForUpdate or two first contributions
	// can race past each other. Idempotent.
	Ensure(ctx context.Context, tx pgx.Tx, owner uuid.UUID) error
	GetByOwnerForUpdate(ctx context.Context, tx pgx.Tx, owner uuid.UUID) (*domain.Account, error)
	// Save upserts the account row. has_total only ever transitions to true.
	Save(ctx context.Context, tx pgx.Tx, acct *domain.Account) error
}

// HandleRepository defines the append-only handle history. Insert is
// idempotent: re-inserting an existing handle is a no-op.
type HandleRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, h *domain.StoredHandle) error
	Get(ctx context.Context, handle domain.Handle) (*domain.StoredHandle, error)
}

// GrantRepository defines the append-only capability relation. Create is
// idempotent (set semantics); there is no delete.
type GrantRepository interface {
	Create(ctx context.Context, tx pgx.Tx, g *domain.Grant) error
	Exists(ctx context.Context, handle domain.Handle, kind domain.GranteeKind, granteeID uuid.UUID) (bool, error)
	ListByHandle(ctx context.Context, handle domain.Handle) ([]domain.Grant, error)
}

// EventRepository defines the append-only audit event log.
type EventRepository interface {
	Append(ctx context.Context, tx pgx.Tx, e *domain.AuditEvent) error
	ListByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]domain.AuditEvent, error)
}

// ParticipantRepository defines persistence for registered principals.
type ParticipantRepository interface {
	Create(ctx context.Context, p *domain.Participant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	GetByUsername(ctx context.Context, username string) (*domain.Participant, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

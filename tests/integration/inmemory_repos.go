package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Participant Repo ---

type inMemoryParticipantRepo struct {
	mu           sync.RWMutex
	participants map[uuid.UUID]*domain.Participant
}

func newInMemoryParticipantRepo() *inMemoryParticipantRepo {
	return &inMemoryParticipantRepo{participants: make(map[uuid.UUID]*domain.Participant)}
}

func (r *inMemoryParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.participants {
		if existing.Username == p.Username {
			return fmt.Errorf("username already exists")
		}
	}
	r.participants[p.ID] = p
	return nil
}

func (r *inMemoryParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.participants[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *inMemoryParticipantRepo) GetByUsername(ctx context.Context, username string) (*domain.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.participants {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *inMemoryAccountRepo) GetByOwner(ctx context.Context, owner uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[owner]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) Ensure(ctx context.Context, tx pgx.Tx, owner uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[owner]; !ok {
		now := time.Now().UTC()
		r.accounts[owner] = &domain.Account{OwnerID: owner, CreatedAt: now, UpdatedAt: now}
	}
	return nil
}

func (r *inMemoryAccountRepo) GetByOwnerForUpdate(ctx context.Context, tx pgx.Tx, owner uuid.UUID) (*domain.Account, error) {
	return r.GetByOwner(ctx, owner)
}

func (r *inMemoryAccountRepo) Save(ctx context.Context, tx pgx.Tx, acct *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *acct
	r.accounts[acct.OwnerID] = &cp
	return nil
}

// --- In-Memory Handle Repo ---

type inMemoryHandleRepo struct {
	mu      sync.RWMutex
	handles map[domain.Handle]*domain.StoredHandle
}

func newInMemoryHandleRepo() *inMemoryHandleRepo {
	return &inMemoryHandleRepo{handles: make(map[domain.Handle]*domain.StoredHandle)}
}

func (r *inMemoryHandleRepo) Insert(ctx context.Context, tx pgx.Tx, h *domain.StoredHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handles[h.Handle]; ok {
		return nil
	}
	cp := *h
	r.handles[h.Handle] = &cp
	return nil
}

func (r *inMemoryHandleRepo) Get(ctx context.Context, handle domain.Handle) (*domain.StoredHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handles[handle]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

// --- In-Memory Grant Repo ---

type grantKey struct {
	handle  domain.Handle
	kind    domain.GranteeKind
	grantee uuid.UUID
}

type inMemoryGrantRepo struct {
	mu      sync.RWMutex
	grants  map[grantKey]*domain.Grant
	ordered []grantKey
}

func newInMemoryGrantRepo() *inMemoryGrantRepo {
	return &inMemoryGrantRepo{grants: make(map[grantKey]*domain.Grant)}
}

func (r *inMemoryGrantRepo) Create(ctx context.Context, tx pgx.Tx, g *domain.Grant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := grantKey{handle: g.Handle, kind: g.Kind, grantee: g.GranteeID}
	if _, ok := r.grants[key]; ok {
		return nil
	}
	cp := *g
	r.grants[key] = &cp
	r.ordered = append(r.ordered, key)
	return nil
}

func (r *inMemoryGrantRepo) Exists(ctx context.Context, handle domain.Handle, kind domain.GranteeKind, granteeID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.grants[grantKey{handle: handle, kind: kind, grantee: granteeID}]
	return ok, nil
}

func (r *inMemoryGrantRepo) ListByHandle(ctx context.Context, handle domain.Handle) ([]domain.Grant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Grant
	for _, key := range r.ordered {
		if key.handle == handle {
			result = append(result, *r.grants[key])
		}
	}
	return result, nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []domain.AuditEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *e)
	return nil
}

func (r *inMemoryEventRepo) ListByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]domain.AuditEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.AuditEvent
	for i := len(r.events) - 1; i >= 0 && len(result) < limit; i-- {
		if r.events[i].OwnerID == owner {
			result = append(result, r.events[i])
		}
	}
	return result, nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes transactions through a single mutex, which
// stands in for the per-account row lock the postgres layer takes.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockTx{mu: &t.mu}, nil
}

// lockTx holds the transactor's lock until Commit or Rollback.
type lockTx struct {
	noopTx
	mu   *sync.Mutex
	once sync.Once
}

func (t *lockTx) Commit(ctx context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

func (t *lockTx) Rollback(ctx context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

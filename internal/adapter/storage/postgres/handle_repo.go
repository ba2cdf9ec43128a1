package postgres

import (
	"context"
	"errors"
	"fmt"

	"confidential-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// HandleRepo implements ports.HandleRepository over the append-only handle
// history. Rows are never updated or deleted: a grant issued on a handle
// must stay resolvable after the owner's total has moved past it.
type HandleRepo struct {
	pool Pool
}

// NewHandleRepo creates a new HandleRepo.
func NewHandleRepo(pool Pool) *HandleRepo {
	return &HandleRepo{pool: pool}
}

// Insert records a handle within a transaction. Re-inserting an existing
// handle is a no-op: the mapping handle -> ciphertext is content-addressed
// and cannot conflict with itself.
func (r *HandleRepo) Insert(ctx context.Context, tx pgx.Tx, h *domain.StoredHandle) error {
	query := `INSERT INTO handles (handle, owner_id, ciphertext, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (handle) DO NOTHING`

	_, err := tx.Exec(ctx, query, h.Handle[:], h.OwnerID, h.Ciphertext, h.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert handle: %w", err)
	}
	return nil
}

// Get resolves a handle to its stored ciphertext. Returns nil for handles
// that were never minted.
func (r *HandleRepo) Get(ctx context.Context, handle domain.Handle) (*domain.StoredHandle, error) {
	query := `SELECT handle, owner_id, ciphertext, created_at FROM handles WHERE handle = $1`

	sh := &domain.StoredHandle{}
	var raw []byte
	err := r.pool.QueryRow(ctx, query, handle[:]).Scan(&raw, &sh.OwnerID, &sh.Ciphertext, &sh.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get handle: %w", err)
	}
	copy(sh.Handle[:], raw)
	return sh, nil
}

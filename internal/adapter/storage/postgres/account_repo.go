package postgres

import (
	"context"
	"errors"
	"fmt"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository. One row per identity; the
// row carries the current total ciphertext and its handle. Superseded
// ciphertexts live in the handles history, not here.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `owner_id, total_handle, total_ciphertext, has_total, created_at, updated_at`

// GetByOwner fetches an account by owner identity (non-locking read).
// Returns nil when the identity has never contributed.
func (r *AccountRepo) GetByOwner(ctx context.Context, owner uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1`

	a, err := scanAccount(r.pool.QueryRow(ctx, query, owner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// Ensure inserts an empty account row for the owner if none exists yet.
// A FOR UPDATE select takes no lock on an absent row, so every writer calls
// this first: after it returns, the row exists and GetByOwnerForUpdate
// serializes against concurrent writers, first contribution included.
func (r *AccountRepo) Ensure(ctx context.Context, tx pgx.Tx, owner uuid.UUID) error {
	query := `INSERT INTO accounts (owner_id, total_handle, total_ciphertext, has_total, created_at, updated_at)
		VALUES ($1, ''::bytea, NULL, FALSE, now(), now())
		ON CONFLICT (owner_id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, owner); err != nil {
		return fmt.Errorf("ensure account: %w", err)
	}
	return nil
}

// GetByOwnerForUpdate fetches an account with pessimistic locking. This MUST
// be called within a transaction, after Ensure; the row lock serializes all
// mutations of one identity's total.
func (r *AccountRepo) GetByOwnerForUpdate(ctx context.Context, tx pgx.Tx, owner uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE owner_id = $1 FOR UPDATE`

	a, err := scanAccount(tx.QueryRow(ctx, query, owner))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account for update: %w", err)
	}
	return a, nil
}

// Save upserts an account within a transaction.
func (r *AccountRepo) Save(ctx context.Context, tx pgx.Tx, a *domain.Account) error {
	query := `INSERT INTO accounts (owner_id, total_handle, total_ciphertext, has_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id) DO UPDATE SET
			total_handle = EXCLUDED.total_handle,
			total_ciphertext = EXCLUDED.total_ciphertext,
			has_total = EXCLUDED.has_total,
			updated_at = EXCLUDED.updated_at`

	_, err := tx.Exec(ctx, query,
		a.OwnerID, a.TotalHandle[:], a.TotalCiphertext, a.HasTotal,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	var handle []byte
	if err := row.Scan(
		&a.OwnerID, &handle, &a.TotalCiphertext, &a.HasTotal,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	copy(a.TotalHandle[:], handle)
	return a, nil
}

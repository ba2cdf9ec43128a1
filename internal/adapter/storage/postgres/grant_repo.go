package postgres

import (
	"context"
	"fmt"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GrantRepo implements ports.GrantRepository. The table is append-only; the
// primary key (handle, kind, grantee_id) makes repeated grants idempotent at
// the storage layer.
type GrantRepo struct {
	pool Pool
}

// NewGrantRepo creates a new GrantRepo.
func NewGrantRepo(pool Pool) *GrantRepo {
	return &GrantRepo{pool: pool}
}

// Create inserts a grant within a transaction. Duplicate grants are
// silently absorbed.
func (r *GrantRepo) Create(ctx context.Context, tx pgx.Tx, g *domain.Grant) error {
	query := `INSERT INTO grants (handle, kind, grantee_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (handle, kind, grantee_id) DO NOTHING`

	_, err := tx.Exec(ctx, query, g.Handle[:], string(g.Kind), g.GranteeID, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert grant: %w", err)
	}
	return nil
}

// Exists reports whether a grant row matches (handle, kind, grantee_id).
func (r *GrantRepo) Exists(ctx context.Context, handle domain.Handle, kind domain.GranteeKind, granteeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM grants WHERE handle = $1 AND kind = $2 AND grantee_id = $3
	)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, handle[:], string(kind), granteeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check grant: %w", err)
	}
	return exists, nil
}

// ListByHandle returns every grant on a handle in issue order.
func (r *GrantRepo) ListByHandle(ctx context.Context, handle domain.Handle) ([]domain.Grant, error) {
	query := `SELECT handle, kind, grantee_id, created_at FROM grants
		WHERE handle = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, handle[:])
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	defer rows.Close()

	var grants []domain.Grant
	for rows.Next() {
		var g domain.Grant
		var raw []byte
		var kind string
		if err := rows.Scan(&raw, &kind, &g.GranteeID, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan grant: %w", err)
		}
		copy(g.Handle[:], raw)
		g.Kind = domain.GranteeKind(kind)
		grants = append(grants, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grants: %w", err)
	}
	return grants, nil
}

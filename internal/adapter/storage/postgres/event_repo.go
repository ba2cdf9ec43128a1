package postgres

import (
	"context"
	"fmt"

	"confidential-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository over the append-only audit
// log.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append records an audit event within a transaction, so the event commits
// atomically with the state change it describes.
func (r *EventRepo) Append(ctx context.Context, tx pgx.Tx, e *domain.AuditEvent) error {
	query := `INSERT INTO audit_events (id, event_type, owner_id, viewer_id, contribution_handle, handle, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var contribution []byte
	if e.ContributionHandle != nil {
		contribution = e.ContributionHandle[:]
	}

	_, err := tx.Exec(ctx, query,
		e.ID, string(e.Type), e.OwnerID, e.ViewerID, contribution,
		e.Handle[:], e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByOwner returns the most recent events for an identity, newest first.
func (r *EventRepo) ListByOwner(ctx context.Context, owner uuid.UUID, limit int) ([]domain.AuditEvent, error) {
	query := `SELECT id, event_type, owner_id, viewer_id, contribution_handle, handle, created_at
		FROM audit_events WHERE owner_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}

func scanEvent(row pgx.Row) (*domain.AuditEvent, error) {
	e := &domain.AuditEvent{}
	var eventType string
	var contribution, handle []byte
	if err := row.Scan(&e.ID, &eventType, &e.OwnerID, &e.ViewerID, &contribution, &handle, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Type = domain.EventType(eventType)
	copy(e.Handle[:], handle)
	if len(contribution) == domain.HandleSize {
		var c domain.Handle
		copy(c[:], contribution)
		e.ContributionHandle = &c
	}
	return e, nil
}

package service

import (
	"context"
	"fmt"

	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"

	"github.com/google/uuid"
)

const defaultEventLimit = 100

// ReportingServiceImpl implements ports.ReportingService: the read-only
// audit surface over the append-only event and grant logs.
type ReportingServiceImpl struct {
	eventRepo ports.EventRepository
	grantRepo ports.GrantRepository
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(eventRepo ports.EventRepository, grantRepo ports.GrantRepository) *ReportingServiceImpl {
	return &ReportingServiceImpl{eventRepo: eventRepo, grantRepo: grantRepo}
}

// ListEvents returns the most recent audit events for an identity.
func (s *ReportingServiceImpl) ListEvents(ctx context.Context, owner uuid.UUID, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 || limit > defaultEventLimit {
		limit = defaultEventLimit
	}
	events, err := s.eventRepo.ListByOwner(ctx, owner, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list events: %w", err))
	}
	return events, nil
}

// ListGrants returns every grant on a handle. The set only ever grows.
func (s *ReportingServiceImpl) ListGrants(ctx context.Context, handle domain.Handle) ([]domain.Grant, error) {
	grants, err := s.grantRepo.ListByHandle(ctx, handle)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list grants: %w", err))
	}
	return grants, nil
}

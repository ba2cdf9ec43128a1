package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies an audit event kind.
type EventType string

const (
	EventContributionAccepted EventType = "CONTRIBUTION_ACCEPTED"
	EventTotalShared          EventType = "TOTAL_SHARED"
	EventTotalMadePublic      EventType = "TOTAL_MADE_PUBLIC"
)

// AuditEvent is one record of the append-only, externally observable event
// log. ContributionHandle and ViewerID are populated only for the event
// types that carry them.
type AuditEvent struct {
	ID                 uuid.UUID  `json:"id"`
	Type               EventType  `json:"type"`
	OwnerID            uuid.UUID  `json:"owner_id"`
	ViewerID           *uuid.UUID `json:"viewer_id,omitempty"`
	ContributionHandle *Handle    `json:"contribution_handle,omitempty"`
	Handle             Handle     `json:"handle"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ContributionAccepted builds the audit record for a successful
// accumulation. The contribution's own handle is exposed for audit purposes
// only; it carries no decrypt-rights.
func ContributionAccepted(owner uuid.UUID, contribution, newTotal Handle) *AuditEvent {
	c := contribution
	return &AuditEvent{
		ID:                 uuid.New(),
		Type:               EventContributionAccepted,
		OwnerID:            owner,
		ContributionHandle: &c,
		Handle:             newTotal,
		CreatedAt:          time.Now().UTC(),
	}
}

// TotalShared builds the audit record for a shareTotal grant.
func TotalShared(owner, viewer uuid.UUID, handle Handle) *AuditEvent {
	v := viewer
	return &AuditEvent{
		ID:        uuid.New(),
		Type:      EventTotalShared,
		OwnerID:   owner,
		ViewerID:  &v,
		Handle:    handle,
		CreatedAt: time.Now().UTC(),
	}
}

// TotalMadePublic builds the audit record for an irrevocable publication.
func TotalMadePublic(owner uuid.UUID, handle Handle) *AuditEvent {
	return &AuditEvent{
		ID:        uuid.New(),
		Type:      EventTotalMadePublic,
		OwnerID:   owner,
		Handle:    handle,
		CreatedAt: time.Now().UTC(),
	}
}

package handler

import (
	"strconv"
	"time"

	"confidential-ledger/internal/adapter/http/dto"
	"confidential-ledger/internal/adapter/http/middleware"
	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"
	"confidential-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportingHandler serves the read-only audit surface.
type ReportingHandler struct {
	reportingSvc ports.ReportingService
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(reportingSvc ports.ReportingService) *ReportingHandler {
	return &ReportingHandler{reportingSvc: reportingSvc}
}

// ListEvents handles GET /api/v1/events. It returns the caller's own audit
// events, newest first.
func (h *ReportingHandler) ListEvents(c *gin.Context) {
	identity, ok := c.Get(middleware.CtxIdentity)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid limit"))
			return
		}
		limit = parsed
	}

	events, err := h.reportingSvc.ListEvents(c.Request.Context(), identity.(uuid.UUID), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		items = append(items, toEventResponse(ev))
	}
	response.OK(c, dto.EventListResponse{Items: items})
}

// ListGrants handles GET /api/v1/handles/:handle/grants.
func (h *ReportingHandler) ListGrants(c *gin.Context) {
	handle, ok := parseHandleParam(c)
	if !ok {
		return
	}

	grants, err := h.reportingSvc.ListGrants(c.Request.Context(), handle)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.GrantResponse, 0, len(grants))
	for _, g := range grants {
		out = append(out, toGrantResponse(g))
	}
	response.OK(c, dto.GrantListResponse{
		Handle: handle.String(),
		Grants: out,
	})
}

func toEventResponse(ev domain.AuditEvent) dto.EventResponse {
	resp := dto.EventResponse{
		ID:        ev.ID.String(),
		Type:      string(ev.Type),
		OwnerID:   ev.OwnerID.String(),
		Handle:    ev.Handle.String(),
		CreatedAt: ev.CreatedAt.Format(time.RFC3339),
	}
	if ev.ViewerID != nil {
		v := ev.ViewerID.String()
		resp.ViewerID = &v
	}
	if ev.ContributionHandle != nil {
		ch := ev.ContributionHandle.String()
		resp.ContributionHandle = &ch
	}
	return resp
}

func toGrantResponse(g domain.Grant) dto.GrantResponse {
	resp := dto.GrantResponse{
		Kind:      string(g.Kind),
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
	}
	if g.Kind == domain.GranteeIdentity {
		id := g.GranteeID.String()
		resp.GranteeID = &id
	}
	return resp
}

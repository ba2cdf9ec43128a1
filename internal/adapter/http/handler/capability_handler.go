package handler

import (
	"confidential-ledger/internal/adapter/http/dto"
	"confidential-ledger/internal/adapter/http/middleware"
	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"
	"confidential-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CapabilityHandler handles share, publish and decrypt endpoints.
type CapabilityHandler struct {
	capSvc ports.CapabilityService
}

// NewCapabilityHandler creates a new CapabilityHandler.
func NewCapabilityHandler(capSvc ports.CapabilityService) *CapabilityHandler {
	return &CapabilityHandler{capSvc: capSvc}
}

// ShareTotal handles POST /api/v1/totals/share.
func (h *CapabilityHandler) ShareTotal(c *gin.Context) {
	identity, ok := c.Get(middleware.CtxIdentity)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	viewer, err := uuid.Parse(req.ViewerID)
	if err != nil {
		response.Error(c, apperror.ErrInvalidViewer())
		return
	}

	handle, err := h.capSvc.ShareTotal(c.Request.Context(), identity.(uuid.UUID), viewer)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ShareResponse{
		Handle:   handle.String(),
		ViewerID: viewer.String(),
	})
}

// MakeTotalPublic handles POST /api/v1/totals/publish.
func (h *CapabilityHandler) MakeTotalPublic(c *gin.Context) {
	identity, ok := c.Get(middleware.CtxIdentity)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	handle, err := h.capSvc.MakeTotalPublic(c.Request.Context(), identity.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PublishResponse{Handle: handle.String()})
}

// Decrypt handles POST /api/v1/decrypt.
func (h *CapabilityHandler) Decrypt(c *gin.Context) {
	identity, ok := c.Get(middleware.CtxIdentity)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	handle, err := domain.ParseHandle(req.Handle)
	if err != nil {
		response.Error(c, apperror.Validation("invalid handle"))
		return
	}

	value, err := h.capSvc.DecryptHandle(c.Request.Context(), identity.(uuid.UUID), handle)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DecryptResponse{
		Handle: handle.String(),
		Value:  value,
	})
}

package handler

import (
	"encoding/base64"

	"confidential-ledger/internal/adapter/http/dto"
	"confidential-ledger/internal/adapter/http/middleware"
	"confidential-ledger/internal/core/domain"
	"confidential-ledger/internal/core/ports"
	"confidential-ledger/pkg/apperror"
	"confidential-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccumulatorHandler handles contribution and total-handle endpoints.
type AccumulatorHandler struct {
	accSvc ports.AccumulatorService
}

// NewAccumulatorHandler creates a new AccumulatorHandler.
func NewAccumulatorHandler(accSvc ports.AccumulatorService) *AccumulatorHandler {
	return &AccumulatorHandler{accSvc: accSvc}
}

// SubmitContribution handles POST /api/v1/contributions.
func (h *AccumulatorHandler) SubmitContribution(c *gin.Context) {
	identity, ok := c.Get(middleware.CtxIdentity)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(req.Ciphertext)
	if err != nil {
		response.Error(c, apperror.ErrMalformedCiphertext(err))
		return
	}

	result, err := h.accSvc.SubmitContribution(c.Request.Context(), ports.SubmitRequest{
		Submitter:  identity.(uuid.UUID),
		Ciphertext: ciphertext,
		Proof:      req.Proof,
		ClientIP:   c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ContributionResponse{
		ContributionHandle: result.ContributionHandle.String(),
		TotalHandle:        result.NewTotalHandle.String(),
	})
}

// GetMyTotalHandle handles GET /api/v1/totals/me.
func (h *AccumulatorHandler) GetMyTotalHandle(c *gin.Context) {
	identity, ok := c.Get(middleware.CtxIdentity)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	h.respondWithHandle(c, identity.(uuid.UUID))
}

// GetTotalHandleOf handles GET /api/v1/totals/:id. Any authenticated
// participant may read any identity's handle; the handle alone reveals
// nothing without a decrypt grant.
func (h *AccumulatorHandler) GetTotalHandleOf(c *gin.Context) {
	owner, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid identity"))
		return
	}

	h.respondWithHandle(c, owner)
}

func (h *AccumulatorHandler) respondWithHandle(c *gin.Context, owner uuid.UUID) {
	handle, err := h.accSvc.GetTotalHandle(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.TotalHandleResponse{OwnerID: owner.String()}
	if !handle.IsNull() {
		s := handle.String()
		resp.Handle = &s
	}
	response.OK(c, resp)
}

// parseHandleParam decodes a :handle path parameter.
func parseHandleParam(c *gin.Context) (domain.Handle, bool) {
	h, err := domain.ParseHandle(c.Param("handle"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid handle"))
		return domain.NullHandle, false
	}
	return h, true
}

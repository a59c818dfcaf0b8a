package handler

import (
	"smartpay-rewards/internal/adapter/http/dto"
	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/pkg/apperror"
	"smartpay-rewards/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProgramHandler handles reward policy administration.
type ProgramHandler struct {
	programSvc ports.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programSvc ports.ProgramService) *ProgramHandler {
	return &ProgramHandler{programSvc: programSvc}
}

// Initialize handles POST /api/v1/program/initialize. The caller becomes admin.
func (h *ProgramHandler) Initialize(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var req dto.InitializeRequest
	if !bindJSON(c, &req) {
		return
	}
	mintAuthority, err := dto.ParseOptionalPubkey(req.MintAuthority)
	if err != nil {
		response.Error(c, apperror.Validation("mint_authority is not a valid address"))
		return
	}
	freezeAuthority, err := dto.ParseOptionalPubkey(req.FreezeAuthority)
	if err != nil {
		response.Error(c, apperror.Validation("freeze_authority is not a valid address"))
		return
	}

	state, err := h.programSvc.InitializeMint(c.Request.Context(), ports.InitializeRequest{
		Caller:          identity,
		Decimals:        req.Decimals,
		MintAuthority:   mintAuthority,
		FreezeAuthority: freezeAuthority,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToProgramStateResponse(state))
}

// Get handles GET /api/v1/program.
func (h *ProgramHandler) Get(c *gin.Context) {
	state, err := h.programSvc.GetProgramState(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToProgramStateResponse(state))
}

// UpdateRewardRate handles PUT /api/v1/program/reward-rate.
func (h *ProgramHandler) UpdateRewardRate(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateRateRequest
	if !bindJSON(c, &req) {
		return
	}

	state, err := h.programSvc.UpdateRewardRate(c.Request.Context(), identity, *req.NewRateBps)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToProgramStateResponse(state))
}

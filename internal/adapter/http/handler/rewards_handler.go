package handler

import (
	"smartpay-rewards/internal/adapter/http/dto"
	"smartpay-rewards/internal/core/domain"
	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/pkg/apperror"
	"smartpay-rewards/pkg/response"

	"github.com/gin-gonic/gin"
)

// RewardsHandler handles issuance, redemption and transaction lookups.
type RewardsHandler struct {
	issuanceSvc   ports.IssuanceService
	redemptionSvc ports.RedemptionService
	statsSvc      ports.StatsService
}

// NewRewardsHandler creates a new RewardsHandler.
func NewRewardsHandler(issuanceSvc ports.IssuanceService, redemptionSvc ports.RedemptionService, statsSvc ports.StatsService) *RewardsHandler {
	return &RewardsHandler{
		issuanceSvc:   issuanceSvc,
		redemptionSvc: redemptionSvc,
		statsSvc:      statsSvc,
	}
}

// Mint handles POST /api/v1/rewards/mint.
func (h *RewardsHandler) Mint(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var req dto.MintRequest
	if !bindJSON(c, &req) {
		return
	}
	transactionKey, err := dto.ParseOptionalPubkey(req.TransactionKey)
	if err != nil {
		response.Error(c, apperror.Validation("transaction_key is not a valid address"))
		return
	}

	result, err := h.issuanceSvc.MintRewards(c.Request.Context(), ports.MintRequest{
		Caller:         identity,
		Amount:         req.Amount,
		TransactionID:  req.TransactionID,
		TransactionKey: transactionKey,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ToMintResponse(result))
}

// Redeem handles POST /api/v1/rewards/redeem. Only the session's own
// balance can be burned.
func (h *RewardsHandler) Redeem(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var req dto.RedeemRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.redemptionSvc.RedeemRewards(c.Request.Context(), ports.RedeemRequest{
		Authorization: domain.AuthorizeOwner(identity),
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToRedeemResponse(result))
}

// GetTransaction handles GET /api/v1/rewards/transactions/:transaction_id.
func (h *RewardsHandler) GetTransaction(c *gin.Context) {
	record, err := h.statsSvc.GetTransaction(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToTransactionResponse(record))
}

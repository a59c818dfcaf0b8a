package handler

import (
	"smartpay-rewards/internal/adapter/http/dto"
	"smartpay-rewards/internal/core/domain"
	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/pkg/apperror"
	"smartpay-rewards/pkg/response"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
)

// UserHandler serves per-user read views.
type UserHandler struct {
	statsSvc ports.StatsService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(statsSvc ports.StatsService) *UserHandler {
	return &UserHandler{statsSvc: statsSvc}
}

// MyStats handles GET /api/v1/users/me/stats.
func (h *UserHandler) MyStats(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	h.writeStats(c, identity)
}

// Stats handles GET /api/v1/users/:user/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	user, err := dto.ParsePubkey(c.Param("user"))
	if err != nil {
		response.Error(c, apperror.Validation("user is not a valid address"))
		return
	}
	h.writeStats(c, user)
}

func (h *UserHandler) writeStats(c *gin.Context, user solana.PublicKey) {
	stats, err := h.statsSvc.GetUserStats(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// MyEvents handles GET /api/v1/users/me/events.
func (h *UserHandler) MyEvents(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var q dto.EventListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	params := ports.EventListParams{User: identity, Page: q.Page, PageSize: q.PageSize}
	if q.Kind != "" {
		kind := domain.EventKind(q.Kind)
		params.Kind = &kind
	}
	params = params.Normalized()

	events, total, err := h.statsSvc.ListUserEvents(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToEventListResponse(events, total, params.Page, params.PageSize))
}

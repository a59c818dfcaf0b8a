package handler

import (
	"errors"
	"net/http"

	"smartpay-rewards/internal/adapter/http/middleware"
	"smartpay-rewards/pkg/apperror"
	"smartpay-rewards/pkg/response"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the body, writing the error response on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge())
			return false
		}
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// caller returns the authenticated wallet. Routes behind JWTAuth always have one.
func caller(c *gin.Context) (solana.PublicKey, bool) {
	identity, ok := middleware.CallerIdentity(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
	}
	return identity, ok
}

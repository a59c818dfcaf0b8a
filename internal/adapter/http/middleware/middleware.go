package middleware

import (
	"net/http"
	"strings"
	"time"

	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/pkg/apperror"
	"smartpay-rewards/pkg/response"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"

	// Context keys
	CtxRequestID = "request_id"
	CtxIdentity  = "identity"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one. The
// response envelope reads it back from the context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		c.Set(CtxRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}

// JWTAuth validates the bearer token and stores the wallet identity it was
// issued to.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			response.Abort(c, apperror.ErrInvalidToken())
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("rejected bearer token")
			response.Abort(c, apperror.ErrInvalidToken())
			return
		}

		c.Set(CtxIdentity, claims.Identity)
		c.Next()
	}
}

// CallerIdentity returns the identity JWTAuth authenticated.
func CallerIdentity(c *gin.Context) (solana.PublicKey, bool) {
	v, exists := c.Get(CtxIdentity)
	if !exists {
		return solana.PublicKey{}, false
	}
	identity, ok := v.(solana.PublicKey)
	if !ok || identity.IsZero() {
		return solana.PublicKey{}, false
	}
	return identity, true
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		if rid, ok := c.Get(CtxRequestID); ok {
			event = event.Interface("request_id", rid)
		}
		if identity, ok := CallerIdentity(c); ok {
			event = event.Str("identity", identity.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Abort(c, apperror.New("SYS_001", "Internal server error", http.StatusInternalServerError))
			}
		}()
		c.Next()
	}
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"smartpay-rewards/internal/core/domain"
	"smartpay-rewards/internal/core/ports"
	"smartpay-rewards/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	engine *gin.Engine
	tokens *mocks.MockTokenService
	stats  *mocks.MockStatsService
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	f := &routerFixture{
		tokens: mocks.NewMockTokenService(ctrl),
		stats:  mocks.NewMockStatsService(ctrl),
	}
	f.engine = SetupRouter(RouterDeps{
		AuthSvc:       mocks.NewMockAuthService(ctrl),
		TokenSvc:      f.tokens,
		ProgramSvc:    mocks.NewMockProgramService(ctrl),
		IssuanceSvc:   mocks.NewMockIssuanceService(ctrl),
		RedemptionSvc: mocks.NewMockRedemptionService(ctrl),
		StatsSvc:      f.stats,
		Registry:      prometheus.NewRegistry(),
		ServiceName:   "smartpay-rewards-test",
		Mode:          gin.TestMode,
		Logger:        zerolog.Nop(),
	})
	return f
}

func (f *routerFixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicEndpoints(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = f.do(http.MethodGet, "/swagger/spec", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/rewards/mint")

	w = f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	f := newRouterFixture(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/rewards/mint"},
		{http.MethodPost, "/api/v1/rewards/redeem"},
		{http.MethodPut, "/api/v1/program/reward-rate"},
		{http.MethodGet, "/api/v1/users/me/stats"},
	} {
		w := f.do(route.method, route.path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestRouter_MeRouteWinsOverUserParam(t *testing.T) {
	f := newRouterFixture(t)
	identity := *wallet()

	f.tokens.EXPECT().Validate("tok").Return(&ports.TokenClaims{Identity: identity}, nil)
	f.stats.EXPECT().GetUserStats(gomock.Any(), identity).Return(&domain.UserStats{User: identity.String()}, nil)

	w := f.do(http.MethodGet, "/api/v1/users/me/stats", "tok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), identity.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/rewards/mint", nil)
	req.Header.Set("Origin", "https://merchant.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

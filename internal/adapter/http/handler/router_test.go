package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet-ledger/internal/adapter/http/middleware"
	redisStore "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	token     *mocks.MockTokenService
	reporting *mocks.MockReportingService
	batcher   *mocks.MockSettlementBatcher
	audit     *mocks.MockAuditService
}

func newTestRouter(t *testing.T, store *redisStore.RateLimitStore) (*gin.Engine, *routerMocks) {
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		token:     mocks.NewMockTokenService(ctrl),
		reporting: mocks.NewMockReportingService(ctrl),
		batcher:   mocks.NewMockSettlementBatcher(ctrl),
		audit:     mocks.NewMockAuditService(ctrl),
	}
	m.token.EXPECT().Validate("staff-token").Return(&ports.TokenClaims{ActorID: "staff-1", Role: middleware.RoleStaff}, nil).AnyTimes()
	m.token.EXPECT().Validate("user-token").Return(&ports.TokenClaims{ActorID: "user-1", Role: "user"}, nil).AnyTimes()

	r := SetupRouter(RouterDeps{
		FeeCatalog:        mocks.NewMockFeeCatalog(ctrl),
		WalletGuard:       mocks.NewMockWalletGuard(ctrl),
		TransactionPoster: mocks.NewMockTransactionPoster(ctrl),
		RevenueRecognizer: mocks.NewMockRevenueRecognizer(ctrl),
		SettlementBatcher: m.batcher,
		ReportingSvc:      m.reporting,
		TokenSvc:          m.token,
		RateLimitStore:    store,
		AuditSvc:          m.audit,
		Mode:              gin.TestMode,
		Logger:            zerolog.Nop(),
	})
	return r, m
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/swagger", "", "").Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/v1/transactions/TXN-1", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_StaffOnlyRoutes(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/revenue"},
		{http.MethodPost, "/api/v1/revenue"},
		{http.MethodPost, "/api/v1/settlements"},
		{http.MethodGet, "/api/v1/ledger/TXN-1"},
		{http.MethodGet, "/api/v1/fee-rules"},
		{http.MethodPost, "/api/v1/fee-rules"},
	}
	for _, p := range paths {
		w := do(r, p.method, p.path, "user-token", "{}")
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", p.method, p.path)
	}
}

func TestRouter_UserReadsTransaction(t *testing.T) {
	r, m := newTestRouter(t, nil)

	m.reporting.EXPECT().GetTransaction(gomock.Any(), "TXN-1").Return(&domain.Transaction{Reference: "TXN-1"}, nil)

	w := do(r, http.MethodGet, "/api/v1/transactions/TXN-1", "user-token", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AuditsSettlement(t *testing.T) {
	r, m := newTestRouter(t, nil)

	m.batcher.EXPECT().SettleBatch(gomock.Any(), gomock.Any()).Return(&domain.SettlementResult{BatchRef: "SETTLE-1", SettledCount: 1}, nil)
	m.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		assert.Equal(t, domain.AuditActionSettleBatch, entry.Action)
		assert.Equal(t, "staff-1", entry.ActorID)
		assert.Equal(t, "SETTLE-1", entry.ResourceID)
	})

	w := do(r, http.MethodPost, "/api/v1/settlements", "staff-token", `{"revenue_ids":["0b5a4b8e-8f4a-4c1e-9d55-2f1a3c1b7e10"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_RateLimitsSettlements(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	r, m := newTestRouter(t, redisStore.NewRateLimitStore(client))
	limit := middleware.DefaultRateLimitRules()["settlements"].Limit

	m.batcher.EXPECT().SettleBatch(gomock.Any(), gomock.Any()).
		Return(&domain.SettlementResult{BatchRef: "SETTLE-1"}, nil).Times(int(limit))
	m.audit.EXPECT().Log(gomock.Any(), gomock.Any()).Times(int(limit))

	body := `{"revenue_ids":["0b5a4b8e-8f4a-4c1e-9d55-2f1a3c1b7e10"]}`
	for i := int64(0); i < limit; i++ {
		assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/v1/settlements", "staff-token", body).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/v1/settlements", "staff-token", body).Code)
}

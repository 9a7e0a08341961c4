package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func settlementAudit() *domain.AuditLog {
	return &domain.AuditLog{
		ID:           uuid.New(),
		ActorID:      "staff-7",
		ActorRole:    "staff",
		Action:       domain.AuditActionSettleBatch,
		ResourceType: "settlement",
		ResourceID:   "SETTLE-20260301-0001",
		IPAddress:    "10.1.2.3",
		CreatedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestAuditService_Log(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{"persisted", nil},
		{"repository failure is swallowed", errors.New("audit_logs unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockAuditRepository(ctrl)
			svc := NewAuditService(repo, zerolog.Nop())

			entry := settlementAudit()
			written := make(chan *domain.AuditLog, 1)
			repo.EXPECT().Create(gomock.Any(), entry).DoAndReturn(
				func(ctx context.Context, got *domain.AuditLog) error {
					_, hasDeadline := ctx.Deadline()
					assert.True(t, hasDeadline)
					written <- got
					return tt.repoErr
				},
			)

			// A cancelled request context must not stop the write.
			reqCtx, cancel := context.WithCancel(context.Background())
			cancel()
			svc.Log(reqCtx, entry)

			select {
			case got := <-written:
				assert.Equal(t, "SETTLE-20260301-0001", got.ResourceID)
			case <-time.After(2 * time.Second):
				t.Fatal("audit entry was not written")
			}
		})
	}
}

func TestAuditService_Log_NoRepository(t *testing.T) {
	svc := NewAuditService(nil, zerolog.Nop())

	assert.NotPanics(t, func() {
		svc.Log(context.Background(), settlementAudit())
		time.Sleep(20 * time.Millisecond)
	})
}

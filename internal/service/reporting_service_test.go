package service

import (
	"context"
	"errors"
	"testing"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportingTestDeps struct {
	svc         ports.ReportingService
	txRepo      *mocks.MockTransactionRepository
	ledgerRepo  *mocks.MockLedgerRepository
	revenueRepo *mocks.MockRevenueRepository
}

func setupReporting(t *testing.T) *reportingTestDeps {
	ctrl := gomock.NewController(t)
	deps := &reportingTestDeps{
		txRepo:      mocks.NewMockTransactionRepository(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepository(ctrl),
		revenueRepo: mocks.NewMockRevenueRepository(ctrl),
	}
	deps.svc = NewReportingService(deps.txRepo, deps.ledgerRepo, deps.revenueRepo)
	return deps
}

func TestReportingService_GetTransaction(t *testing.T) {
	deps := setupReporting(t)
	txn := &domain.Transaction{Reference: "TXN-1"}

	deps.txRepo.EXPECT().GetByReference(gomock.Any(), "TXN-1").Return(txn, nil)

	got, err := deps.svc.GetTransaction(context.Background(), "TXN-1")
	require.NoError(t, err)
	assert.Equal(t, txn, got)
}

func TestReportingService_GetTransaction_NotFound(t *testing.T) {
	deps := setupReporting(t)

	deps.txRepo.EXPECT().GetByReference(gomock.Any(), "TXN-404").Return(nil, nil)

	_, err := deps.svc.GetTransaction(context.Background(), "TXN-404")
	assertAppError(t, err, "NF_001")
}

func TestReportingService_GetLedger(t *testing.T) {
	deps := setupReporting(t)
	entries := transactionEntries("TXN-1", dec("100"), dec("3"), "USD", true)

	deps.ledgerRepo.EXPECT().ListByReference(gomock.Any(), "TXN-1").Return(entries, nil)

	view, err := deps.svc.GetLedger(context.Background(), "TXN-1")
	require.NoError(t, err)
	assert.True(t, view.Balanced)
	assert.Equal(t, "100.00", view.TotalDebit.StringFixed(2))
	assert.Equal(t, "100.00", view.TotalCredit.StringFixed(2))
	assert.Len(t, view.Entries, 3)
}

func TestReportingService_GetLedger_PendingRevenueIsUnbalanced(t *testing.T) {
	deps := setupReporting(t)
	entries := []domain.LedgerEntry{
		domain.CreditEntry("REV-1", domain.AccountRevenue, dec("5"), "USD", "", domain.EntryTypeFee),
	}

	deps.ledgerRepo.EXPECT().ListByReference(gomock.Any(), "REV-1").Return(entries, nil)

	view, err := deps.svc.GetLedger(context.Background(), "REV-1")
	require.NoError(t, err)
	assert.False(t, view.Balanced)
}

func TestReportingService_GetLedger_Empty(t *testing.T) {
	deps := setupReporting(t)

	deps.ledgerRepo.EXPECT().ListByReference(gomock.Any(), "NOPE").Return([]domain.LedgerEntry{}, nil)

	_, err := deps.svc.GetLedger(context.Background(), "NOPE")
	assertAppError(t, err, "NF_001")
}

func TestReportingService_ListRevenue_ClampsPaging(t *testing.T) {
	deps := setupReporting(t)
	status := domain.RevenueStatusPending

	deps.revenueRepo.EXPECT().List(gomock.Any(), ports.RevenueListParams{Status: &status, Page: 1, PageSize: 100}).
		Return([]domain.RevenueRecord{{Reference: "REV-1"}}, int64(1), nil)

	recs, total, err := deps.svc.ListRevenue(context.Background(), ports.RevenueListParams{Status: &status, Page: 0, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, recs, 1)
}

func TestReportingService_ListRevenue_Error(t *testing.T) {
	deps := setupReporting(t)

	deps.revenueRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db down"))

	_, _, err := deps.svc.ListRevenue(context.Background(), ports.RevenueListParams{})
	assertAppError(t, err, "SYS_001")
}

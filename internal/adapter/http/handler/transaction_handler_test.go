package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/core/ports/mocks"
	"wallet-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPostTransaction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	poster := mocks.NewMockTransactionPoster(ctrl)
	h := NewTransactionHandler(poster, mocks.NewMockReportingService(ctrl))

	poster.EXPECT().PostTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.PostTransactionRequest) (*domain.Transaction, error) {
			assert.Equal(t, "transfer", req.TransactionType)
			assert.Equal(t, domain.TransactionStatusCompleted, req.Status)
			assert.Equal(t, "u-1", req.Sender.ID)
			assert.Equal(t, "w-u-1", req.Sender.WalletRef)
			assert.Nil(t, req.Receiver)
			require.NotNil(t, req.Recipient)
			assert.Equal(t, "m-9", req.Recipient.ID)
			assert.True(t, req.TransferAmount.Equal(decimal.NewFromInt(100)))
			require.Len(t, req.Fees, 1)
			assert.True(t, req.Fees[0].FeeAmount.Equal(decimal.RequireFromString("2.5")))

			return &domain.Transaction{
				ID:              uuid.New(),
				Reference:       "TXN-20260101120000-0A1B2C3D",
				TransactionType: req.TransactionType,
				Status:          req.Status,
				Sender:          req.Sender,
				Receiver:        req.Recipient,
				TransferAmount:  req.TransferAmount,
				Currency:        req.Currency,
				Fees: []domain.FeeLine{
					{FeeAmount: req.Fees[0].FeeAmount, FeeType: req.Fees[0].FeeType, RevenueStatus: domain.RevenueStatusPending},
				},
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	)

	body := `{
		"transaction_type": "transfer",
		"status": "completed",
		"sender": {"id": "u-1", "name": "Dara", "tier": "BASIC", "wallet_ref": "w-u-1"},
		"recipient": {"id": "m-9", "role": "merchant"},
		"transfer_amount": "100.00",
		"currency": "USD",
		"fees": [{"fee_amount": "2.50", "fee_type": "transaction_fee"}]
	}`
	c, w := newJSONContext(http.MethodPost, "/api/v1/transactions", body)
	h.Post(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "TXN-20260101120000-0A1B2C3D", data["transaction_ref"])
	assert.Equal(t, "m-9", data["receiver"].(map[string]interface{})["id"])
	assert.Equal(t, "TXN-20260101120000-0A1B2C3D", c.GetString("resource_id"))
}

func TestPostTransaction_MissingSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransactionHandler(mocks.NewMockTransactionPoster(ctrl), mocks.NewMockReportingService(ctrl))

	c, w := newJSONContext(http.MethodPost, "/api/v1/transactions",
		`{"transaction_type":"transfer","transfer_amount":"10","currency":"USD"}`)
	h.Post(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostTransaction_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTransactionHandler(mocks.NewMockTransactionPoster(ctrl), mocks.NewMockReportingService(ctrl))

	c, w := newJSONContext(http.MethodPost, "/api/v1/transactions",
		`{"transaction_type":"transfer","status":"reversed","sender":{"id":"u-1"},"transfer_amount":"10","currency":"USD"}`)
	h.Post(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostTransaction_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	poster := mocks.NewMockTransactionPoster(ctrl)
	h := NewTransactionHandler(poster, mocks.NewMockReportingService(ctrl))

	poster.EXPECT().PostTransaction(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInsufficientBalance())

	c, w := newJSONContext(http.MethodPost, "/api/v1/transactions",
		`{"transaction_type":"transfer","status":"completed","sender":{"id":"u-1","wallet_ref":"w-1"},"transfer_amount":"10","currency":"USD"}`)
	h.Post(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	code, reason := decodeError(t, w)
	assert.Equal(t, "ELIG_002", code)
	assert.Equal(t, apperror.ReasonInsufficientBalance, reason)
}

func TestGetTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporting := mocks.NewMockReportingService(ctrl)
	h := NewTransactionHandler(mocks.NewMockTransactionPoster(ctrl), reporting)

	reporting.EXPECT().GetTransaction(gomock.Any(), "TXN-1").Return(&domain.Transaction{
		Reference:      "TXN-1",
		TransferAmount: decimal.NewFromInt(100),
		Fees:           []domain.FeeLine{{FeeAmount: decimal.NewFromInt(3), FeeType: "transaction_fee", RevenueStatus: domain.RevenueStatusSettled}},
	}, nil)

	c, w := newJSONContext(http.MethodGet, "/api/v1/transactions/TXN-1", nil, gin.Param{Key: "reference", Value: "TXN-1"})
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	fees := data["fees"].([]interface{})
	require.Len(t, fees, 1)
	assert.Equal(t, "settled", fees[0].(map[string]interface{})["revenue_status"])
}

func TestGetTransaction_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporting := mocks.NewMockReportingService(ctrl)
	h := NewTransactionHandler(mocks.NewMockTransactionPoster(ctrl), reporting)

	reporting.EXPECT().GetTransaction(gomock.Any(), "TXN-404").Return(nil, apperror.ErrNotFound("transaction"))

	c, w := newJSONContext(http.MethodGet, "/api/v1/transactions/TXN-404", nil, gin.Param{Key: "reference", Value: "TXN-404"})
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

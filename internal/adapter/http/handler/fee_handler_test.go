package handler

import (
	"context"
	"net/http"
	"testing"

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

func TestFeeQuote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockFeeCatalog(ctrl)
	h := NewFeeHandler(catalog)
	ruleID := uuid.New()

	catalog.EXPECT().QuoteFee(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.FeeQuoteRequest) (*ports.FeeQuote, error) {
			assert.Equal(t, "transfer", req.TransactionType)
			assert.True(t, req.Amount.Equal(decimal.NewFromInt(1000)))
			assert.Equal(t, domain.TierBasic, req.Tier)
			assert.Equal(t, "KH", req.Region)
			return &ports.FeeQuote{
				Rule: &domain.FeeRule{
					ID:          ruleID,
					Name:        "p2p percentage",
					FeeType:     "transaction_fee",
					Calculation: domain.PercentageFee{Rate: decimal.RequireFromString("2.5")},
					Currency:    "USD",
				},
				FeeAmount: decimal.RequireFromString("25"),
				Total:     decimal.RequireFromString("1025"),
			}, nil
		},
	)

	c, w := newJSONContext(http.MethodPost, "/api/v1/fees/quote",
		`{"transaction_type":"transfer","amount":"1000","tier":"BASIC","region":"KH"}`)
	h.Quote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, ruleID.String(), data["rule_id"])
	assert.Equal(t, "percentage", data["calculation_type"])
	assert.Equal(t, "25", data["fee_amount"])
	assert.Equal(t, "1025", data["total"])
	assert.Equal(t, false, data["default_rule"])
}

func TestFeeQuote_DefaultRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockFeeCatalog(ctrl)
	h := NewFeeHandler(catalog)

	catalog.EXPECT().QuoteFee(gomock.Any(), gomock.Any()).Return(&ports.FeeQuote{
		Rule:      domain.DefaultFeeRule(),
		FeeAmount: decimal.RequireFromString("1"),
		Total:     decimal.RequireFromString("51"),
	}, nil)

	c, w := newJSONContext(http.MethodPost, "/api/v1/fees/quote", `{"transaction_type":"withdrawal","amount":50}`)
	h.Quote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["default_rule"])
	assert.Equal(t, "fixed", data["calculation_type"])
	_, hasID := data["rule_id"]
	assert.False(t, hasID)
}

func TestFeeQuote_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewFeeHandler(mocks.NewMockFeeCatalog(ctrl))

	c, w := newJSONContext(http.MethodPost, "/api/v1/fees/quote", `{"amount":"10","tier":"GOLD"}`)
	h.Quote(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, "VAL_001", code)
}

func TestCreateRule_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockFeeCatalog(ctrl)
	h := NewFeeHandler(catalog)
	id := uuid.New()

	catalog.EXPECT().CreateFeeRule(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rule domain.FeeRule) (*domain.FeeRule, error) {
			tiered, ok := rule.Calculation.(domain.TieredFee)
			require.True(t, ok)
			assert.Len(t, tiered.Brackets, 2)
			assert.Equal(t, []string{"BASIC", "ALL"}, rule.ApplicableTiers)
			rule.ID = id
			rule.IsActive = true
			return &rule, nil
		},
	)

	body := `{
		"name": "bands",
		"fee_type": "transaction_fee",
		"transaction_type": "transfer",
		"calculation_type": "tiered",
		"tiered_rates": [
			{"min_amount": "0", "max_amount": "100", "fixed_amount": "0.50", "percentage_rate": "0"},
			{"min_amount": "100.01", "max_amount": "1000", "fixed_amount": "1", "percentage_rate": "0.5"}
		],
		"currency": "USD",
		"applicable_tiers": ["BASIC", "ALL"]
	}`
	c, w := newJSONContext(http.MethodPost, "/api/v1/fee-rules", body)
	h.CreateRule(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, id.String(), data["id"])
	assert.Equal(t, "tiered", data["calculation_type"])
	assert.Equal(t, id.String(), c.GetString("resource_id"))
}

func TestCreateRule_ServiceValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockFeeCatalog(ctrl)
	h := NewFeeHandler(catalog)

	catalog.EXPECT().CreateFeeRule(gomock.Any(), gomock.Any()).
		Return(nil, apperror.Validation("tiered rule needs at least one bracket"))

	c, w := newJSONContext(http.MethodPost, "/api/v1/fee-rules",
		`{"name":"x","fee_type":"transaction_fee","transaction_type":"transfer","calculation_type":"tiered","currency":"USD"}`)
	h.CreateRule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeactivateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockFeeCatalog(ctrl)
	h := NewFeeHandler(catalog)
	id := uuid.New()

	catalog.EXPECT().DeactivateFeeRule(gomock.Any(), id).Return(&domain.FeeRule{
		ID:          id,
		Name:        "p2p",
		Calculation: domain.FixedFee{Amount: decimal.NewFromInt(1)},
		IsActive:    false,
	}, nil)

	c, w := newJSONContext(http.MethodPost, "/api/v1/fee-rules/"+id.String()+"/deactivate", nil,
		gin.Param{Key: "id", Value: id.String()})
	h.DeactivateRule(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["is_active"])
}

func TestDeactivateRule_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewFeeHandler(mocks.NewMockFeeCatalog(ctrl))

	c, w := newJSONContext(http.MethodPost, "/api/v1/fee-rules/nope/deactivate", nil, gin.Param{Key: "id", Value: "nope"})
	h.DeactivateRule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRule_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockFeeCatalog(ctrl)
	h := NewFeeHandler(catalog)
	id := uuid.New()

	catalog.EXPECT().GetFeeRule(gomock.Any(), id).Return(nil, apperror.ErrNotFound("fee rule"))

	c, w := newJSONContext(http.MethodGet, "/api/v1/fee-rules/"+id.String(), nil, gin.Param{Key: "id", Value: id.String()})
	h.GetRule(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, "NF_001", code)
}

func TestListRules_ActiveOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockFeeCatalog(ctrl)
	h := NewFeeHandler(catalog)

	catalog.EXPECT().ListFeeRules(gomock.Any(), true).Return([]domain.FeeRule{
		{ID: uuid.New(), Name: "a", Calculation: domain.FixedFee{Amount: decimal.NewFromInt(1)}, IsActive: true},
	}, nil)

	c, w := newJSONContext(http.MethodGet, "/api/v1/fee-rules?active_only=true", nil)
	h.ListRules(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

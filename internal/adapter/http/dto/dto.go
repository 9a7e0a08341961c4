package dto

import (
	"time"

	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Amounts travel as decimal strings ("12.50"); numbers are also accepted.

// FeeQuoteRequest is the request body for POST /api/v1/fees/quote.
type FeeQuoteRequest struct {
	TransactionType string          `json:"transaction_type" binding:"required,safe_id"`
	Amount          decimal.Decimal `json:"amount"`
	Tier            string          `json:"tier" binding:"omitempty,tier_code"`
	Region          string          `json:"region" binding:"omitempty,safe_id"`
}

// FeeQuoteResponse is the selected rule and the fee it yields.
type FeeQuoteResponse struct {
	RuleID          string          `json:"rule_id,omitempty"`
	RuleName        string          `json:"rule_name"`
	FeeType         string          `json:"fee_type"`
	CalculationType string          `json:"calculation_type"`
	FeeAmount       decimal.Decimal `json:"fee_amount"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
	DefaultRule     bool            `json:"default_rule"`
}

// EligibilityRequest is the request body for POST /api/v1/wallets/:ref/eligibility.
type EligibilityRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type" binding:"required,safe_id"`
}

// EligibilityResponse is returned when the wallet may transact.
type EligibilityResponse struct {
	WalletRef string          `json:"wallet_ref"`
	Eligible  bool            `json:"eligible"`
	FeeAmount decimal.Decimal `json:"fee_amount"`
	FeeType   string          `json:"fee_type"`
	Total     decimal.Decimal `json:"total"`
}

// PartyRequest is a sender or receiver snapshot.
type PartyRequest struct {
	ID        string `json:"id" binding:"required,max=100"`
	Name      string `json:"name" binding:"max=200"`
	Role      string `json:"role" binding:"omitempty,safe_id"`
	Tier      string `json:"tier" binding:"omitempty,tier_code"`
	Phone     string `json:"phone" binding:"max=32"`
	WalletRef string `json:"wallet_ref" binding:"omitempty,safe_id"`
}

// ToDomain copies the snapshot.
func (p *PartyRequest) ToDomain() *domain.Party {
	if p == nil {
		return nil
	}
	return &domain.Party{
		ID:        p.ID,
		Name:      p.Name,
		Role:      p.Role,
		Tier:      p.Tier,
		Phone:     p.Phone,
		WalletRef: p.WalletRef,
	}
}

// FeeLineRequest is one fee charged on a transaction.
type FeeLineRequest struct {
	FeeAmount   decimal.Decimal `json:"fee_amount"`
	FeeType     string          `json:"fee_type" binding:"required,safe_id"`
	Description string          `json:"description" binding:"max=255"`
}

// PostTransactionRequest is the request body for POST /api/v1/transactions.
// Recipient is accepted as an alias of Receiver.
type PostTransactionRequest struct {
	Reference       string           `json:"transaction_ref" binding:"omitempty,safe_id,max=64"`
	TransactionType string           `json:"transaction_type" binding:"required,safe_id"`
	Status          string           `json:"status" binding:"omitempty,oneof=pending completed failed cancelled"`
	Sender          PartyRequest     `json:"sender"`
	Receiver        *PartyRequest    `json:"receiver,omitempty"`
	Recipient       *PartyRequest    `json:"recipient,omitempty"`
	TransferAmount  decimal.Decimal  `json:"transfer_amount"`
	Currency        string           `json:"currency" binding:"required,len=3"`
	Fees            []FeeLineRequest `json:"fees" binding:"omitempty,dive"`
}

// RecordRevenueRequest is the request body for POST /api/v1/revenue.
type RecordRevenueRequest struct {
	Reference                string            `json:"transaction_ref" binding:"omitempty,safe_id,max=64"`
	RevenueType              string            `json:"revenue_type" binding:"required,safe_id"`
	Amount                   decimal.Decimal   `json:"revenue_amount"`
	Currency                 string            `json:"currency" binding:"required,len=3"`
	AssociatedTransactionRef string            `json:"associated_transaction_ref" binding:"omitempty,safe_id"`
	Status                   string            `json:"status" binding:"omitempty,oneof=pending settled"`
	TransactionDate          *time.Time        `json:"transaction_date,omitempty"`
	Metadata                 map[string]string `json:"metadata,omitempty"`
}

// SettleBatchRequest is the request body for POST /api/v1/settlements.
type SettleBatchRequest struct {
	RevenueIDs     []string   `json:"revenue_ids" binding:"required,min=1,max=500,dive,uuid"`
	BatchRef       string     `json:"batch_reference" binding:"omitempty,safe_id,max=64"`
	SettlementDate *time.Time `json:"settlement_date,omitempty"`
	Notes          string     `json:"notes" binding:"max=500"`
}

// RevenueListQuery holds the query string of GET /api/v1/revenue.
type RevenueListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending settled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// FeeBracketRequest is one band of a tiered rule.
type FeeBracketRequest struct {
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	FixedAmount    decimal.Decimal `json:"fixed_amount"`
	PercentageRate decimal.Decimal `json:"percentage_rate"`
}

// CreateFeeRuleRequest is the request body for POST /api/v1/fee-rules.
type CreateFeeRuleRequest struct {
	Name              string              `json:"name" binding:"required,max=100"`
	FeeType           string              `json:"fee_type" binding:"required,safe_id"`
	TransactionType   string              `json:"transaction_type" binding:"required,safe_id"`
	CalculationType   string              `json:"calculation_type" binding:"required,oneof=fixed percentage tiered hybrid"`
	FixedAmount       decimal.Decimal     `json:"fixed_amount"`
	PercentageRate    decimal.Decimal     `json:"percentage_rate"`
	TieredRates       []FeeBracketRequest `json:"tiered_rates" binding:"omitempty,dive"`
	MinimumFee        decimal.Decimal     `json:"minimum_fee"`
	MaximumFee        decimal.Decimal     `json:"maximum_fee"`
	Currency          string              `json:"currency" binding:"required,len=3"`
	ApplicableTiers   []string            `json:"applicable_tiers" binding:"omitempty,dive,tier_code|eq=ALL"`
	ApplicableRegions []string            `json:"applicable_regions" binding:"omitempty,dive,safe_id"`
	EffectiveStart    *time.Time          `json:"effective_start,omitempty"`
	EffectiveEnd      *time.Time          `json:"effective_end,omitempty"`
}

// ToDomain builds the rule with the calculation variant named by CalculationType.
func (r *CreateFeeRuleRequest) ToDomain() domain.FeeRule {
	rule := domain.FeeRule{
		Name:              r.Name,
		FeeType:           r.FeeType,
		TransactionType:   r.TransactionType,
		MinimumFee:        r.MinimumFee,
		MaximumFee:        r.MaximumFee,
		Currency:          r.Currency,
		ApplicableTiers:   r.ApplicableTiers,
		ApplicableRegions: r.ApplicableRegions,
		EffectiveEnd:      r.EffectiveEnd,
	}
	if r.EffectiveStart != nil {
		rule.EffectiveStart = *r.EffectiveStart
	}

	switch domain.CalculationType(r.CalculationType) {
	case domain.CalculationFixed:
		rule.Calculation = domain.FixedFee{Amount: r.FixedAmount}
	case domain.CalculationPercentage:
		rule.Calculation = domain.PercentageFee{Rate: r.PercentageRate}
	case domain.CalculationHybrid:
		rule.Calculation = domain.HybridFee{Amount: r.FixedAmount, Rate: r.PercentageRate}
	case domain.CalculationTiered:
		brackets := make([]domain.FeeBracket, 0, len(r.TieredRates))
		for _, b := range r.TieredRates {
			brackets = append(brackets, domain.FeeBracket{
				MinAmount:      b.MinAmount,
				MaxAmount:      b.MaxAmount,
				FixedAmount:    b.FixedAmount,
				PercentageRate: b.PercentageRate,
			})
		}
		rule.Calculation = domain.TieredFee{Brackets: brackets}
	}
	return rule
}

// FeeRuleListQuery holds the query string of GET /api/v1/fee-rules.
type FeeRuleListQuery struct {
	ActiveOnly bool `form:"active_only"`
}

// LedgerResponse is every entry posted under one reference.
type LedgerResponse struct {
	TransactionRef string               `json:"transaction_ref"`
	Entries        []domain.LedgerEntry `json:"entries"`
	TotalDebit     decimal.Decimal      `json:"total_debit"`
	TotalCredit    decimal.Decimal      `json:"total_credit"`
	Balanced       bool                 `json:"balanced"`
}

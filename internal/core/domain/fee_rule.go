package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wildcards accepted in FeeRule applicability lists and transaction type.
const (
	WildcardTier            = "ALL"
	WildcardRegion          = "GLOBAL"
	TransactionTypeAll      = "all"
	DefaultFeeRuleName      = "default"
	DefaultFeeRuleCurrency  = "USD"
	DefaultFeeRuleFeeType   = "transaction_fee"
	DefaultFeeRuleFixedCost = "1.00"
)

// CalculationType names a FeeCalculation variant.
type CalculationType string

const (
	CalculationFixed      CalculationType = "fixed"
	CalculationPercentage CalculationType = "percentage"
	CalculationTiered     CalculationType = "tiered"
	CalculationHybrid     CalculationType = "hybrid"
)

// FeeCalculation is one of FixedFee, PercentageFee, HybridFee or TieredFee.
type FeeCalculation interface {
	Type() CalculationType
}

// FixedFee charges a flat amount.
type FixedFee struct {
	Amount decimal.Decimal `json:"fixed_amount"`
}

// PercentageFee charges Rate percent of the amount.
type PercentageFee struct {
	Rate decimal.Decimal `json:"percentage_rate"`
}

// HybridFee charges a flat amount plus Rate percent.
type HybridFee struct {
	Amount decimal.Decimal `json:"fixed_amount"`
	Rate   decimal.Decimal `json:"percentage_rate"`
}

// FeeBracket is an inclusive [MinAmount, MaxAmount] amount band.
type FeeBracket struct {
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	FixedAmount    decimal.Decimal `json:"fixed_amount"`
	PercentageRate decimal.Decimal `json:"percentage_rate"`
}

// TieredFee picks the bracket containing the amount.
type TieredFee struct {
	Brackets []FeeBracket `json:"brackets"`
}

func (FixedFee) Type() CalculationType      { return CalculationFixed }
func (PercentageFee) Type() CalculationType { return CalculationPercentage }
func (HybridFee) Type() CalculationType     { return CalculationHybrid }
func (TieredFee) Type() CalculationType     { return CalculationTiered }

// EncodeCalculation serialises the variant parameters for storage.
func EncodeCalculation(c FeeCalculation) (CalculationType, []byte, error) {
	if c == nil {
		return "", nil, fmt.Errorf("fee calculation is nil")
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s calculation: %w", c.Type(), err)
	}
	return c.Type(), raw, nil
}

// DecodeCalculation rebuilds the variant stored under calculation type t.
func DecodeCalculation(t CalculationType, raw []byte) (FeeCalculation, error) {
	var (
		c   FeeCalculation
		err error
	)
	switch t {
	case CalculationFixed:
		var v FixedFee
		err = json.Unmarshal(raw, &v)
		c = v
	case CalculationPercentage:
		var v PercentageFee
		err = json.Unmarshal(raw, &v)
		c = v
	case CalculationHybrid:
		var v HybridFee
		err = json.Unmarshal(raw, &v)
		c = v
	case CalculationTiered:
		var v TieredFee
		err = json.Unmarshal(raw, &v)
		c = v
	default:
		return nil, fmt.Errorf("unknown calculation type %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s calculation: %w", t, err)
	}
	return c, nil
}

// FeeRule is an administratively configured pricing policy. Rules are
// created and deactivated, never edited, so historical fees stay reproducible.
type FeeRule struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	FeeType           string          `json:"fee_type"`
	TransactionType   string          `json:"transaction_type"`
	Calculation       FeeCalculation  `json:"-"`
	MinimumFee        decimal.Decimal `json:"minimum_fee"`
	MaximumFee        decimal.Decimal `json:"maximum_fee"`
	Currency          string          `json:"currency"`
	ApplicableTiers   []string        `json:"applicable_tiers"`
	ApplicableRegions []string        `json:"applicable_regions"`
	IsActive          bool            `json:"is_active"`
	EffectiveStart    time.Time       `json:"effective_start"`
	EffectiveEnd      *time.Time      `json:"effective_end,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

type feeRuleAlias FeeRule

type feeRuleJSON struct {
	feeRuleAlias
	CalculationType   CalculationType `json:"calculation_type"`
	CalculationParams json.RawMessage `json:"calculation_params"`
}

// MarshalJSON flattens the calculation variant into type + params.
func (r FeeRule) MarshalJSON() ([]byte, error) {
	t, raw, err := EncodeCalculation(r.Calculation)
	if err != nil {
		return nil, err
	}
	return json.Marshal(feeRuleJSON{
		feeRuleAlias:      feeRuleAlias(r),
		CalculationType:   t,
		CalculationParams: raw,
	})
}

// UnmarshalJSON restores the calculation variant from type + params.
func (r *FeeRule) UnmarshalJSON(data []byte) error {
	var aux feeRuleJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	calc, err := DecodeCalculation(aux.CalculationType, aux.CalculationParams)
	if err != nil {
		return err
	}
	*r = FeeRule(aux.feeRuleAlias)
	r.Calculation = calc
	return nil
}

// InEffect reports whether now falls within [EffectiveStart, EffectiveEnd).
func (r *FeeRule) InEffect(now time.Time) bool {
	if now.Before(r.EffectiveStart) {
		return false
	}
	return r.EffectiveEnd == nil || now.Before(*r.EffectiveEnd)
}

// AppliesToType reports whether the rule prices transactionType.
func (r *FeeRule) AppliesToType(transactionType string) bool {
	return r.TransactionType == transactionType || r.TransactionType == TransactionTypeAll
}

// DefaultFeeRule is returned when no configured rule applies. Pricing fails
// open: a flat 1.00 USD is always charged rather than rejecting the request.
func DefaultFeeRule() *FeeRule {
	return &FeeRule{
		Name:              DefaultFeeRuleName,
		FeeType:           DefaultFeeRuleFeeType,
		TransactionType:   TransactionTypeAll,
		Calculation:       FixedFee{Amount: decimal.RequireFromString(DefaultFeeRuleFixedCost)},
		Currency:          DefaultFeeRuleCurrency,
		ApplicableTiers:   []string{WildcardTier},
		ApplicableRegions: []string{WildcardRegion},
		IsActive:          true,
	}
}

// IsDefault reports whether r is the fail-open fallback rather than a stored rule.
func (r *FeeRule) IsDefault() bool {
	return r.ID == uuid.Nil && r.Name == DefaultFeeRuleName
}

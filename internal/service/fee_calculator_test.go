package service

import (
	"testing"

	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func threeBracketRule() *domain.FeeRule {
	return &domain.FeeRule{
		Calculation: domain.TieredFee{Brackets: []domain.FeeBracket{
			{MinAmount: dec("0"), MaxAmount: dec("100"), FixedAmount: dec("1.00")},
			{MinAmount: dec("100.01"), MaxAmount: dec("1000"), PercentageRate: dec("2.0")},
			{MinAmount: dec("1000.01"), MaxAmount: dec("10000"), PercentageRate: dec("1.5")},
		}},
	}
}

func TestComputeFee_Percentage(t *testing.T) {
	rule := &domain.FeeRule{
		Calculation: domain.PercentageFee{Rate: dec("2.5")},
		MinimumFee:  dec("1.00"),
		MaximumFee:  dec("75.00"),
	}

	assert.Equal(t, "25.00", ComputeFee(rule, dec("1000")).StringFixed(2))
	// 0.25 raw, raised to the minimum
	assert.Equal(t, "1.00", ComputeFee(rule, dec("10")).StringFixed(2))
	// 250 raw, capped at the maximum
	assert.Equal(t, "75.00", ComputeFee(rule, dec("10000")).StringFixed(2))
}

func TestComputeFee_Fixed(t *testing.T) {
	rule := &domain.FeeRule{Calculation: domain.FixedFee{Amount: dec("2.50")}}
	assert.True(t, ComputeFee(rule, dec("999")).Equal(dec("2.50")))
}

func TestComputeFee_Hybrid(t *testing.T) {
	rule := &domain.FeeRule{Calculation: domain.HybridFee{Amount: dec("0.50"), Rate: dec("1")}}
	assert.Equal(t, "1.70", ComputeFee(rule, dec("120")).StringFixed(2))
}

func TestComputeFee_Tiered(t *testing.T) {
	rule := threeBracketRule()

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"first bracket", "50", "1.00"},
		{"lower bound inclusive", "100.01", "2.00"},
		{"upper bound inclusive", "1000", "20.00"},
		{"third bracket", "5000", "75.00"},
		{"above every bracket uses the widest", "20000", "300.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeFee(rule, dec(tt.amount)).StringFixed(2))
		})
	}
}

func TestComputeFee_TieredUnsortedBrackets(t *testing.T) {
	rule := &domain.FeeRule{
		Calculation: domain.TieredFee{Brackets: []domain.FeeBracket{
			{MinAmount: dec("501"), MaxAmount: dec("5000"), FixedAmount: dec("5")},
			{MinAmount: dec("0"), MaxAmount: dec("500"), FixedAmount: dec("1")},
		}},
	}
	assert.Equal(t, "5.00", ComputeFee(rule, dec("9000")).StringFixed(2))
	assert.Equal(t, "1.00", ComputeFee(rule, dec("20")).StringFixed(2))
}

func TestComputeFee_RoundsToCents(t *testing.T) {
	rule := &domain.FeeRule{Calculation: domain.PercentageFee{Rate: dec("1.5")}}

	fee := ComputeFee(rule, dec("33.333"))
	// amount rounds to 33.33, 1.5% of that is 0.49995
	assert.Equal(t, "0.50", fee.StringFixed(2))
	assert.Equal(t, int32(-2), fee.Exponent())
}

func TestComputeFee_WithinBounds(t *testing.T) {
	rule := &domain.FeeRule{
		Calculation: domain.HybridFee{Amount: dec("0.30"), Rate: dec("2.9")},
		MinimumFee:  dec("0.50"),
		MaximumFee:  dec("20.00"),
	}
	for _, amt := range []string{"0.01", "1", "17.23", "100", "689.66", "5000", "1000000"} {
		fee := ComputeFee(rule, dec(amt))
		assert.True(t, fee.GreaterThanOrEqual(rule.MinimumFee), "amount %s", amt)
		assert.True(t, fee.LessThanOrEqual(rule.MaximumFee), "amount %s", amt)
		assert.True(t, fee.Equal(fee.Round(2)), "amount %s", amt)
	}
}

func TestComputeFee_Deterministic(t *testing.T) {
	rule := threeBracketRule()
	first := ComputeFee(rule, dec("737.37"))
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(ComputeFee(rule, dec("737.37"))))
	}
}

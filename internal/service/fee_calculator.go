package service

import (
	"wallet-ledger/internal/core/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeFee converts a selected rule and amount into a fee. Amount and
// result are rounded half away from zero to 2 places. The function is pure.
func ComputeFee(rule *domain.FeeRule, amount decimal.Decimal) decimal.Decimal {
	amt := amount.Round(2)

	var fee decimal.Decimal
	switch c := rule.Calculation.(type) {
	case domain.FixedFee:
		fee = c.Amount
	case domain.PercentageFee:
		fee = percentOf(amt, c.Rate)
	case domain.HybridFee:
		fee = c.Amount.Add(percentOf(amt, c.Rate))
	case domain.TieredFee:
		if b, ok := bracketFor(c.Brackets, amt); ok {
			fee = b.FixedAmount.Add(percentOf(amt, b.PercentageRate))
		}
	}

	if rule.MinimumFee.IsPositive() && fee.LessThan(rule.MinimumFee) {
		fee = rule.MinimumFee
	}
	if rule.MaximumFee.IsPositive() && fee.GreaterThan(rule.MaximumFee) {
		fee = rule.MaximumFee
	}
	return fee.Round(2)
}

func percentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred)
}

// bracketFor returns the bracket containing amount (bounds inclusive). An
// amount outside every bracket is priced by the bracket with the largest
// MaxAmount.
func bracketFor(brackets []domain.FeeBracket, amount decimal.Decimal) (domain.FeeBracket, bool) {
	if len(brackets) == 0 {
		return domain.FeeBracket{}, false
	}
	widest := brackets[0]
	for _, b := range brackets {
		if amount.GreaterThanOrEqual(b.MinAmount) && amount.LessThanOrEqual(b.MaxAmount) {
			return b, true
		}
		if b.MaxAmount.GreaterThan(widest.MaxAmount) {
			widest = b
		}
	}
	return widest, true
}

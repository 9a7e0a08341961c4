package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier classifies a wallet owner and drives fee rates and transaction limits.
type Tier string

const (
	TierBasic    Tier = "BASIC"
	TierStandard Tier = "STANDARD"
	TierPremium  Tier = "PREMIUM"
	TierVIP      Tier = "VIP"
)

// IsKnown reports whether t is one of the four configured tiers.
func (t Tier) IsKnown() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium, TierVIP:
		return true
	}
	return false
}

// TierLimits is the monthly count and per-transaction amount cap for a tier.
type TierLimits struct {
	MaxMonthlyTransactions int
	MaxAmount              decimal.Decimal
}

var tierLimits = map[Tier]TierLimits{
	TierBasic:    {MaxMonthlyTransactions: 10, MaxAmount: decimal.NewFromInt(500)},
	TierStandard: {MaxMonthlyTransactions: 50, MaxAmount: decimal.NewFromInt(2000)},
	TierPremium:  {MaxMonthlyTransactions: 150, MaxAmount: decimal.NewFromInt(10000)},
	TierVIP:      {MaxMonthlyTransactions: 500, MaxAmount: decimal.NewFromInt(50000)},
}

// LimitsForTier returns the limits for t. Unknown tiers get STANDARD limits.
func LimitsForTier(t Tier) TierLimits {
	if l, ok := tierLimits[t]; ok {
		return l
	}
	return tierLimits[TierStandard]
}

// Wallet is owned by exactly one entity (user, merchant, or driver) and
// created outside this service. It is never deleted, only deactivated.
type Wallet struct {
	ID             uuid.UUID       `json:"id"`
	EntityRef      string          `json:"entity_ref"`
	Balance        decimal.Decimal `json:"balance"`
	Currency       string          `json:"currency"`
	Tier           Tier            `json:"tier"`
	IsActive       bool            `json:"is_active"`
	MonthlyTxCount int             `json:"monthly_tx_count"`
	CounterResetAt time.Time       `json:"counter_reset_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MonthStart returns the first instant of t's calendar month in UTC.
func MonthStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EffectiveMonthlyCount is the counter as of now. A counter last reset
// before the current calendar month has rolled over and counts as zero.
func (w *Wallet) EffectiveMonthlyCount(now time.Time) int {
	if w.CounterResetAt.Before(MonthStart(now)) {
		return 0
	}
	return w.MonthlyTxCount
}

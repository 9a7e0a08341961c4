package service

import (
	"context"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletGuardService implements ports.WalletGuard. It reads only; the
// authoritative balance check is the conditional debit at posting time.
type WalletGuardService struct {
	walletRepo ports.WalletRepository
	catalog    ports.FeeCatalog
	region     string
	tolerance  decimal.Decimal
	log        zerolog.Logger
	now        func() time.Time
}

// NewWalletGuardService creates a new WalletGuardService.
// TODO: take the region from wallet state once wallets carry one.
func NewWalletGuardService(
	walletRepo ports.WalletRepository,
	catalog ports.FeeCatalog,
	region string,
	tolerance decimal.Decimal,
	log zerolog.Logger,
) *WalletGuardService {
	return &WalletGuardService{
		walletRepo: walletRepo,
		catalog:    catalog,
		region:     region,
		tolerance:  tolerance,
		log:        log,
		now:        time.Now,
	}
}

// CheckEligibility prices the transaction for the wallet and checks it
// against the balance and the tier limits.
func (s *WalletGuardService) CheckEligibility(
	ctx context.Context,
	walletRef string,
	amount decimal.Decimal,
	transactionType string,
) (*ports.Eligibility, error) {
	if walletRef == "" {
		return nil, apperror.Validation("wallet reference is required")
	}
	if !amount.IsPositive() {
		return nil, apperror.Validation("amount must be positive")
	}

	wallet, err := s.walletRepo.GetByEntityRef(ctx, walletRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !wallet.IsActive {
		return nil, apperror.ErrWalletInactive()
	}

	now := s.now()
	rule, err := s.catalog.SelectFeeRule(ctx, transactionType, amount, wallet.Tier, s.region, now)
	if err != nil {
		return nil, err
	}
	fee := ComputeFee(rule, amount)
	total := amount.Round(2).Add(fee)

	if wallet.Balance.Add(s.tolerance).LessThan(total) {
		return nil, apperror.ErrInsufficientBalance()
	}

	limits := domain.LimitsForTier(wallet.Tier)
	if wallet.EffectiveMonthlyCount(now) >= limits.MaxMonthlyTransactions {
		return nil, apperror.ErrMonthlyLimitReached()
	}
	if amount.GreaterThan(limits.MaxAmount) {
		return nil, apperror.ErrAmountExceedsLimit()
	}

	s.log.Debug().
		Str("wallet_ref", walletRef).
		Str("amount", amount.String()).
		Str("fee", fee.String()).
		Msg("wallet eligible")

	return &ports.Eligibility{
		WalletRef: walletRef,
		FeeAmount: fee,
		FeeType:   rule.FeeType,
		Total:     total,
		Rule:      rule,
	}, nil
}

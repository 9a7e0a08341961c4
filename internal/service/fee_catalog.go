package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	scoreExplicit = 10
	scoreWildcard = 5
)

// FeeCatalogService implements ports.FeeCatalog.
type FeeCatalogService struct {
	repo          ports.FeeRuleRepository
	cache         ports.FeeRuleCache
	cacheTTL      time.Duration
	defaultRegion string
	log           zerolog.Logger
	now           func() time.Time
}

// NewFeeCatalogService creates a new FeeCatalogService. cache may be nil.
func NewFeeCatalogService(
	repo ports.FeeRuleRepository,
	cache ports.FeeRuleCache,
	cacheTTL time.Duration,
	defaultRegion string,
	log zerolog.Logger,
) *FeeCatalogService {
	return &FeeCatalogService{
		repo:          repo,
		cache:         cache,
		cacheTTL:      cacheTTL,
		defaultRegion: defaultRegion,
		log:           log,
		now:           time.Now,
	}
}

type scoredRule struct {
	rule        domain.FeeRule
	tierScore   int
	regionScore int
}

// SelectFeeRule returns the most specific rule in effect for the request.
// When nothing applies it returns domain.DefaultFeeRule instead of failing.
func (s *FeeCatalogService) SelectFeeRule(
	ctx context.Context,
	transactionType string,
	_ decimal.Decimal,
	tier domain.Tier,
	region string,
	now time.Time,
) (*domain.FeeRule, error) {
	rules, err := s.candidates(ctx, transactionType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load fee rules: %w", err))
	}

	var scored []scoredRule
	for _, r := range rules {
		if !r.IsActive || !r.AppliesToType(transactionType) || !r.InEffect(now) {
			continue
		}
		ts := applicability(r.ApplicableTiers, string(tier), domain.WildcardTier)
		rs := applicability(r.ApplicableRegions, region, domain.WildcardRegion)
		if ts == 0 || rs == 0 {
			continue
		}
		scored = append(scored, scoredRule{rule: r, tierScore: ts, regionScore: rs})
	}

	if len(scored) == 0 {
		s.log.Debug().
			Str("transaction_type", transactionType).
			Str("tier", string(tier)).
			Str("region", region).
			Msg("no fee rule applies, using default")
		return domain.DefaultFeeRule(), nil
	}

	slices.SortStableFunc(scored, func(a, b scoredRule) int {
		if a.tierScore != b.tierScore {
			return b.tierScore - a.tierScore
		}
		if a.regionScore != b.regionScore {
			return b.regionScore - a.regionScore
		}
		return b.rule.EffectiveStart.Compare(a.rule.EffectiveStart)
	})

	best := scored[0].rule
	return &best, nil
}

// applicability scores a tier or region list against the requester's value.
func applicability(list []string, value, wildcard string) int {
	score := 0
	for _, v := range list {
		if v == value && value != "" {
			return scoreExplicit
		}
		if v == wildcard {
			score = scoreWildcard
		}
	}
	return score
}

// candidates loads active rules for transactionType through the cache.
func (s *FeeCatalogService) candidates(ctx context.Context, transactionType string) ([]domain.FeeRule, error) {
	if s.cache != nil {
		rules, ok, err := s.cache.Get(ctx, transactionType)
		if err != nil {
			s.log.Warn().Err(err).Str("transaction_type", transactionType).Msg("fee rule cache read failed, falling through to DB")
		} else if ok {
			return rules, nil
		}
	}

	rules, err := s.repo.ListActiveByTransactionType(ctx, transactionType)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, transactionType, rules, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("transaction_type", transactionType).Msg("failed to cache fee rules")
		}
	}
	return rules, nil
}

// QuoteFee prices a prospective transaction without touching any wallet.
func (s *FeeCatalogService) QuoteFee(ctx context.Context, req ports.FeeQuoteRequest) (*ports.FeeQuote, error) {
	if req.TransactionType == "" {
		return nil, apperror.Validation("transaction type is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("amount must be positive")
	}
	tier := req.Tier
	if tier == "" {
		tier = domain.TierStandard
	}
	region := req.Region
	if region == "" {
		region = s.defaultRegion
	}

	rule, err := s.SelectFeeRule(ctx, req.TransactionType, req.Amount, tier, region, s.now())
	if err != nil {
		return nil, err
	}
	fee := ComputeFee(rule, req.Amount)

	return &ports.FeeQuote{
		Rule:      rule,
		FeeAmount: fee,
		Total:     req.Amount.Round(2).Add(fee),
	}, nil
}

// CreateFeeRule validates and stores a new rule. Rules are never edited
// afterwards; a change is a new rule plus deactivation of the old one.
func (s *FeeCatalogService) CreateFeeRule(ctx context.Context, rule domain.FeeRule) (*domain.FeeRule, error) {
	if err := validateFeeRule(&rule); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	rule.ID = uuid.New()
	rule.IsActive = true
	rule.CreatedAt = now
	if rule.EffectiveStart.IsZero() {
		rule.EffectiveStart = now
	}
	if len(rule.ApplicableTiers) == 0 {
		rule.ApplicableTiers = []string{domain.WildcardTier}
	}
	if len(rule.ApplicableRegions) == 0 {
		rule.ApplicableRegions = []string{domain.WildcardRegion}
	}
	if rule.EffectiveEnd != nil && !rule.EffectiveEnd.After(rule.EffectiveStart) {
		return nil, apperror.Validation("effective end must be after effective start")
	}

	if err := s.repo.Create(ctx, &rule); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create fee rule: %w", err))
	}
	s.invalidate(ctx, rule.TransactionType)

	s.log.Info().
		Str("fee_rule_id", rule.ID.String()).
		Str("transaction_type", rule.TransactionType).
		Str("calculation_type", string(rule.Calculation.Type())).
		Msg("fee rule created")

	return &rule, nil
}

func validateFeeRule(rule *domain.FeeRule) error {
	if rule.Name == "" {
		return apperror.Validation("name is required")
	}
	if rule.FeeType == "" {
		return apperror.Validation("fee type is required")
	}
	if rule.TransactionType == "" {
		return apperror.Validation("transaction type is required")
	}
	if rule.Currency == "" {
		return apperror.Validation("currency is required")
	}
	if rule.MinimumFee.IsNegative() || rule.MaximumFee.IsNegative() {
		return apperror.Validation("minimum and maximum fee must not be negative")
	}
	if rule.MinimumFee.IsPositive() && rule.MaximumFee.IsPositive() && rule.MinimumFee.GreaterThan(rule.MaximumFee) {
		return apperror.Validation("minimum fee must not exceed maximum fee")
	}

	switch c := rule.Calculation.(type) {
	case domain.FixedFee:
		if c.Amount.IsNegative() {
			return apperror.Validation("fixed amount must not be negative")
		}
	case domain.PercentageFee:
		if c.Rate.IsNegative() {
			return apperror.Validation("percentage rate must not be negative")
		}
	case domain.HybridFee:
		if c.Amount.IsNegative() || c.Rate.IsNegative() {
			return apperror.Validation("fixed amount and percentage rate must not be negative")
		}
	case domain.TieredFee:
		if len(c.Brackets) == 0 {
			return apperror.Validation("tiered rule needs at least one bracket")
		}
		for i, b := range c.Brackets {
			if b.MinAmount.IsNegative() || b.FixedAmount.IsNegative() || b.PercentageRate.IsNegative() {
				return apperror.Validation(fmt.Sprintf("bracket %d has a negative value", i+1))
			}
			if b.MinAmount.GreaterThan(b.MaxAmount) {
				return apperror.Validation(fmt.Sprintf("bracket %d min amount exceeds max amount", i+1))
			}
		}
	default:
		return apperror.Validation("calculation type must be fixed, percentage, tiered or hybrid")
	}
	return nil
}

// DeactivateFeeRule retires a rule so it is no longer selected.
func (s *FeeCatalogService) DeactivateFeeRule(ctx context.Context, id uuid.UUID) (*domain.FeeRule, error) {
	rule, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("deactivate fee rule: %w", err))
	}
	if rule == nil {
		return nil, apperror.ErrNotFound("fee rule")
	}
	s.invalidate(ctx, rule.TransactionType)

	s.log.Info().Str("fee_rule_id", id.String()).Msg("fee rule deactivated")
	return rule, nil
}

// GetFeeRule returns a single rule.
func (s *FeeCatalogService) GetFeeRule(ctx context.Context, id uuid.UUID) (*domain.FeeRule, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get fee rule: %w", err))
	}
	if rule == nil {
		return nil, apperror.ErrNotFound("fee rule")
	}
	return rule, nil
}

// ListFeeRules returns all rules, or only active ones.
func (s *FeeCatalogService) ListFeeRules(ctx context.Context, activeOnly bool) ([]domain.FeeRule, error) {
	rules, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list fee rules: %w", err))
	}
	return rules, nil
}

func (s *FeeCatalogService) invalidate(ctx context.Context, transactionType string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, transactionType); err != nil {
		s.log.Warn().Err(err).Str("transaction_type", transactionType).Msg("failed to invalidate fee rule cache")
	}
}

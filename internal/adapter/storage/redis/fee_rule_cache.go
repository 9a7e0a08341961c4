package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const feeRulePrefix = "fee_rules:"

// FeeRuleCache implements ports.FeeRuleCache. Each key holds the JSON list of
// active rules for one transaction type.
type FeeRuleCache struct {
	client goredis.UniversalClient
	prefix string
}

// NewFeeRuleCache creates a Redis-backed fee-rule cache.
func NewFeeRuleCache(client goredis.UniversalClient) *FeeRuleCache {
	return &FeeRuleCache{client: client, prefix: feeRulePrefix}
}

// Get returns the cached rules for transactionType. ok is false on a miss.
func (c *FeeRuleCache) Get(ctx context.Context, transactionType string) ([]domain.FeeRule, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+transactionType).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis fee rules get: %w", err)
	}

	var rules []domain.FeeRule
	if err := json.Unmarshal(val, &rules); err != nil {
		return nil, false, fmt.Errorf("decode cached fee rules: %w", err)
	}
	return rules, true, nil
}

// Set stores rules for transactionType with a TTL.
func (c *FeeRuleCache) Set(ctx context.Context, transactionType string, rules []domain.FeeRule, ttl time.Duration) error {
	if rules == nil {
		rules = []domain.FeeRule{}
	}
	val, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("encode fee rules: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+transactionType, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis fee rules set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list for transactionType. A rule for "all"
// appears in every type's list, so that case clears the whole prefix.
func (c *FeeRuleCache) Invalidate(ctx context.Context, transactionType string) error {
	if transactionType != domain.TransactionTypeAll {
		if err := c.client.Del(ctx, c.prefix+transactionType).Err(); err != nil {
			return fmt.Errorf("redis fee rules del: %w", err)
		}
		return nil
	}

	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis fee rules scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis fee rules del: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"
)

const healthTimeout = 2 * time.Second

// healthQuery touches the journal table, so an unmigrated database is
// reported as unhealthy rather than only an unreachable one.
const healthQuery = "SELECT 1 FROM ledger_entries LIMIT 1"

// HealthCheck implements ports.HealthChecker for the journal database.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if _, err := h.pool.Exec(ctx, healthQuery); err != nil {
		return fmt.Errorf("journal database: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string { return "postgresql" }

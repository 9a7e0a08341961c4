package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"wallet-ledger/internal/core/ports"
	"wallet-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 3 * time.Second

type dependencyHealth struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are pinged in parallel; any
// failure reports the service as degraded with 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		results := make([]dependencyHealth, len(checkers))
		var wg sync.WaitGroup
		for i, checker := range checkers {
			wg.Add(1)
			go func(i int, checker ports.HealthChecker) {
				defer wg.Done()
				start := time.Now()
				err := checker.Ping(ctx)
				results[i] = dependencyHealth{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
				if err != nil {
					results[i].Status = "unhealthy"
					results[i].Error = err.Error()
				}
			}(i, checker)
		}
		wg.Wait()

		status, code := "healthy", http.StatusOK
		deps := make(map[string]dependencyHealth, len(checkers))
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
			if results[i].Error != "" {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"service":      logger.ServiceName,
			"status":       status,
			"checked_at":   time.Now().UTC().Format(time.RFC3339),
			"dependencies": deps,
		})
	}
}

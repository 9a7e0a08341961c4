package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-ledger/internal/core/domain"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
}

// auditedRoutes maps write routes (gin full paths) to audit actions.
var auditedRoutes = map[string]auditRoute{
	"POST /api/v1/transactions":             {domain.AuditActionPostTransaction, "transaction"},
	"POST /api/v1/revenue":                  {domain.AuditActionRecordRevenue, "revenue"},
	"POST /api/v1/settlements":              {domain.AuditActionSettleBatch, "settlement"},
	"POST /api/v1/fee-rules":                {domain.AuditActionCreateFeeRule, "fee_rule"},
	"POST /api/v1/fee-rules/:id/deactivate": {domain.AuditActionDeactivateFeeRule, "fee_rule"},
}

// AuditLog creates an audit middleware that logs successful write operations.
// Handlers name the affected resource with c.Set(CtxResourceID, ...).
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		route, ok := auditedRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      c.GetString(CtxActorID),
			ActorRole:    c.GetString(CtxActorRole),
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   c.GetString(CtxResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

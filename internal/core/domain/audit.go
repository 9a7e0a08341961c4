package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionPostTransaction   AuditAction = "POST_TRANSACTION"
	AuditActionRecordRevenue     AuditAction = "RECORD_REVENUE"
	AuditActionSettleBatch       AuditAction = "SETTLE_BATCH"
	AuditActionCreateFeeRule     AuditAction = "CREATE_FEE_RULE"
	AuditActionDeactivateFeeRule AuditAction = "DEACTIVATE_FEE_RULE"
)

// AuditLog records a single write performed by an authenticated actor.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      string      `json:"actor_id,omitempty"`
	ActorRole    string      `json:"actor_role,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}

package models

import "time"

type AuditLog struct {
	ID          string                 `json:"id" bson:"id"`
	OrgID       string                 `json:"orgId" bson:"org_id"`
	UserID      string                 `json:"userId" bson:"user_id"`
	Module      string                 `json:"module" bson:"module"`
	Action      string                 `json:"action" bson:"action"`
	RecordID    string                 `json:"recordId,omitempty" bson:"record_id,omitempty"`
	Description string                 `json:"description" bson:"description"`
	Metadata    map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"createdAt" bson:"created_at"`
}

// ContextSwitchMetadata is stored in AuditLog.Metadata whenever impersonation
// starts or ends.
type ContextSwitchMetadata struct {
	FromUserType string `json:"fromUserType"`
	ToUserType   string `json:"toUserType"`
	TargetOrgID  string `json:"targetOrgId"`
}

package models

import "time"

// Session lifecycle: created at login, updated on heartbeat, ended by
// explicit termination or the expiry sweep. Impersonation never mutates a
// session row; it lives entirely in the token.
type Session struct {
	ID                string     `json:"id" bson:"id"`
	UserID            string     `json:"userId" bson:"user_id"`
	OrgID             string     `json:"orgId" bson:"org_id"`
	TokenHash         string     `json:"-" bson:"token_hash"`
	IsActive          bool       `json:"isActive" bson:"is_active"`
	CreatedAt         time.Time  `json:"createdAt" bson:"created_at"`
	LastActivity      time.Time  `json:"lastActivity" bson:"last_activity"`
	TerminatedAt      *time.Time `json:"terminatedAt,omitempty" bson:"terminated_at,omitempty"`
	TerminatedBy      string     `json:"terminatedBy,omitempty" bson:"terminated_by,omitempty"`
	TerminationReason string     `json:"terminationReason,omitempty" bson:"termination_reason,omitempty"`
}

package models

import "time"

const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusFulfilled = "fulfilled"
	RequestStatusCancelled = "cancelled"

	RequestUrgencyRoutine  = "routine"
	RequestUrgencyUrgent   = "urgent"
	RequestUrgencyCritical = "critical"
)

// BloodRequest is an inter-organization request. OrgID is the requesting org;
// TargetOrgID is the org asked to fulfill it.
type BloodRequest struct {
	ID            string     `json:"id" bson:"id"`
	OrgID         string     `json:"orgId" bson:"org_id"`
	TargetOrgID   string     `json:"targetOrgId" bson:"target_org_id"`
	BloodType     string     `json:"bloodType" bson:"blood_type"`
	ComponentType string     `json:"componentType" bson:"component_type"`
	Quantity      int        `json:"quantity" bson:"quantity"`
	Urgency       string     `json:"urgency" bson:"urgency"`
	Status        string     `json:"status" bson:"status"`
	RequestedBy   string     `json:"requestedBy" bson:"requested_by"`
	DecidedBy     string     `json:"decidedBy,omitempty" bson:"decided_by,omitempty"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty" bson:"decided_at,omitempty"`
	DecisionNote  string     `json:"decisionNote,omitempty" bson:"decision_note,omitempty"`
	TimeModel     `bson:",inline"`
}

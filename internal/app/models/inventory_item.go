package models

import "time"

const (
	InventoryStatusAvailable = "available"
	InventoryStatusReserved  = "reserved"
	InventoryStatusIssued    = "issued"
	InventoryStatusDiscarded = "discarded"
	InventoryStatusExpired   = "expired"
)

type InventoryItem struct {
	ID            string    `json:"id" bson:"id"`
	OrgID         string    `json:"orgId" bson:"org_id"`
	ComponentID   string    `json:"componentId" bson:"component_id"`
	BloodType     string    `json:"bloodType" bson:"blood_type"`
	ComponentType string    `json:"componentType" bson:"component_type"`
	Status        string    `json:"status" bson:"status"`
	ExpiresAt     time.Time `json:"expiresAt" bson:"expires_at"`
	ReservedFor   string    `json:"reservedFor,omitempty" bson:"reserved_for,omitempty"`
	TimeModel     `bson:",inline"`
}

// StockSummary is an aggregation row: available units per blood type and
// component type within an org scope.
type StockSummary struct {
	BloodType     string `json:"bloodType" bson:"blood_type"`
	ComponentType string `json:"componentType" bson:"component_type"`
	Units         int    `json:"units" bson:"units"`
}

package models

import "time"

const (
	ShipmentStatusDispatched = "dispatched"
	ShipmentStatusInTransit  = "in_transit"
	ShipmentStatusDelivered  = "delivered"
)

type TemperatureReading struct {
	RecordedAt   time.Time `json:"recordedAt" bson:"recorded_at"`
	TemperatureC float64   `json:"temperatureC" bson:"temperature_c"`
	RecordedBy   string    `json:"recordedBy" bson:"recorded_by"`
}

// Shipment moves reserved units for an approved request. OrgID is the
// fulfilling org. Temperature readings are appended, never rewritten.
type Shipment struct {
	ID             string               `json:"id" bson:"id"`
	OrgID          string               `json:"orgId" bson:"org_id"`
	RequestID      string               `json:"requestId" bson:"request_id"`
	Status         string               `json:"status" bson:"status"`
	Courier        string               `json:"courier" bson:"courier"`
	DispatchedAt   time.Time            `json:"dispatchedAt" bson:"dispatched_at"`
	DeliveredAt    *time.Time           `json:"deliveredAt,omitempty" bson:"delivered_at,omitempty"`
	TemperatureLog []TemperatureReading `json:"temperatureLog" bson:"temperature_log"`
	TimeModel      `bson:",inline"`
}

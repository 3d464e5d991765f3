package models

import "time"

const (
	DonationStatusCollected = "collected"
	DonationStatusTested    = "tested"
	DonationStatusProcessed = "processed"
	DonationStatusDiscarded = "discarded"
)

// DonationSummaryRow is an aggregation row: donation count and collected
// volume per blood type within an org scope and date range.
type DonationSummaryRow struct {
	BloodType string `json:"bloodType" bson:"blood_type"`
	Count     int    `json:"count" bson:"count"`
	VolumeML  int    `json:"volumeMl" bson:"volume_ml"`
}

type Donation struct {
	ID             string    `json:"id" bson:"id"`
	OrgID          string    `json:"orgId" bson:"org_id"`
	DonorID        string    `json:"donorId" bson:"donor_id"`
	DonationCode   string    `json:"donationCode" bson:"donation_code"`
	BloodType      string    `json:"bloodType" bson:"blood_type"`
	VolumeML       int       `json:"volumeMl" bson:"volume_ml"`
	Status         string    `json:"status" bson:"status"`
	CollectedAt    time.Time `json:"collectedAt" bson:"collected_at"`
	PhlebotomistID string    `json:"phlebotomistId" bson:"phlebotomist_id"`
	TimeModel      `bson:",inline"`
}

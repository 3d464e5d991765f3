package models

import "time"

const (
	ComponentTypeWholeBlood = "whole_blood"
	ComponentTypeRBC        = "rbc"
	ComponentTypePlasma     = "plasma"
	ComponentTypePlatelets  = "platelets"
	ComponentTypeCryo       = "cryo"
)

const (
	QCStatusPending  = "pending"
	QCStatusApproved = "approved"
	QCStatusRejected = "rejected"
)

type BloodComponent struct {
	ID            string    `json:"id" bson:"id"`
	OrgID         string    `json:"orgId" bson:"org_id"`
	DonationID    string    `json:"donationId" bson:"donation_id"`
	ComponentType string    `json:"componentType" bson:"component_type"`
	BloodType     string    `json:"bloodType" bson:"blood_type"`
	VolumeML      int       `json:"volumeMl" bson:"volume_ml"`
	ExpiresAt     time.Time `json:"expiresAt" bson:"expires_at"`
	QCStatus      string    `json:"qcStatus" bson:"qc_status"`
	QCNote        string    `json:"qcNote,omitempty" bson:"qc_note,omitempty"`
	QCBy          string    `json:"qcBy,omitempty" bson:"qc_by,omitempty"`
	TimeModel     `bson:",inline"`
}

package models

import "time"

var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

type Donor struct {
	ID            string     `json:"id" bson:"id"`
	OrgID         string     `json:"orgId" bson:"org_id"`
	DonorCode     string     `json:"donorCode" bson:"donor_code"`
	FullName      string     `json:"fullName" bson:"full_name"`
	BloodType     string     `json:"bloodType" bson:"blood_type"`
	Phone         string     `json:"phone" bson:"phone"`
	Email         string     `json:"email,omitempty" bson:"email,omitempty"`
	DateOfBirth   time.Time  `json:"dateOfBirth" bson:"date_of_birth"`
	Gender        string     `json:"gender" bson:"gender"`
	IsEligible    bool       `json:"isEligible" bson:"is_eligible"`
	DeferredUntil *time.Time `json:"deferredUntil,omitempty" bson:"deferred_until,omitempty"`
	LastDonation  *time.Time `json:"lastDonation,omitempty" bson:"last_donation,omitempty"`
	TimeModel     `bson:",inline"`
}

package models

const (
	MarkerResultNonReactive = "non_reactive"
	MarkerResultReactive    = "reactive"

	LabTestOverallPassed   = "passed"
	LabTestOverallReactive = "reactive"
)

// LabTest records the serology panel for one donation. Any reactive marker
// makes the overall result reactive and flags the donation for discard.
type LabTest struct {
	ID         string `json:"id" bson:"id"`
	OrgID      string `json:"orgId" bson:"org_id"`
	DonationID string `json:"donationId" bson:"donation_id"`
	HIV        string `json:"hiv" bson:"hiv"`
	HBsAg      string `json:"hbsag" bson:"hbsag"`
	HCV        string `json:"hcv" bson:"hcv"`
	Syphilis   string `json:"syphilis" bson:"syphilis"`
	Malaria    string `json:"malaria" bson:"malaria"`
	Overall    string `json:"overall" bson:"overall"`
	TestedBy   string `json:"testedBy" bson:"tested_by"`
	TimeModel  `bson:",inline"`
}

func (t *LabTest) ComputeOverall() string {
	for _, marker := range []string{t.HIV, t.HBsAg, t.HCV, t.Syphilis, t.Malaria} {
		if marker == MarkerResultReactive {
			return LabTestOverallReactive
		}
	}
	return LabTestOverallPassed
}

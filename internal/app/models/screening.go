package models

const (
	ScreeningOutcomePassed   = "passed"
	ScreeningOutcomeDeferred = "deferred"
)

type Screening struct {
	ID            string  `json:"id" bson:"id"`
	OrgID         string  `json:"orgId" bson:"org_id"`
	DonorID       string  `json:"donorId" bson:"donor_id"`
	HemoglobinGDL float64 `json:"hemoglobinGdl" bson:"hemoglobin_gdl"`
	BloodPressure string  `json:"bloodPressure" bson:"blood_pressure"`
	PulseBPM      int     `json:"pulseBpm" bson:"pulse_bpm"`
	TemperatureC  float64 `json:"temperatureC" bson:"temperature_c"`
	WeightKG      float64 `json:"weightKg" bson:"weight_kg"`
	Outcome       string  `json:"outcome" bson:"outcome"`
	DeferralDays  int     `json:"deferralDays,omitempty" bson:"deferral_days,omitempty"`
	Notes         string  `json:"notes,omitempty" bson:"notes,omitempty"`
	ScreenedBy    string  `json:"screenedBy" bson:"screened_by"`
	TimeModel     `bson:",inline"`
}

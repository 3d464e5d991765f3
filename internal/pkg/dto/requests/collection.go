package requests

type CreateScreening struct {
	DonorID       string  `json:"donorId" validate:"required,uuid4"`
	HemoglobinGDL float64 `json:"hemoglobinGdl" validate:"required,gt=0"`
	BloodPressure string  `json:"bloodPressure" validate:"required,max=10"`
	PulseBPM      int     `json:"pulseBpm" validate:"required,gt=0"`
	TemperatureC  float64 `json:"temperatureC" validate:"required,gt=0"`
	WeightKG      float64 `json:"weightKg" validate:"required,gt=0"`
	Outcome       string  `json:"outcome" validate:"required,oneof=passed deferred"`
	DeferralDays  int     `json:"deferralDays,omitempty" validate:"omitempty,gte=1"`
	Notes         string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type CreateDonation struct {
	DonorID  string `json:"donorId" validate:"required,uuid4"`
	VolumeML int    `json:"volumeMl" validate:"required,gt=0"`
}

type CreateLabTest struct {
	DonationID string `json:"donationId" validate:"required,uuid4"`
	HIV        string `json:"hiv" validate:"required,oneof=non_reactive reactive"`
	HBsAg      string `json:"hbsag" validate:"required,oneof=non_reactive reactive"`
	HCV        string `json:"hcv" validate:"required,oneof=non_reactive reactive"`
	Syphilis   string `json:"syphilis" validate:"required,oneof=non_reactive reactive"`
	Malaria    string `json:"malaria" validate:"required,oneof=non_reactive reactive"`
}

type ComponentSpec struct {
	ComponentType string `json:"componentType" validate:"required,oneof=whole_blood rbc plasma platelets cryo"`
	VolumeML      int    `json:"volumeMl" validate:"required,gt=0"`
	ShelfLifeDays int    `json:"shelfLifeDays" validate:"required,gt=0"`
}

type ProcessComponents struct {
	DonationID string          `json:"donationId" validate:"required,uuid4"`
	Components []ComponentSpec `json:"components" validate:"required,min=1,dive"`
}

type QCDecision struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Note     string `json:"note,omitempty" validate:"omitempty,max=500"`
}

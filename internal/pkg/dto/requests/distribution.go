package requests

type SearchInventory struct {
	BloodType     string `json:"bloodType,omitempty" validate:"omitempty,blood_type"`
	ComponentType string `json:"componentType,omitempty" validate:"omitempty,oneof=whole_blood rbc plasma platelets cryo"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=available reserved issued discarded expired"`
}

type UpdateInventoryStatus struct {
	Status string `json:"status" validate:"required,oneof=available reserved issued discarded expired"`
}

type CreateBloodRequest struct {
	TargetOrgID   string `json:"targetOrgId" validate:"required,uuid4"`
	BloodType     string `json:"bloodType" validate:"required,blood_type"`
	ComponentType string `json:"componentType" validate:"required,oneof=whole_blood rbc plasma platelets cryo"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	Urgency       string `json:"urgency" validate:"required,oneof=routine urgent critical"`
}

type DecideBloodRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Note     string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type CreateShipment struct {
	RequestID string `json:"requestId" validate:"required,uuid4"`
	Courier   string `json:"courier" validate:"required,min=2,max=120"`
}

type UpdateShipmentStatus struct {
	Status string `json:"status" validate:"required,oneof=in_transit delivered"`
}

type AddTemperatureReading struct {
	TemperatureC float64 `json:"temperatureC" validate:"required"`
}

package requests

type RegisterDonor struct {
	FullName    string `json:"fullName" validate:"required,min=3,max=120"`
	BloodType   string `json:"bloodType" validate:"required,blood_type"`
	Phone       string `json:"phone" validate:"required,min=8,max=20"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
}

type UpdateDonor struct {
	FullName string `json:"fullName,omitempty" validate:"omitempty,min=3,max=120"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

type SearchDonors struct {
	BloodType string `json:"bloodType,omitempty" validate:"omitempty,blood_type"`
	Phone     string `json:"phone,omitempty"`
	Eligible  *bool  `json:"eligible,omitempty"`
}

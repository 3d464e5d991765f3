package requests

type CreateUser struct {
	Email        string `json:"email" validate:"required,email"`
	Username     string `json:"username" validate:"required,min=3,max=60"`
	Password     string `json:"password" validate:"required,password"`
	FullName     string `json:"fullName" validate:"required,min=3,max=120"`
	UserType     string `json:"userType" validate:"required,user_type"`
	RoleKey      string `json:"roleKey,omitempty" validate:"omitempty,min=2,max=40"`
	CustomRoleID string `json:"customRoleId,omitempty" validate:"omitempty,uuid4"`
	OrgID        string `json:"orgId,omitempty" validate:"omitempty,uuid4"`
}

type UpdateUser struct {
	FullName     string `json:"fullName,omitempty" validate:"omitempty,min=3,max=120"`
	RoleKey      string `json:"roleKey,omitempty" validate:"omitempty,min=2,max=40"`
	CustomRoleID string `json:"customRoleId,omitempty" validate:"omitempty,uuid4"`
	Password     string `json:"password,omitempty" validate:"omitempty,password"`
}

package requests

type CreateRole struct {
	Name        string              `json:"name" validate:"required,min=3,max=80"`
	RoleKey     string              `json:"roleKey" validate:"required,min=2,max=40"`
	Permissions map[string][]string `json:"permissions" validate:"required"`
}

type UpdateRole struct {
	Name        string              `json:"name,omitempty" validate:"omitempty,min=3,max=80"`
	Permissions map[string][]string `json:"permissions,omitempty"`
}

package requests

type CreateOrganization struct {
	Name        string `json:"name" validate:"required,min=3,max=120"`
	OrgCode     string `json:"orgCode" validate:"required,org_code"`
	ParentOrgID string `json:"parentOrgId,omitempty" validate:"omitempty,uuid4"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=255"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type UpdateOrganization struct {
	Name    string `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	Address string `json:"address,omitempty" validate:"omitempty,max=255"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

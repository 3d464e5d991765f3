package requests

type Login struct {
	Login    string `json:"login" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required"`
}

type SwitchContext struct {
	TargetOrgID    string `json:"targetOrgId" validate:"required,uuid4"`
	TargetUserType string `json:"targetUserType,omitempty" validate:"omitempty,oneof=super_admin tenant_admin"`
}

type TerminateAllSessions struct {
	ExceptCurrent bool `json:"exceptCurrent"`
}

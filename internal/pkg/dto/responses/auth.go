package responses

import "time"

type Login struct {
	Token     string    `json:"token"`
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	OrgID     string    `json:"orgId"`
	UserType  string    `json:"userType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ContextSwitch struct {
	Token           string `json:"token"`
	OrgID           string `json:"orgId"`
	UserType        string `json:"userType"`
	IsImpersonating bool   `json:"isImpersonating"`
	ActualUserType  string `json:"actualUserType"`
}

type DonorStatus struct {
	DonorCode     string     `json:"donorCode"`
	FullName      string     `json:"fullName"`
	BloodType     string     `json:"bloodType"`
	IsEligible    bool       `json:"isEligible"`
	DeferredUntil *time.Time `json:"deferredUntil,omitempty"`
	LastDonation  *time.Time `json:"lastDonation,omitempty"`
}

package models

type User struct {
	ID           string `json:"id" bson:"id"`
	OrgID        string `json:"orgId" bson:"org_id"`
	Email        string `json:"email" bson:"email"`
	Username     string `json:"username" bson:"username"`
	Password     string `json:"-" bson:"password"`
	FullName     string `json:"fullName" bson:"full_name"`
	UserType     string `json:"userType" bson:"user_type"`
	RoleKey      string `json:"roleKey" bson:"role_key"`
	CustomRoleID string `json:"customRoleId,omitempty" bson:"custom_role_id,omitempty"`
	IsActive     bool   `json:"isActive" bson:"is_active"`
	TimeModel    `bson:",inline"`
}

package models

// Role is either a global immutable system role (OrgID empty) or an
// org-scoped custom role.
type Role struct {
	ID           string        `json:"id" bson:"id"`
	RoleKey      string        `json:"roleKey" bson:"role_key"`
	Name         string        `json:"name" bson:"name"`
	Permissions  PermissionMap `json:"permissions" bson:"permissions"`
	IsSystemRole bool          `json:"isSystemRole" bson:"is_system_role"`
	OrgID        string        `json:"orgId,omitempty" bson:"org_id,omitempty"`
	TimeModel    `bson:",inline"`
}

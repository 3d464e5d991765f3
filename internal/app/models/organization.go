package models

// Organization forms a forest of depth two: parent "tenant" orgs and child
// "branch" orgs pointing at them via ParentOrgID.
type Organization struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	OrgCode     string  `json:"orgCode" bson:"org_code"`
	ParentOrgID *string `json:"parentOrgId,omitempty" bson:"parent_org_id,omitempty"`
	IsParent    bool    `json:"isParent" bson:"is_parent"`
	IsActive    bool    `json:"isActive" bson:"is_active"`
	Address     string  `json:"address,omitempty" bson:"address,omitempty"`
	Phone       string  `json:"phone,omitempty" bson:"phone,omitempty"`
	TimeModel   `bson:",inline"`
}

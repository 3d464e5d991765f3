package models

// Identity is the per-request decoded caller. It is never persisted; every
// request reconstructs it from the bearer token plus a live session lookup.
// ActualUserType always reflects the real underlying account, never the
// impersonated one.
type Identity struct {
	UserID          string
	RoleKey         string
	CustomRoleID    string
	OrgID           string
	UserType        string
	IsImpersonating bool
	ActualUserType  string
}

// OrgIDSet is a derived access scope, recomputed per request.
type OrgIDSet map[string]struct{}

func NewOrgIDSet(ids ...string) OrgIDSet {
	set := make(OrgIDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s OrgIDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s OrgIDSet) Add(id string) {
	s[id] = struct{}{}
}

func (s OrgIDSet) ToSlice() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

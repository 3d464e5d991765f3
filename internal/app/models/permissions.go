package models

// Module and Action are closed enums. Role permission maps are validated
// against them at role-creation time so an unknown module or action can never
// enter storage; at resolution time an unknown key simply means "not
// permitted".
type Module string

type Action string

const (
	ModuleDonors        Module = "donors"
	ModuleDonations     Module = "donations"
	ModuleScreenings    Module = "screenings"
	ModuleLabTests      Module = "lab_tests"
	ModuleComponents    Module = "components"
	ModuleInventory     Module = "inventory"
	ModuleRequests      Module = "requests"
	ModuleLogistics     Module = "logistics"
	ModuleReports       Module = "reports"
	ModuleOrganizations Module = "organizations"
	ModuleUsers         Module = "users"
	ModuleRoles         Module = "roles"
	ModuleSessions      Module = "sessions"
	ModuleAudit         Module = "audit"
)

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
)

var AvailableModules = map[Module]struct{}{
	ModuleDonors:        {},
	ModuleDonations:     {},
	ModuleScreenings:    {},
	ModuleLabTests:      {},
	ModuleComponents:    {},
	ModuleInventory:     {},
	ModuleRequests:      {},
	ModuleLogistics:     {},
	ModuleReports:       {},
	ModuleOrganizations: {},
	ModuleUsers:         {},
	ModuleRoles:         {},
	ModuleSessions:      {},
	ModuleAudit:         {},
}

var AvailableActions = map[Action]struct{}{
	ActionView:    {},
	ActionCreate:  {},
	ActionUpdate:  {},
	ActionDelete:  {},
	ActionApprove: {},
}

// PermissionMap maps a module to the actions allowed in it.
type PermissionMap map[Module][]Action

func (p PermissionMap) Allows(module Module, action Action) bool {
	actions, ok := p[module]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

func (p PermissionMap) HasModule(module Module) bool {
	actions, ok := p[module]
	return ok && len(actions) > 0
}

// Validate reports whether every key and value belongs to the closed enums.
func (p PermissionMap) Validate() bool {
	for module, actions := range p {
		if _, ok := AvailableModules[module]; !ok {
			return false
		}
		for _, action := range actions {
			if _, ok := AvailableActions[action]; !ok {
				return false
			}
		}
	}
	return true
}

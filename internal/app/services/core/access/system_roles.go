package access

import "hemolink-service/internal/app/models"

// SystemRoleDefaults is the compiled-in fallback permission table. It is
// consulted only when no stored role record matches the identity's role key,
// so a fresh deployment works before any roles are seeded.
var SystemRoleDefaults = map[string]models.PermissionMap{
	"admin": {
		models.ModuleDonors:        {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		models.ModuleDonations:     {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		models.ModuleScreenings:    {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		models.ModuleLabTests:      {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		models.ModuleComponents:    {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete, models.ActionApprove},
		models.ModuleInventory:     {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		models.ModuleRequests:      {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete, models.ActionApprove},
		models.ModuleLogistics:     {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		models.ModuleReports:       {models.ActionView, models.ActionCreate},
		models.ModuleOrganizations: {models.ActionView, models.ActionUpdate},
		models.ModuleUsers:         {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		models.ModuleRoles:         {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionDelete},
		models.ModuleSessions:      {models.ActionView, models.ActionUpdate, models.ActionDelete},
		models.ModuleAudit:         {models.ActionView},
	},
	"registration": {
		models.ModuleDonors:     {models.ActionView, models.ActionCreate, models.ActionUpdate},
		models.ModuleDonations:  {models.ActionView, models.ActionCreate},
		models.ModuleScreenings: {models.ActionView, models.ActionCreate},
	},
	"phlebotomist": {
		models.ModuleDonors:     {models.ActionView},
		models.ModuleScreenings: {models.ActionView},
		models.ModuleDonations:  {models.ActionView, models.ActionCreate, models.ActionUpdate},
	},
	"lab_tech": {
		models.ModuleDonations: {models.ActionView},
		models.ModuleLabTests:  {models.ActionView, models.ActionCreate, models.ActionUpdate},
	},
	"processing": {
		models.ModuleDonations:  {models.ActionView},
		models.ModuleLabTests:   {models.ActionView},
		models.ModuleComponents: {models.ActionView, models.ActionCreate, models.ActionUpdate},
	},
	"qc_manager": {
		models.ModuleComponents: {models.ActionView, models.ActionUpdate, models.ActionApprove},
		models.ModuleLabTests:   {models.ActionView},
		models.ModuleReports:    {models.ActionView},
	},
	"inventory": {
		models.ModuleComponents: {models.ActionView},
		models.ModuleInventory:  {models.ActionView, models.ActionCreate, models.ActionUpdate},
		models.ModuleReports:    {models.ActionView},
	},
	"distribution": {
		models.ModuleInventory: {models.ActionView},
		models.ModuleRequests:  {models.ActionView, models.ActionCreate, models.ActionUpdate, models.ActionApprove},
		models.ModuleLogistics: {models.ActionView, models.ActionCreate, models.ActionUpdate},
	},
}

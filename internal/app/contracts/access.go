package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
)

// ScopeResolver computes the set of organization IDs an identity may read or
// write. Both sets are recomputed per request; nothing is cached between
// requests.
type ScopeResolver interface {
	ResolveAccessibleOrgs(ctx context.Context, identity *models.Identity) (models.OrgIDSet, error)
	ResolveWritableOrgs(ctx context.Context, identity *models.Identity) (models.OrgIDSet, error)
}

// PermissionResolver answers module/action checks with the layered lookup:
// system_admin short-circuit, custom role, stored system role, compiled-in
// defaults. Unknown modules or actions resolve to false, never to an error.
type PermissionResolver interface {
	HasPermission(ctx context.Context, identity *models.Identity, module models.Module, action models.Action) (bool, error)
	HasAnyPermission(ctx context.Context, identity *models.Identity, module models.Module, actions ...models.Action) (bool, error)
	HasModuleAccess(ctx context.Context, identity *models.Identity, module models.Module) (bool, error)
}

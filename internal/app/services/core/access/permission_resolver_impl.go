package access

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
)

type permissionResolver struct {
	RoleRepository contracts.RoleRepository
}

func NewPermissionResolver(roleRepository contracts.RoleRepository) contracts.PermissionResolver {
	return &permissionResolver{
		RoleRepository: roleRepository,
	}
}

// HasPermission walks the layered lookup, first match wins: system_admin
// short-circuit, custom role, stored system role, compiled-in defaults.
// A custom role is authoritative even when empty for the module; the chain
// never falls through past a role record that exists.
func (r *permissionResolver) HasPermission(ctx context.Context, identity *models.Identity, module models.Module, action models.Action) (bool, error) {
	if identity.UserType == constvars.UserTypeSystemAdmin {
		return true, nil
	}

	permissions, err := r.lookupPermissions(ctx, identity)
	if err != nil {
		return false, err
	}
	if permissions == nil {
		return false, nil
	}
	return permissions.Allows(module, action), nil
}

func (r *permissionResolver) HasAnyPermission(ctx context.Context, identity *models.Identity, module models.Module, actions ...models.Action) (bool, error) {
	if identity.UserType == constvars.UserTypeSystemAdmin {
		return true, nil
	}

	permissions, err := r.lookupPermissions(ctx, identity)
	if err != nil {
		return false, err
	}
	if permissions == nil {
		return false, nil
	}
	for _, action := range actions {
		if permissions.Allows(module, action) {
			return true, nil
		}
	}
	return false, nil
}

func (r *permissionResolver) HasModuleAccess(ctx context.Context, identity *models.Identity, module models.Module) (bool, error) {
	if identity.UserType == constvars.UserTypeSystemAdmin {
		return true, nil
	}

	permissions, err := r.lookupPermissions(ctx, identity)
	if err != nil {
		return false, err
	}
	if permissions == nil {
		return false, nil
	}
	return permissions.HasModule(module), nil
}

func (r *permissionResolver) lookupPermissions(ctx context.Context, identity *models.Identity) (models.PermissionMap, error) {
	if identity.CustomRoleID != "" {
		role, err := r.RoleRepository.FindByID(ctx, identity.CustomRoleID)
		if err != nil {
			return nil, err
		}
		if role != nil {
			return role.Permissions, nil
		}
	}

	if identity.RoleKey == "" {
		return nil, nil
	}

	role, err := r.RoleRepository.FindSystemRoleByKey(ctx, identity.RoleKey)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role.Permissions, nil
	}

	if defaults, ok := SystemRoleDefaults[identity.RoleKey]; ok {
		return defaults, nil
	}
	return nil, nil
}

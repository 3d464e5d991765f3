package roles

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type roleUsecase struct {
	RoleRepository contracts.RoleRepository
	UserRepository contracts.UserRepository
	ScopeResolver  contracts.ScopeResolver
}

func NewRoleUsecase(
	roleRepository contracts.RoleRepository,
	userRepository contracts.UserRepository,
	scopeResolver contracts.ScopeResolver,
) contracts.RoleUsecase {
	return &roleUsecase{
		RoleRepository: roleRepository,
		UserRepository: userRepository,
		ScopeResolver:  scopeResolver,
	}
}

// buildPermissionMap converts the request payload into the typed map and
// rejects any module or action outside the closed enums.
func buildPermissionMap(raw map[string][]string) (models.PermissionMap, error) {
	permissions := make(models.PermissionMap, len(raw))
	for module, actions := range raw {
		typedActions := make([]models.Action, 0, len(actions))
		for _, action := range actions {
			typedActions = append(typedActions, models.Action(action))
		}
		permissions[models.Module(module)] = typedActions
	}
	if !permissions.Validate() {
		return nil, exceptions.ErrInvalidPermissionMap(nil)
	}
	return permissions, nil
}

func (uc *roleUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateRole) (*models.Role, error) {
	permissions, err := buildPermissionMap(request.Permissions)
	if err != nil {
		return nil, err
	}

	existing, err := uc.RoleRepository.FindByNameInOrg(ctx, request.Name, identity.OrgID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrRoleNameAlreadyExists(nil)
	}

	role := &models.Role{
		ID:           utils.GenerateUUID(),
		RoleKey:      request.RoleKey,
		Name:         request.Name,
		Permissions:  permissions,
		IsSystemRole: false,
		OrgID:        identity.OrgID,
		TimeModel:    models.NewTimeModel(time.Now().UTC()),
	}
	if err := uc.RoleRepository.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// List returns the org's custom roles together with the global system roles.
func (uc *roleUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.Role, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	filter := bson.M{
		"$or": []bson.M{
			{"org_id": bson.M{"$in": scope.ToSlice()}},
			{"is_system_role": true},
		},
	}
	return uc.RoleRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *roleUsecase) GetByID(ctx context.Context, identity *models.Identity, roleID string) (*models.Role, error) {
	role, err := uc.RoleRepository.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if role.IsSystemRole {
		return role, nil
	}

	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(role.OrgID) {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return role, nil
}

func (uc *roleUsecase) Update(ctx context.Context, identity *models.Identity, roleID string, request *requests.UpdateRole) (*models.Role, error) {
	role, err := uc.RoleRepository.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if role.IsSystemRole {
		return nil, exceptions.ErrSystemRoleImmutable(nil)
	}

	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !writable.Contains(role.OrgID) {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Name != "" {
		role.Name = request.Name
	}
	if request.Permissions != nil {
		permissions, err := buildPermissionMap(request.Permissions)
		if err != nil {
			return nil, err
		}
		role.Permissions = permissions
	}
	role.Touch(time.Now().UTC())

	if err := uc.RoleRepository.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete refuses while any active user still carries the role, so permission
// lookups never dangle.
func (uc *roleUsecase) Delete(ctx context.Context, identity *models.Identity, roleID string) error {
	role, err := uc.RoleRepository.FindByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	if role.IsSystemRole {
		return exceptions.ErrSystemRoleImmutable(nil)
	}

	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return err
	}
	if !writable.Contains(role.OrgID) {
		return exceptions.ErrRecordNotFound(nil)
	}

	assigned, err := uc.UserRepository.CountByCustomRoleID(ctx, roleID)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return exceptions.ErrRoleStillAssigned(nil)
	}

	return uc.RoleRepository.DeleteByID(ctx, roleID)
}

package roles

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id string) (*models.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *MockRoleRepository) FindSystemRoleByKey(ctx context.Context, roleKey string) (*models.Role, error) {
	args := m.Called(ctx, roleKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByNameInOrg(ctx context.Context, name, orgID string) (*models.Role, error) {
	args := m.Called(ctx, name, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *MockRoleRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Role, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]models.Role), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRoleUserRepository struct {
	mock.Mock
}

func (m *MockRoleUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRoleUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRoleUserRepository) FindByUsernameOrEmail(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockRoleUserRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.User, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoleUserRepository) CountByCustomRoleID(ctx context.Context, roleID string) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoleUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockScopeResolver struct {
	mock.Mock
}

func (m *MockScopeResolver) ResolveAccessibleOrgs(ctx context.Context, identity *models.Identity) (models.OrgIDSet, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.OrgIDSet), args.Error(1)
}

func (m *MockScopeResolver) ResolveWritableOrgs(ctx context.Context, identity *models.Identity) (models.OrgIDSet, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.OrgIDSet), args.Error(1)
}

func tenantAdminIdentity() *models.Identity {
	return &models.Identity{
		UserID:   "admin-1",
		OrgID:    "org-1",
		UserType: "tenant_admin",
	}
}

func TestRoleCreate(t *testing.T) {
	t.Run("unknown module in the permission map is rejected before any write", func(t *testing.T) {
		roleRepo := new(MockRoleRepository)
		uc := NewRoleUsecase(roleRepo, new(MockRoleUserRepository), new(MockScopeResolver))

		_, err := uc.Create(context.Background(), tenantAdminIdentity(), &requests.CreateRole{
			Name:    "Night Shift",
			RoleKey: "night_shift",
			Permissions: map[string][]string{
				"donors":      {"view"},
				"time_travel": {"view"},
			},
		})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidPermissionMap(nil).Error(), err.Error())
		roleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown action in the permission map is rejected", func(t *testing.T) {
		uc := NewRoleUsecase(new(MockRoleRepository), new(MockRoleUserRepository), new(MockScopeResolver))

		_, err := uc.Create(context.Background(), tenantAdminIdentity(), &requests.CreateRole{
			Name:        "Night Shift",
			RoleKey:     "night_shift",
			Permissions: map[string][]string{"donors": {"teleport"}},
		})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidPermissionMap(nil).Error(), err.Error())
	})

	t.Run("duplicate role name within the org is refused", func(t *testing.T) {
		roleRepo := new(MockRoleRepository)
		roleRepo.On("FindByNameInOrg", mock.Anything, "Night Shift", "org-1").Return(&models.Role{ID: "r-existing"}, nil)

		uc := NewRoleUsecase(roleRepo, new(MockRoleUserRepository), new(MockScopeResolver))
		_, err := uc.Create(context.Background(), tenantAdminIdentity(), &requests.CreateRole{
			Name:        "Night Shift",
			RoleKey:     "night_shift",
			Permissions: map[string][]string{"donors": {"view", "create"}},
		})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrRoleNameAlreadyExists(nil).Error(), err.Error())
	})

	t.Run("valid role is created as a non-system role in the caller's org", func(t *testing.T) {
		roleRepo := new(MockRoleRepository)
		roleRepo.On("FindByNameInOrg", mock.Anything, "Night Shift", "org-1").Return(nil, nil)
		roleRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Role")).Return(nil)

		uc := NewRoleUsecase(roleRepo, new(MockRoleUserRepository), new(MockScopeResolver))
		role, err := uc.Create(context.Background(), tenantAdminIdentity(), &requests.CreateRole{
			Name:        "Night Shift",
			RoleKey:     "night_shift",
			Permissions: map[string][]string{"donors": {"view", "create"}, "inventory": {"view"}},
		})

		assert.NoError(t, err)
		assert.False(t, role.IsSystemRole)
		assert.Equal(t, "org-1", role.OrgID)
		assert.Equal(t, []models.Action{models.ActionView, models.ActionCreate}, role.Permissions[models.ModuleDonors])
		roleRepo.AssertExpectations(t)
	})
}

func TestRoleUpdate(t *testing.T) {
	t.Run("system roles are immutable", func(t *testing.T) {
		roleRepo := new(MockRoleRepository)
		roleRepo.On("FindByID", mock.Anything, "r-sys").Return(&models.Role{ID: "r-sys", IsSystemRole: true}, nil)

		uc := NewRoleUsecase(roleRepo, new(MockRoleUserRepository), new(MockScopeResolver))
		_, err := uc.Update(context.Background(), tenantAdminIdentity(), "r-sys", &requests.UpdateRole{Name: "Renamed"})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrSystemRoleImmutable(nil).Error(), err.Error())
		roleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("roles outside the writable scope read as not found", func(t *testing.T) {
		roleRepo := new(MockRoleRepository)
		roleRepo.On("FindByID", mock.Anything, "r-1").Return(&models.Role{ID: "r-1", OrgID: "org-other"}, nil)
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-1"), nil)

		uc := NewRoleUsecase(roleRepo, new(MockRoleUserRepository), scope)
		_, err := uc.Update(context.Background(), tenantAdminIdentity(), "r-1", &requests.UpdateRole{Name: "Renamed"})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrRecordNotFound(nil).Error(), err.Error())
	})
}

func TestRoleDelete(t *testing.T) {
	customRole := &models.Role{ID: "r-1", OrgID: "org-1", Name: "Night Shift"}

	t.Run("delete is refused while users still carry the role", func(t *testing.T) {
		roleRepo := new(MockRoleRepository)
		roleRepo.On("FindByID", mock.Anything, "r-1").Return(customRole, nil)
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-1"), nil)
		userRepo := new(MockRoleUserRepository)
		userRepo.On("CountByCustomRoleID", mock.Anything, "r-1").Return(int64(2), nil)

		uc := NewRoleUsecase(roleRepo, userRepo, scope)
		err := uc.Delete(context.Background(), tenantAdminIdentity(), "r-1")

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrRoleStillAssigned(nil).Error(), err.Error())
		roleRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("unassigned custom role is deleted", func(t *testing.T) {
		roleRepo := new(MockRoleRepository)
		roleRepo.On("FindByID", mock.Anything, "r-1").Return(customRole, nil)
		roleRepo.On("DeleteByID", mock.Anything, "r-1").Return(nil)
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-1"), nil)
		userRepo := new(MockRoleUserRepository)
		userRepo.On("CountByCustomRoleID", mock.Anything, "r-1").Return(int64(0), nil)

		uc := NewRoleUsecase(roleRepo, userRepo, scope)
		err := uc.Delete(context.Background(), tenantAdminIdentity(), "r-1")

		assert.NoError(t, err)
		roleRepo.AssertExpectations(t)
	})

	t.Run("deleting a system role is refused regardless of scope", func(t *testing.T) {
		roleRepo := new(MockRoleRepository)
		roleRepo.On("FindByID", mock.Anything, "r-sys").Return(&models.Role{ID: "r-sys", IsSystemRole: true}, nil)
		scope := new(MockScopeResolver)

		uc := NewRoleUsecase(roleRepo, new(MockRoleUserRepository), scope)
		err := uc.Delete(context.Background(), tenantAdminIdentity(), "r-sys")

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrSystemRoleImmutable(nil).Error(), err.Error())
		scope.AssertNotCalled(t, "ResolveWritableOrgs", mock.Anything, mock.Anything)
	})
}

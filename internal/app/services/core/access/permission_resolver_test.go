package access

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
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
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
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

func TestPermissionResolver_SystemAdminShortCircuit(t *testing.T) {
	mockRoleRepo := new(MockRoleRepository)
	resolver := NewPermissionResolver(mockRoleRepo)
	identity := &models.Identity{UserID: "user-1", UserType: constvars.UserTypeSystemAdmin}

	for module := range models.AvailableModules {
		for action := range models.AvailableActions {
			allowed, err := resolver.HasPermission(context.Background(), identity, module, action)
			assert.NoError(t, err)
			assert.True(t, allowed, "System admin must be allowed %s on %s", action, module)
		}
	}
	mockRoleRepo.AssertNotCalled(t, "FindByID")
	mockRoleRepo.AssertNotCalled(t, "FindSystemRoleByKey")
}

func TestPermissionResolver_CustomRole(t *testing.T) {
	t.Run("Custom role permissions are authoritative", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockRoleRepo.On("FindByID", mock.Anything, "role-77").Return(&models.Role{
			ID:   "role-77",
			Name: "Night Shift",
			Permissions: models.PermissionMap{
				models.ModuleDonations: {models.ActionView, models.ActionCreate},
			},
			OrgID: "org-2",
		}, nil)

		resolver := NewPermissionResolver(mockRoleRepo)
		identity := &models.Identity{
			UserID:       "user-1",
			RoleKey:      "lab_tech",
			CustomRoleID: "role-77",
			UserType:     constvars.UserTypeStaff,
		}

		allowed, err := resolver.HasPermission(context.Background(), identity, models.ModuleDonations, models.ActionCreate)
		assert.NoError(t, err)
		assert.True(t, allowed)

		// lab_tech defaults would allow this; the custom role must win.
		allowed, err = resolver.HasPermission(context.Background(), identity, models.ModuleLabTests, models.ActionCreate)
		assert.NoError(t, err)
		assert.False(t, allowed, "Custom role must override system role defaults even when narrower")
		mockRoleRepo.AssertNotCalled(t, "FindSystemRoleByKey")
	})

	t.Run("Missing custom role falls through to the role key lookup", func(t *testing.T) {
		mockRoleRepo := new(MockRoleRepository)
		mockRoleRepo.On("FindByID", mock.Anything, "role-gone").Return(nil, nil)
		mockRoleRepo.On("FindSystemRoleByKey", mock.Anything, "lab_tech").Return(nil, nil)

		resolver := NewPermissionResolver(mockRoleRepo)
		identity := &models.Identity{
			UserID:       "user-1",
			RoleKey:      "lab_tech",
			CustomRoleID: "role-gone",
			UserType:     constvars.UserTypeStaff,
		}

		allowed, err := resolver.HasPermission(context.Background(), identity, models.ModuleLabTests, models.ActionCreate)
		assert.NoError(t, err)
		assert.True(t, allowed, "Compiled-in lab_tech defaults should apply")
	})
}

func TestPermissionResolver_StoredSystemRole(t *testing.T) {
	mockRoleRepo := new(MockRoleRepository)
	mockRoleRepo.On("FindSystemRoleByKey", mock.Anything, "lab_tech").Return(&models.Role{
		ID:           "role-1",
		RoleKey:      "lab_tech",
		IsSystemRole: true,
		Permissions: models.PermissionMap{
			models.ModuleLabTests: {models.ActionView},
		},
	}, nil)

	resolver := NewPermissionResolver(mockRoleRepo)
	identity := &models.Identity{UserID: "user-1", RoleKey: "lab_tech", UserType: constvars.UserTypeStaff}

	allowed, err := resolver.HasPermission(context.Background(), identity, models.ModuleLabTests, models.ActionCreate)
	assert.NoError(t, err)
	assert.False(t, allowed, "Stored system role must shadow the wider compiled-in defaults")

	allowed, err = resolver.HasPermission(context.Background(), identity, models.ModuleLabTests, models.ActionView)
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestPermissionResolver_CompiledInDefaults(t *testing.T) {
	mockRoleRepo := new(MockRoleRepository)
	mockRoleRepo.On("FindSystemRoleByKey", mock.Anything, mock.Anything).Return(nil, nil)

	resolver := NewPermissionResolver(mockRoleRepo)

	t.Run("lab_tech has no requests module access", func(t *testing.T) {
		identity := &models.Identity{UserID: "user-1", RoleKey: "lab_tech", UserType: constvars.UserTypeStaff}

		allowed, err := resolver.HasPermission(context.Background(), identity, models.ModuleRequests, models.ActionView)
		assert.NoError(t, err)
		assert.False(t, allowed)

		hasModule, err := resolver.HasModuleAccess(context.Background(), identity, models.ModuleRequests)
		assert.NoError(t, err)
		assert.False(t, hasModule)
	})

	t.Run("Unknown role key resolves to false, never an error", func(t *testing.T) {
		identity := &models.Identity{UserID: "user-1", RoleKey: "janitor", UserType: constvars.UserTypeStaff}

		allowed, err := resolver.HasPermission(context.Background(), identity, models.ModuleDonors, models.ActionView)
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("HasAnyPermission matches when at least one action is allowed", func(t *testing.T) {
		identity := &models.Identity{UserID: "user-1", RoleKey: "qc_manager", UserType: constvars.UserTypeStaff}

		allowed, err := resolver.HasAnyPermission(context.Background(), identity, models.ModuleComponents, models.ActionDelete, models.ActionApprove)
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = resolver.HasAnyPermission(context.Background(), identity, models.ModuleComponents, models.ActionDelete, models.ActionCreate)
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}

func TestSystemRoleDefaults_AreValid(t *testing.T) {
	for roleKey, permissions := range SystemRoleDefaults {
		assert.True(t, permissions.Validate(), "Default role %s must only reference known modules and actions", roleKey)
	}
}

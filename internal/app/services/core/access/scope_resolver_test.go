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

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindByOrgCode(ctx context.Context, orgCode string) (*models.Organization, error) {
	args := m.Called(ctx, orgCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindAllActive(ctx context.Context) ([]models.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindActiveChildren(ctx context.Context, parentOrgID string) ([]models.Organization, error) {
	args := m.Called(ctx, parentOrgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Organization, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Organization), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func activeOrg(id string, parentID *string, isParent bool) *models.Organization {
	return &models.Organization{
		ID:          id,
		Name:        "Org " + id,
		OrgCode:     "ORG" + id,
		ParentOrgID: parentID,
		IsParent:    isParent,
		IsActive:    true,
	}
}

func TestScopeResolver_Impersonation(t *testing.T) {
	t.Run("Impersonating identity resolves to exactly the target org for read and write", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepository)
		mockOrgRepo.On("FindByID", mock.Anything, "org-2").Return(activeOrg("org-2", strPtr("org-1"), false), nil)

		resolver := NewScopeResolver(mockOrgRepo)
		identity := &models.Identity{
			UserID:          "user-1",
			OrgID:           "org-2",
			UserType:        constvars.UserTypeTenantAdmin,
			IsImpersonating: true,
			ActualUserType:  constvars.UserTypeSuperAdmin,
		}

		readScope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, models.NewOrgIDSet("org-2"), readScope)

		writeScope, err := resolver.ResolveWritableOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, readScope, writeScope, "Impersonation scope must be identical for read and write")
	})

	t.Run("Impersonating an inactive org yields an empty scope", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepository)
		inactive := activeOrg("org-9", nil, false)
		inactive.IsActive = false
		mockOrgRepo.On("FindByID", mock.Anything, "org-9").Return(inactive, nil)

		resolver := NewScopeResolver(mockOrgRepo)
		identity := &models.Identity{UserID: "user-1", OrgID: "org-9", UserType: constvars.UserTypeTenantAdmin, IsImpersonating: true}

		scope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Empty(t, scope)
	})
}

func TestScopeResolver_SystemAdmin(t *testing.T) {
	t.Run("System admin sees every active org", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepository)
		mockOrgRepo.On("FindAllActive", mock.Anything).Return([]models.Organization{
			*activeOrg("org-1", nil, true),
			*activeOrg("org-2", strPtr("org-1"), false),
			*activeOrg("org-3", strPtr("org-1"), false),
		}, nil)

		resolver := NewScopeResolver(mockOrgRepo)
		identity := &models.Identity{UserID: "user-1", UserType: constvars.UserTypeSystemAdmin}

		scope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, models.NewOrgIDSet("org-1", "org-2", "org-3"), scope)
	})
}

func TestScopeResolver_FailClosed(t *testing.T) {
	t.Run("Identity without an org resolves to the empty set, not an error", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepository)
		resolver := NewScopeResolver(mockOrgRepo)
		identity := &models.Identity{UserID: "user-1", UserType: constvars.UserTypeStaff}

		scope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Empty(t, scope)
	})

	t.Run("An inactive own org resolves to the empty set", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepository)
		inactive := activeOrg("org-2", strPtr("org-1"), false)
		inactive.IsActive = false
		mockOrgRepo.On("FindByID", mock.Anything, "org-2").Return(inactive, nil)

		resolver := NewScopeResolver(mockOrgRepo)
		identity := &models.Identity{UserID: "user-1", OrgID: "org-2", UserType: constvars.UserTypeTenantAdmin}

		scope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Empty(t, scope)
	})
}

func TestScopeResolver_Lineage(t *testing.T) {
	parent := activeOrg("org-1", nil, true)
	childB := activeOrg("org-2", strPtr("org-1"), false)
	childC := activeOrg("org-3", strPtr("org-1"), false)

	t.Run("Super admin resolves self plus active children for read and write", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepository)
		mockOrgRepo.On("FindByID", mock.Anything, "org-1").Return(parent, nil)
		mockOrgRepo.On("FindActiveChildren", mock.Anything, "org-1").Return([]models.Organization{*childB, *childC}, nil)

		resolver := NewScopeResolver(mockOrgRepo)
		identity := &models.Identity{UserID: "user-1", OrgID: "org-1", UserType: constvars.UserTypeSuperAdmin}

		readScope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, models.NewOrgIDSet("org-1", "org-2", "org-3"), readScope)

		writeScope, err := resolver.ResolveWritableOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, readScope, writeScope)
	})

	t.Run("Tenant admin reads self plus parent plus siblings but writes only self", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepository)
		mockOrgRepo.On("FindByID", mock.Anything, "org-2").Return(childB, nil)
		mockOrgRepo.On("FindByID", mock.Anything, "org-1").Return(parent, nil)
		mockOrgRepo.On("FindActiveChildren", mock.Anything, "org-1").Return([]models.Organization{*childB, *childC}, nil)

		resolver := NewScopeResolver(mockOrgRepo)
		identity := &models.Identity{UserID: "user-1", OrgID: "org-2", UserType: constvars.UserTypeTenantAdmin}

		readScope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, models.NewOrgIDSet("org-2", "org-1", "org-3"), readScope)

		writeScope, err := resolver.ResolveWritableOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, models.NewOrgIDSet("org-2"), writeScope)
		for orgID := range writeScope {
			assert.True(t, readScope.Contains(orgID), "Write scope must be a subset of read scope")
		}
	})

	t.Run("Tenant admin with an inactive parent degrades to self-only scope", func(t *testing.T) {
		mockOrgRepo := new(MockOrganizationRepository)
		inactiveParent := activeOrg("org-1", nil, true)
		inactiveParent.IsActive = false
		mockOrgRepo.On("FindByID", mock.Anything, "org-2").Return(childB, nil)
		mockOrgRepo.On("FindByID", mock.Anything, "org-1").Return(inactiveParent, nil)

		resolver := NewScopeResolver(mockOrgRepo)
		identity := &models.Identity{UserID: "user-1", OrgID: "org-2", UserType: constvars.UserTypeTenantAdmin}

		scope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
		assert.NoError(t, err)
		assert.Equal(t, models.NewOrgIDSet("org-2"), scope)
	})

	t.Run("Staff and requestor resolve to their own org only", func(t *testing.T) {
		for _, userType := range []string{constvars.UserTypeStaff, constvars.UserTypeRequestor} {
			mockOrgRepo := new(MockOrganizationRepository)
			mockOrgRepo.On("FindByID", mock.Anything, "org-2").Return(childB, nil)

			resolver := NewScopeResolver(mockOrgRepo)
			identity := &models.Identity{UserID: "user-1", OrgID: "org-2", UserType: userType}

			scope, err := resolver.ResolveAccessibleOrgs(context.Background(), identity)
			assert.NoError(t, err)
			assert.Equal(t, models.NewOrgIDSet("org-2"), scope, "User type %s should be limited to its own org", userType)
		}
	})
}

func TestBuildScopeFilter(t *testing.T) {
	t.Run("Always embeds the org_id clause and merges extra conditions", func(t *testing.T) {
		scope := models.NewOrgIDSet("org-1", "org-2")
		filter := BuildScopeFilter(scope, bson.M{"status": "pending"})

		orgClause, ok := filter["org_id"].(bson.M)
		assert.True(t, ok, "Filter must carry an org_id clause")
		assert.ElementsMatch(t, scope.ToSlice(), orgClause["$in"])
		assert.Equal(t, "pending", filter["status"])
	})

	t.Run("Empty scope produces a filter that matches nothing", func(t *testing.T) {
		filter := BuildScopeFilter(models.NewOrgIDSet(), nil)

		orgClause := filter["org_id"].(bson.M)
		assert.Empty(t, orgClause["$in"])
	})
}

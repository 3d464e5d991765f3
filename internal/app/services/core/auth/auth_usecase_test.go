package auth

import (
	"context"
	"hemolink-service/internal/app/config"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.User, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) CountByCustomRoleID(ctx context.Context, roleID string) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) FindActiveByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) FindActiveByUser(ctx context.Context, userID string) ([]models.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockSessionRepository) FindMostRecentActiveByUser(ctx context.Context, userID string) (*models.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) UpdateLastActivity(ctx context.Context, sessionID string, at time.Time) error {
	args := m.Called(ctx, sessionID, at)
	return args.Error(0)
}

func (m *MockSessionRepository) Terminate(ctx context.Context, sessionID, terminatedBy, reason string, at time.Time) error {
	args := m.Called(ctx, sessionID, terminatedBy, reason, at)
	return args.Error(0)
}

func (m *MockSessionRepository) TerminateAllForUser(ctx context.Context, userID, exceptSessionID, terminatedBy, reason string, at time.Time) (int64, error) {
	args := m.Called(ctx, userID, exceptSessionID, terminatedBy, reason, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) FindActiveIdleSince(ctx context.Context, cutoff time.Time) ([]models.Session, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockSessionRepository) TerminateIdleSince(ctx context.Context, cutoff time.Time, reason string) (int64, error) {
	args := m.Called(ctx, cutoff, reason)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) FindUserIDsOverCap(ctx context.Context, cap int) ([]string, error) {
	args := m.Called(ctx, cap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockOrgRepository struct {
	mock.Mock
}

func (m *MockOrgRepository) Create(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrgRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrgRepository) FindByOrgCode(ctx context.Context, orgCode string) (*models.Organization, error) {
	args := m.Called(ctx, orgCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrgRepository) FindAllActive(ctx context.Context) ([]models.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Organization), args.Error(1)
}

func (m *MockOrgRepository) FindActiveChildren(ctx context.Context, parentOrgID string) ([]models.Organization, error) {
	args := m.Called(ctx, parentOrgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Organization), args.Error(1)
}

func (m *MockOrgRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Organization, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]models.Organization), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrgRepository) Update(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// noopSink satisfies contracts.AuditSink for tests that do not assert on
// audit entries.
type noopSink struct{}

func (noopSink) Log(models.AuditLog) {}
func (noopSink) Close()              {}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
		Session: config.Session{
			MaxConcurrentSessions: 3,
			TimeoutMinutes:        30,
			SweepIntervalMinutes:  5,
		},
	}
}

func newTestAuthUsecase(
	userRepo contracts.UserRepository,
	sessionRepo contracts.SessionRepository,
	orgRepo contracts.OrganizationRepository,
	redisRepo contracts.RedisRepository,
) contracts.AuthUsecase {
	return NewAuthUsecase(userRepo, sessionRepo, orgRepo, redisRepo, noopSink{}, testConfig(), zap.NewNop())
}

func TestLogin(t *testing.T) {
	hashed, err := utils.HashPassword("s3cret")
	assert.NoError(t, err, "hashing the fixture password should not fail")

	activeUser := &models.User{
		ID:       "user-1",
		OrgID:    "org-1",
		Username: "jdoe",
		Password: hashed,
		UserType: constvars.UserTypeStaff,
		RoleKey:  "phlebotomist",
		IsActive: true,
	}

	t.Run("valid credentials create a session and return a parseable token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessionRepo := new(MockSessionRepository)
		orgRepo := new(MockOrgRepository)
		redisRepo := new(MockRedisRepository)

		userRepo.On("FindByUsernameOrEmail", mock.Anything, "jdoe").Return(activeUser, nil)
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := newTestAuthUsecase(userRepo, sessionRepo, orgRepo, redisRepo)
		response, err := uc.Login(context.Background(), &requests.Login{Login: "jdoe", Password: "s3cret"})

		assert.NoError(t, err)
		assert.Equal(t, "user-1", response.UserID)
		assert.Equal(t, "org-1", response.OrgID)
		assert.NotEmpty(t, response.SessionID)

		identity, err := utils.ParseIdentityJWT(response.Token, "test-secret")
		assert.NoError(t, err, "issued token should parse with the signing secret")
		assert.Equal(t, "user-1", identity.UserID)
		assert.False(t, identity.IsImpersonating)
		assert.Equal(t, constvars.UserTypeStaff, identity.ActualUserType)

		sessionRepo.AssertExpectations(t)
	})

	t.Run("wrong password is rejected without creating a session", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessionRepo := new(MockSessionRepository)

		userRepo.On("FindByUsernameOrEmail", mock.Anything, "jdoe").Return(activeUser, nil)

		uc := newTestAuthUsecase(userRepo, sessionRepo, new(MockOrgRepository), new(MockRedisRepository))
		_, err := uc.Login(context.Background(), &requests.Login{Login: "jdoe", Password: "wrong"})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidUsernameOrPassword(nil).Error(), err.Error())
		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("deactivated account is rejected with the same error as bad credentials", func(t *testing.T) {
		inactive := *activeUser
		inactive.IsActive = false

		userRepo := new(MockUserRepository)
		userRepo.On("FindByUsernameOrEmail", mock.Anything, "jdoe").Return(&inactive, nil)

		uc := newTestAuthUsecase(userRepo, new(MockSessionRepository), new(MockOrgRepository), new(MockRedisRepository))
		_, err := uc.Login(context.Background(), &requests.Login{Login: "jdoe", Password: "s3cret"})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidUsernameOrPassword(nil).Error(), err.Error())
	})
}

func TestSwitchContext(t *testing.T) {
	parentID := "org-parent"
	childOrg := &models.Organization{
		ID:          "org-child",
		OrgCode:     "BR-001",
		ParentOrgID: &parentID,
		IsParent:    false,
		IsActive:    true,
	}

	t.Run("staff and tenant admins may never switch", func(t *testing.T) {
		for _, userType := range []string{constvars.UserTypeTenantAdmin, constvars.UserTypeStaff, constvars.UserTypeRequestor} {
			orgRepo := new(MockOrgRepository)
			orgRepo.On("FindByID", mock.Anything, "org-child").Return(childOrg, nil)

			uc := newTestAuthUsecase(new(MockUserRepository), new(MockSessionRepository), orgRepo, new(MockRedisRepository))
			identity := &models.Identity{UserID: "u1", OrgID: parentID, UserType: userType, ActualUserType: userType}

			_, err := uc.SwitchContext(context.Background(), identity, &requests.SwitchContext{TargetOrgID: "org-child"})
			assert.Error(t, err, "user type %s should be refused", userType)
			assert.Equal(t, exceptions.ErrContextSwitchNotAllowed(nil).Error(), err.Error())
		}
	})

	t.Run("super admin may only switch to a direct child", func(t *testing.T) {
		otherParent := "org-other"
		foreignChild := &models.Organization{
			ID:          "org-foreign",
			ParentOrgID: &otherParent,
			IsActive:    true,
		}

		orgRepo := new(MockOrgRepository)
		orgRepo.On("FindByID", mock.Anything, "org-foreign").Return(foreignChild, nil)

		uc := newTestAuthUsecase(new(MockUserRepository), new(MockSessionRepository), orgRepo, new(MockRedisRepository))
		identity := &models.Identity{
			UserID:         "u1",
			OrgID:          parentID,
			UserType:       constvars.UserTypeSuperAdmin,
			ActualUserType: constvars.UserTypeSuperAdmin,
		}

		_, err := uc.SwitchContext(context.Background(), identity, &requests.SwitchContext{TargetOrgID: "org-foreign"})
		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrContextSwitchNotChild(nil).Error(), err.Error())
	})

	t.Run("successful switch issues a backed impersonation token and keeps the original session", func(t *testing.T) {
		orgRepo := new(MockOrgRepository)
		orgRepo.On("FindByID", mock.Anything, "org-child").Return(childOrg, nil)
		sessionRepo := new(MockSessionRepository)
		redisRepo := new(MockRedisRepository)

		var backing *models.Session
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).Run(func(args mock.Arguments) {
			backing = args.Get(1).(*models.Session)
		}).Return(nil)
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := newTestAuthUsecase(new(MockUserRepository), sessionRepo, orgRepo, redisRepo)
		identity := &models.Identity{
			UserID:         "u1",
			OrgID:          parentID,
			UserType:       constvars.UserTypeSuperAdmin,
			ActualUserType: constvars.UserTypeSuperAdmin,
		}

		response, err := uc.SwitchContext(context.Background(), identity, &requests.SwitchContext{TargetOrgID: "org-child"})
		assert.NoError(t, err)
		assert.True(t, response.IsImpersonating)
		assert.Equal(t, "org-child", response.OrgID)
		assert.Equal(t, constvars.UserTypeTenantAdmin, response.UserType, "non-parent target infers tenant_admin")
		assert.Equal(t, constvars.UserTypeSuperAdmin, response.ActualUserType)

		impersonated, err := utils.ParseIdentityJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.True(t, impersonated.IsImpersonating)
		assert.Equal(t, "org-child", impersonated.OrgID)

		assert.NotNil(t, backing, "a session row must back the new token")
		assert.Equal(t, utils.HashToken(response.Token), backing.TokenHash)
		assert.Equal(t, "u1", backing.UserID)
		assert.Equal(t, "org-child", backing.OrgID)

		sessionRepo.AssertNotCalled(t, "Terminate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("the switched token authenticates and the exit token authenticates after it", func(t *testing.T) {
		orgRepo := new(MockOrgRepository)
		orgRepo.On("FindByID", mock.Anything, "org-child").Return(childOrg, nil)
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, "u1").Return(&models.User{
			ID:       "u1",
			OrgID:    parentID,
			UserType: constvars.UserTypeSuperAdmin,
			IsActive: true,
		}, nil)
		sessionRepo := new(MockSessionRepository)
		redisRepo := new(MockRedisRepository)

		rows := map[string]*models.Session{}
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).Run(func(args mock.Arguments) {
			session := args.Get(1).(*models.Session)
			rows[session.TokenHash] = session
		}).Return(nil)
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil)

		uc := newTestAuthUsecase(userRepo, sessionRepo, orgRepo, redisRepo)
		identity := &models.Identity{
			UserID:         "u1",
			OrgID:          parentID,
			UserType:       constvars.UserTypeSuperAdmin,
			ActualUserType: constvars.UserTypeSuperAdmin,
		}

		switched, err := uc.SwitchContext(context.Background(), identity, &requests.SwitchContext{TargetOrgID: "org-child"})
		assert.NoError(t, err)

		switchedHash := utils.HashToken(switched.Token)
		sessionRepo.On("FindActiveByTokenHash", mock.Anything, switchedHash).Return(rows[switchedHash], nil)

		resolved, _, err := uc.ResolveIdentity(context.Background(), switched.Token)
		assert.NoError(t, err, "the switched token must authenticate on the next request")
		assert.True(t, resolved.IsImpersonating)
		assert.Equal(t, "org-child", resolved.OrgID)

		exited, err := uc.ExitContext(context.Background(), resolved)
		assert.NoError(t, err)

		exitedHash := utils.HashToken(exited.Token)
		sessionRepo.On("FindActiveByTokenHash", mock.Anything, exitedHash).Return(rows[exitedHash], nil)

		restored, _, err := uc.ResolveIdentity(context.Background(), exited.Token)
		assert.NoError(t, err, "the exit token must authenticate as well")
		assert.False(t, restored.IsImpersonating)
		assert.Equal(t, parentID, restored.OrgID)
	})

	t.Run("switching while already impersonating is refused", func(t *testing.T) {
		uc := newTestAuthUsecase(new(MockUserRepository), new(MockSessionRepository), new(MockOrgRepository), new(MockRedisRepository))
		identity := &models.Identity{
			UserID:          "u1",
			OrgID:           "org-child",
			UserType:        constvars.UserTypeTenantAdmin,
			IsImpersonating: true,
			ActualUserType:  constvars.UserTypeSystemAdmin,
		}

		_, err := uc.SwitchContext(context.Background(), identity, &requests.SwitchContext{TargetOrgID: parentID})
		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrContextSwitchStacked(nil).Error(), err.Error())
	})

	t.Run("inactive target org reads as not found", func(t *testing.T) {
		inactive := *childOrg
		inactive.IsActive = false

		orgRepo := new(MockOrgRepository)
		orgRepo.On("FindByID", mock.Anything, "org-child").Return(&inactive, nil)

		uc := newTestAuthUsecase(new(MockUserRepository), new(MockSessionRepository), orgRepo, new(MockRedisRepository))
		identity := &models.Identity{
			UserID:         "u1",
			UserType:       constvars.UserTypeSystemAdmin,
			ActualUserType: constvars.UserTypeSystemAdmin,
		}

		_, err := uc.SwitchContext(context.Background(), identity, &requests.SwitchContext{TargetOrgID: "org-child"})
		assert.Error(t, err)
	})
}

func TestExitContext(t *testing.T) {
	t.Run("exit rebuilds the identity from the persisted record", func(t *testing.T) {
		// The account was moved to another org while impersonating; exit must
		// reflect the stored state, not the pre-switch token.
		persisted := &models.User{
			ID:       "u1",
			OrgID:    "org-moved",
			UserType: constvars.UserTypeSuperAdmin,
			RoleKey:  "admin",
			IsActive: true,
		}

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, "u1").Return(persisted, nil)
		sessionRepo := new(MockSessionRepository)
		sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Session")).Return(nil)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := newTestAuthUsecase(userRepo, sessionRepo, new(MockOrgRepository), redisRepo)
		identity := &models.Identity{
			UserID:          "u1",
			OrgID:           "org-child",
			UserType:        constvars.UserTypeTenantAdmin,
			IsImpersonating: true,
			ActualUserType:  constvars.UserTypeSuperAdmin,
		}

		response, err := uc.ExitContext(context.Background(), identity)
		assert.NoError(t, err)
		assert.False(t, response.IsImpersonating)
		assert.Equal(t, "org-moved", response.OrgID)
		assert.Equal(t, constvars.UserTypeSuperAdmin, response.UserType)
	})

	t.Run("exit without an active switch is refused", func(t *testing.T) {
		uc := newTestAuthUsecase(new(MockUserRepository), new(MockSessionRepository), new(MockOrgRepository), new(MockRedisRepository))
		identity := &models.Identity{UserID: "u1", UserType: constvars.UserTypeSuperAdmin}

		_, err := uc.ExitContext(context.Background(), identity)
		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrContextSwitchNotAllowed(nil).Error(), err.Error())
	})
}

func TestEnforceSessionCap(t *testing.T) {
	// Cap is 3; the user holds 5 active sessions sorted newest first, so the
	// two oldest must be evicted.
	sessions := []models.Session{
		{ID: "s5", UserID: "u1", TokenHash: "h5"},
		{ID: "s4", UserID: "u1", TokenHash: "h4"},
		{ID: "s3", UserID: "u1", TokenHash: "h3"},
		{ID: "s2", UserID: "u1", TokenHash: "h2"},
		{ID: "s1", UserID: "u1", TokenHash: "h1"},
	}

	sessionRepo := new(MockSessionRepository)
	redisRepo := new(MockRedisRepository)
	sessionRepo.On("FindUserIDsOverCap", mock.Anything, 3).Return([]string{"u1"}, nil)
	sessionRepo.On("FindActiveByUser", mock.Anything, "u1").Return(sessions, nil)
	sessionRepo.On("Terminate", mock.Anything, "s2", "", constvars.SessionTerminationEvicted, mock.Anything).Return(nil)
	sessionRepo.On("Terminate", mock.Anything, "s1", "", constvars.SessionTerminationEvicted, mock.Anything).Return(nil)
	redisRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	uc := newTestAuthUsecase(new(MockUserRepository), sessionRepo, new(MockOrgRepository), redisRepo)
	evicted, err := uc.EnforceSessionCap(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), evicted)
	sessionRepo.AssertExpectations(t)
	sessionRepo.AssertNotCalled(t, "Terminate", mock.Anything, "s5", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepExpiredSessions(t *testing.T) {
	idle := []models.Session{
		{ID: "s1", UserID: "u1", TokenHash: "h1"},
		{ID: "s2", UserID: "u2", TokenHash: "h2"},
	}

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("FindActiveIdleSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(idle, nil)
	sessionRepo.On("TerminateIdleSince", mock.Anything, mock.AnythingOfType("time.Time"), constvars.SessionTerminationIdle).Return(int64(2), nil)
	redisRepo := new(MockRedisRepository)
	redisRepo.On("Delete", mock.Anything, constvars.RedisSessionKeyPrefix+"h1").Return(nil)
	redisRepo.On("Delete", mock.Anything, constvars.RedisSessionKeyPrefix+"h2").Return(nil)

	uc := newTestAuthUsecase(new(MockUserRepository), sessionRepo, new(MockOrgRepository), redisRepo)
	swept, err := uc.SweepExpiredSessions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), swept)
	sessionRepo.AssertExpectations(t)
	redisRepo.AssertExpectations(t)
}

func TestResolveIdentity(t *testing.T) {
	cfg := testConfig()
	identity := &models.Identity{
		UserID:         "u1",
		OrgID:          "org-1",
		UserType:       constvars.UserTypeStaff,
		RoleKey:        "lab_tech",
		ActualUserType: constvars.UserTypeStaff,
	}
	token, _, err := utils.GenerateIdentityJWT(identity, cfg.JWT.Secret, cfg.JWT.ExpTimeInHour)
	assert.NoError(t, err)
	tokenHash := utils.HashToken(token)

	t.Run("cache miss falls back to the session store", func(t *testing.T) {
		sessionRepo := new(MockSessionRepository)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, constvars.RedisSessionKeyPrefix+tokenHash).Return("", nil)
		sessionRepo.On("FindActiveByTokenHash", mock.Anything, tokenHash).Return(&models.Session{ID: "s1", UserID: "u1", TokenHash: tokenHash, IsActive: true}, nil)
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := newTestAuthUsecase(new(MockUserRepository), sessionRepo, new(MockOrgRepository), redisRepo)
		resolved, resolvedHash, err := uc.ResolveIdentity(context.Background(), token)

		assert.NoError(t, err)
		assert.Equal(t, "u1", resolved.UserID)
		assert.Equal(t, tokenHash, resolvedHash)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("token without a live session row is invalid", func(t *testing.T) {
		sessionRepo := new(MockSessionRepository)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, mock.Anything).Return("", nil)
		sessionRepo.On("FindActiveByTokenHash", mock.Anything, tokenHash).Return(nil, nil)

		uc := newTestAuthUsecase(new(MockUserRepository), sessionRepo, new(MockOrgRepository), redisRepo)
		_, _, err := uc.ResolveIdentity(context.Background(), token)

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrSessionInvalid(nil).Error(), err.Error())
	})

	t.Run("garbage token never reaches the session store", func(t *testing.T) {
		sessionRepo := new(MockSessionRepository)

		uc := newTestAuthUsecase(new(MockUserRepository), sessionRepo, new(MockOrgRepository), new(MockRedisRepository))
		_, _, err := uc.ResolveIdentity(context.Background(), "not-a-jwt")

		assert.Error(t, err)
		sessionRepo.AssertNotCalled(t, "FindActiveByTokenHash", mock.Anything, mock.Anything)
	})
}

package bloodrequests

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type MockBloodRequestRepository struct {
	mock.Mock
}

func (m *MockBloodRequestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockBloodRequestRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.BloodRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.BloodRequest, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]models.BloodRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockBloodRequestRepository) Update(ctx context.Context, request *models.BloodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockBloodRequestRepository) AggregateTurnaround(ctx context.Context, filter bson.M) (int64, float64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.InventoryItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.InventoryItem, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]models.InventoryItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) ReserveAvailable(ctx context.Context, orgID, bloodType, componentType, requestID string, quantity int) (int64, error) {
	args := m.Called(ctx, orgID, bloodType, componentType, requestID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) IssueReserved(ctx context.Context, requestID string) (int64, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) ReleaseReserved(ctx context.Context, requestID string) (int64, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) DiscardExpired(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) AggregateStock(ctx context.Context, filter bson.M) ([]models.StockSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StockSummary), args.Error(1)
}

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
	return args.Get(0).([]models.Organization), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	args := m.Called(ctx, org)
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

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	args := m.Called(ctx, event, payload)
	return args.Error(0)
}

func requestorIdentity() *models.Identity {
	return &models.Identity{
		UserID:   "user-req",
		OrgID:    "org-hospital",
		UserType: "requestor",
	}
}

func pendingRequest() *models.BloodRequest {
	return &models.BloodRequest{
		ID:            "req-1",
		OrgID:         "org-hospital",
		TargetOrgID:   "org-bank",
		BloodType:     "O+",
		ComponentType: "rbc",
		Quantity:      3,
		Urgency:       models.RequestUrgencyUrgent,
		Status:        models.RequestStatusPending,
		RequestedBy:   "user-req",
	}
}

func TestBloodRequestCreate(t *testing.T) {
	payload := &requests.CreateBloodRequest{
		TargetOrgID:   "org-bank",
		BloodType:     "O+",
		ComponentType: "rbc",
		Quantity:      3,
		Urgency:       "urgent",
	}

	t.Run("requesting from your own org is refused", func(t *testing.T) {
		requestRepo := new(MockBloodRequestRepository)
		uc := NewBloodRequestUsecase(requestRepo, new(MockInventoryRepository), new(MockOrganizationRepository), new(MockScopeResolver), new(MockNotificationPublisher), zap.NewNop())

		self := &requests.CreateBloodRequest{TargetOrgID: "org-hospital", BloodType: "O+", ComponentType: "rbc", Quantity: 1, Urgency: "routine"}
		_, err := uc.Create(context.Background(), requestorIdentity(), self)

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidStateTransition(nil).Error(), err.Error())
		requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("inactive target org is refused", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepository)
		orgRepo.On("FindByID", mock.Anything, "org-bank").Return(&models.Organization{ID: "org-bank", IsActive: false}, nil)

		uc := NewBloodRequestUsecase(new(MockBloodRequestRepository), new(MockInventoryRepository), orgRepo, new(MockScopeResolver), new(MockNotificationPublisher), zap.NewNop())
		_, err := uc.Create(context.Background(), requestorIdentity(), payload)

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrOrgNotExist(nil).Error(), err.Error())
	})

	t.Run("valid request is stored pending and the event is published", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepository)
		orgRepo.On("FindByID", mock.Anything, "org-bank").Return(&models.Organization{ID: "org-bank", IsActive: true}, nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.BloodRequest")).Return(nil)
		publisher := new(MockNotificationPublisher)
		publisher.On("Publish", mock.Anything, "blood_request.created", mock.Anything).Return(nil)

		uc := NewBloodRequestUsecase(requestRepo, new(MockInventoryRepository), orgRepo, new(MockScopeResolver), publisher, zap.NewNop())
		created, err := uc.Create(context.Background(), requestorIdentity(), payload)

		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusPending, created.Status)
		assert.Equal(t, "org-hospital", created.OrgID)
		assert.Equal(t, "org-bank", created.TargetOrgID)
		publisher.AssertExpectations(t)
	})

	t.Run("a failed publish does not fail the request", func(t *testing.T) {
		orgRepo := new(MockOrganizationRepository)
		orgRepo.On("FindByID", mock.Anything, "org-bank").Return(&models.Organization{ID: "org-bank", IsActive: true}, nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		publisher := new(MockNotificationPublisher)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		uc := NewBloodRequestUsecase(requestRepo, new(MockInventoryRepository), orgRepo, new(MockScopeResolver), publisher, zap.NewNop())
		created, err := uc.Create(context.Background(), requestorIdentity(), payload)

		assert.NoError(t, err, "notification delivery is best effort")
		assert.NotNil(t, created)
	})
}

func TestBloodRequestDecide(t *testing.T) {
	bankIdentity := &models.Identity{UserID: "user-bank", OrgID: "org-bank", UserType: "staff"}
	approve := &requests.DecideBloodRequest{Decision: models.RequestStatusApproved, Note: "stock on hand"}

	t.Run("only the target org may decide", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-hospital"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(pendingRequest(), nil)

		uc := NewBloodRequestUsecase(requestRepo, new(MockInventoryRepository), new(MockOrganizationRepository), scope, new(MockNotificationPublisher), zap.NewNop())
		_, err := uc.Decide(context.Background(), requestorIdentity(), "req-1", approve)

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrScopeForbidden(nil).Error(), err.Error())
	})

	t.Run("deciding a non-pending request is refused", func(t *testing.T) {
		decided := pendingRequest()
		decided.Status = models.RequestStatusApproved

		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(decided, nil)

		uc := NewBloodRequestUsecase(requestRepo, new(MockInventoryRepository), new(MockOrganizationRepository), scope, new(MockNotificationPublisher), zap.NewNop())
		_, err := uc.Decide(context.Background(), bankIdentity, "req-1", approve)

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidStateTransition(nil).Error(), err.Error())
	})

	t.Run("approval with short stock releases the partial reservation and refuses", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(pendingRequest(), nil)
		inventoryRepo := new(MockInventoryRepository)
		inventoryRepo.On("ReserveAvailable", mock.Anything, "org-bank", "O+", "rbc", "req-1", 3).Return(int64(1), nil)
		inventoryRepo.On("ReleaseReserved", mock.Anything, "req-1").Return(int64(1), nil)

		uc := NewBloodRequestUsecase(requestRepo, inventoryRepo, new(MockOrganizationRepository), scope, new(MockNotificationPublisher), zap.NewNop())
		_, err := uc.Decide(context.Background(), bankIdentity, "req-1", approve)

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInsufficientStock(nil).Error(), err.Error())
		requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		inventoryRepo.AssertExpectations(t)
	})

	t.Run("approval reserves stock and records the decision", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(pendingRequest(), nil)
		requestRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.BloodRequest")).Return(nil)
		inventoryRepo := new(MockInventoryRepository)
		inventoryRepo.On("ReserveAvailable", mock.Anything, "org-bank", "O+", "rbc", "req-1", 3).Return(int64(3), nil)
		publisher := new(MockNotificationPublisher)
		publisher.On("Publish", mock.Anything, "blood_request.decided", mock.Anything).Return(nil)

		uc := NewBloodRequestUsecase(requestRepo, inventoryRepo, new(MockOrganizationRepository), scope, publisher, zap.NewNop())
		decided, err := uc.Decide(context.Background(), bankIdentity, "req-1", approve)

		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusApproved, decided.Status)
		assert.Equal(t, "user-bank", decided.DecidedBy)
		assert.NotNil(t, decided.DecidedAt)
		assert.Equal(t, "stock on hand", decided.DecisionNote)
		inventoryRepo.AssertExpectations(t)
	})

	t.Run("rejection reserves nothing and frees anything already held", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(pendingRequest(), nil)
		requestRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		inventoryRepo := new(MockInventoryRepository)
		inventoryRepo.On("ReleaseReserved", mock.Anything, "req-1").Return(int64(0), nil)
		publisher := new(MockNotificationPublisher)
		publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		uc := NewBloodRequestUsecase(requestRepo, inventoryRepo, new(MockOrganizationRepository), scope, publisher, zap.NewNop())
		decided, err := uc.Decide(context.Background(), bankIdentity, "req-1", &requests.DecideBloodRequest{Decision: models.RequestStatusRejected, Note: "expired lot"})

		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusRejected, decided.Status)
		inventoryRepo.AssertNotCalled(t, "ReserveAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		inventoryRepo.AssertExpectations(t)
	})
}

func TestBloodRequestCancel(t *testing.T) {
	t.Run("the requesting org may cancel while pending", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-hospital"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(pendingRequest(), nil)
		requestRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		inventoryRepo := new(MockInventoryRepository)
		inventoryRepo.On("ReleaseReserved", mock.Anything, "req-1").Return(int64(0), nil)

		uc := NewBloodRequestUsecase(requestRepo, inventoryRepo, new(MockOrganizationRepository), scope, new(MockNotificationPublisher), zap.NewNop())
		cancelled, err := uc.Cancel(context.Background(), requestorIdentity(), "req-1")

		assert.NoError(t, err)
		assert.Equal(t, models.RequestStatusCancelled, cancelled.Status)
		inventoryRepo.AssertExpectations(t)
	})

	t.Run("the target org may not cancel on the requester's behalf", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(pendingRequest(), nil)

		uc := NewBloodRequestUsecase(requestRepo, new(MockInventoryRepository), new(MockOrganizationRepository), scope, new(MockNotificationPublisher), zap.NewNop())
		_, err := uc.Cancel(context.Background(), &models.Identity{UserID: "user-bank", OrgID: "org-bank"}, "req-1")

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrScopeForbidden(nil).Error(), err.Error())
		requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

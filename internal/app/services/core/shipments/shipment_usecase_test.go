package shipments

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

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Create(ctx context.Context, shipment *models.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Shipment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Shipment, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]models.Shipment), args.Get(1).(int64), args.Error(2)
}

func (m *MockShipmentRepository) Update(ctx context.Context, shipment *models.Shipment) error {
	args := m.Called(ctx, shipment)
	return args.Error(0)
}

func (m *MockShipmentRepository) AppendTemperatureReading(ctx context.Context, shipmentID string, reading models.TemperatureReading) error {
	args := m.Called(ctx, shipmentID, reading)
	return args.Error(0)
}

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

func bankIdentity() *models.Identity {
	return &models.Identity{UserID: "user-bank", OrgID: "org-bank", UserType: "staff"}
}

func approvedRequest() *models.BloodRequest {
	return &models.BloodRequest{
		ID:            "req-1",
		OrgID:         "org-hospital",
		TargetOrgID:   "org-bank",
		BloodType:     "A-",
		ComponentType: "platelets",
		Quantity:      2,
		Status:        models.RequestStatusApproved,
	}
}

func TestDispatch(t *testing.T) {
	payload := &requests.CreateShipment{RequestID: "req-1", Courier: "MedExpress"}

	t.Run("dispatch issues reserved units and fulfills the request", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(approvedRequest(), nil)
		requestRepo.On("Update", mock.Anything, mock.MatchedBy(func(r *models.BloodRequest) bool {
			return r.Status == models.RequestStatusFulfilled
		})).Return(nil)
		inventoryRepo := new(MockInventoryRepository)
		inventoryRepo.On("IssueReserved", mock.Anything, "req-1").Return(int64(2), nil)
		shipmentRepo := new(MockShipmentRepository)
		shipmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Shipment")).Return(nil)

		uc := NewShipmentUsecase(shipmentRepo, requestRepo, inventoryRepo, scope, zap.NewNop())
		shipment, err := uc.Dispatch(context.Background(), bankIdentity(), payload)

		assert.NoError(t, err)
		assert.Equal(t, models.ShipmentStatusDispatched, shipment.Status)
		assert.Equal(t, "org-bank", shipment.OrgID, "the shipment belongs to the fulfilling org")
		assert.Equal(t, "req-1", shipment.RequestID)
		assert.Equal(t, "MedExpress", shipment.Courier)
		assert.NotNil(t, shipment.TemperatureLog)
		assert.Empty(t, shipment.TemperatureLog)
		requestRepo.AssertExpectations(t)
		inventoryRepo.AssertExpectations(t)
	})

	t.Run("only the fulfilling org may dispatch", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-hospital"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(approvedRequest(), nil)
		shipmentRepo := new(MockShipmentRepository)

		uc := NewShipmentUsecase(shipmentRepo, requestRepo, new(MockInventoryRepository), scope, zap.NewNop())
		_, err := uc.Dispatch(context.Background(), &models.Identity{UserID: "u", OrgID: "org-hospital"}, payload)

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrScopeForbidden(nil).Error(), err.Error())
		shipmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("dispatching an unapproved request is refused", func(t *testing.T) {
		pending := approvedRequest()
		pending.Status = models.RequestStatusPending

		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		requestRepo := new(MockBloodRequestRepository)
		requestRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(pending, nil)
		inventoryRepo := new(MockInventoryRepository)

		uc := NewShipmentUsecase(new(MockShipmentRepository), requestRepo, inventoryRepo, scope, zap.NewNop())
		_, err := uc.Dispatch(context.Background(), bankIdentity(), payload)

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidStateTransition(nil).Error(), err.Error())
		inventoryRepo.AssertNotCalled(t, "IssueReserved", mock.Anything, mock.Anything)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("delivery stamps the delivered time", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		shipmentRepo := new(MockShipmentRepository)
		shipmentRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(&models.Shipment{ID: "shp-1", OrgID: "org-bank", Status: models.ShipmentStatusInTransit}, nil)
		shipmentRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		uc := NewShipmentUsecase(shipmentRepo, new(MockBloodRequestRepository), new(MockInventoryRepository), scope, zap.NewNop())
		shipment, err := uc.UpdateStatus(context.Background(), bankIdentity(), "shp-1", &requests.UpdateShipmentStatus{Status: models.ShipmentStatusDelivered})

		assert.NoError(t, err)
		assert.Equal(t, models.ShipmentStatusDelivered, shipment.Status)
		assert.NotNil(t, shipment.DeliveredAt)
	})

	t.Run("a delivered shipment cannot move back in transit", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		shipmentRepo := new(MockShipmentRepository)
		shipmentRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(&models.Shipment{ID: "shp-1", OrgID: "org-bank", Status: models.ShipmentStatusDelivered}, nil)

		uc := NewShipmentUsecase(shipmentRepo, new(MockBloodRequestRepository), new(MockInventoryRepository), scope, zap.NewNop())
		_, err := uc.UpdateStatus(context.Background(), bankIdentity(), "shp-1", &requests.UpdateShipmentStatus{Status: models.ShipmentStatusInTransit})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidStateTransition(nil).Error(), err.Error())
		shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestValidShipmentTransition(t *testing.T) {
	assert.True(t, validShipmentTransition(models.ShipmentStatusDispatched, models.ShipmentStatusInTransit))
	assert.True(t, validShipmentTransition(models.ShipmentStatusDispatched, models.ShipmentStatusDelivered))
	assert.True(t, validShipmentTransition(models.ShipmentStatusInTransit, models.ShipmentStatusDelivered))
	assert.False(t, validShipmentTransition(models.ShipmentStatusDelivered, models.ShipmentStatusInTransit))
	assert.False(t, validShipmentTransition(models.ShipmentStatusInTransit, models.ShipmentStatusDispatched))
	assert.False(t, validShipmentTransition(models.ShipmentStatusDelivered, models.ShipmentStatusDelivered))
}

func TestAddTemperatureReading(t *testing.T) {
	t.Run("a reading is appended with the recording user", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		shipmentRepo := new(MockShipmentRepository)
		shipmentRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(&models.Shipment{ID: "shp-1", OrgID: "org-bank", Status: models.ShipmentStatusInTransit}, nil)
		shipmentRepo.On("AppendTemperatureReading", mock.Anything, "shp-1", mock.MatchedBy(func(r models.TemperatureReading) bool {
			return r.TemperatureC == 4.5 && r.RecordedBy == "user-bank"
		})).Return(nil)

		uc := NewShipmentUsecase(shipmentRepo, new(MockBloodRequestRepository), new(MockInventoryRepository), scope, zap.NewNop())
		err := uc.AddTemperatureReading(context.Background(), bankIdentity(), "shp-1", &requests.AddTemperatureReading{TemperatureC: 4.5})

		assert.NoError(t, err)
		shipmentRepo.AssertExpectations(t)
	})

	t.Run("readings are frozen once delivered", func(t *testing.T) {
		scope := new(MockScopeResolver)
		scope.On("ResolveWritableOrgs", mock.Anything, mock.Anything).Return(models.NewOrgIDSet("org-bank"), nil)
		shipmentRepo := new(MockShipmentRepository)
		shipmentRepo.On("FindOneWithFilter", mock.Anything, mock.Anything).Return(&models.Shipment{ID: "shp-1", OrgID: "org-bank", Status: models.ShipmentStatusDelivered}, nil)

		uc := NewShipmentUsecase(shipmentRepo, new(MockBloodRequestRepository), new(MockInventoryRepository), scope, zap.NewNop())
		err := uc.AddTemperatureReading(context.Background(), bankIdentity(), "shp-1", &requests.AddTemperatureReading{TemperatureC: 4.5})

		assert.Error(t, err)
		assert.Equal(t, exceptions.ErrInvalidStateTransition(nil).Error(), err.Error())
		shipmentRepo.AssertNotCalled(t, "AppendTemperatureReading", mock.Anything, mock.Anything, mock.Anything)
	})
}

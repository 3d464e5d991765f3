package shipments

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/app/services/core/access"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type shipmentUsecase struct {
	ShipmentRepository     contracts.ShipmentRepository
	BloodRequestRepository contracts.BloodRequestRepository
	InventoryRepository    contracts.InventoryRepository
	ScopeResolver          contracts.ScopeResolver
	Logger                 *zap.Logger
}

func NewShipmentUsecase(
	shipmentRepository contracts.ShipmentRepository,
	bloodRequestRepository contracts.BloodRequestRepository,
	inventoryRepository contracts.InventoryRepository,
	scopeResolver contracts.ScopeResolver,
	logger *zap.Logger,
) contracts.ShipmentUsecase {
	return &shipmentUsecase{
		ShipmentRepository:     shipmentRepository,
		BloodRequestRepository: bloodRequestRepository,
		InventoryRepository:    inventoryRepository,
		ScopeResolver:          scopeResolver,
		Logger:                 logger,
	}
}

func (uc *shipmentUsecase) Dispatch(ctx context.Context, identity *models.Identity, request *requests.CreateShipment) (*models.Shipment, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	bloodRequest, err := uc.BloodRequestRepository.FindOneWithFilter(ctx, bson.M{"id": request.RequestID})
	if err != nil {
		return nil, err
	}
	if bloodRequest == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !writable.Contains(bloodRequest.TargetOrgID) {
		return nil, exceptions.ErrScopeForbidden(nil)
	}
	if bloodRequest.Status != models.RequestStatusApproved {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	now := time.Now().UTC()
	issued, err := uc.InventoryRepository.IssueReserved(ctx, bloodRequest.ID)
	if err != nil {
		return nil, err
	}
	if issued < int64(bloodRequest.Quantity) {
		uc.Logger.Warn("issued fewer units than requested",
			zap.String("requestId", bloodRequest.ID),
			zap.Int64("issued", issued),
			zap.Int("requested", bloodRequest.Quantity),
		)
	}

	shipment := &models.Shipment{
		ID:             utils.GenerateUUID(),
		OrgID:          bloodRequest.TargetOrgID,
		RequestID:      bloodRequest.ID,
		Status:         models.ShipmentStatusDispatched,
		Courier:        request.Courier,
		DispatchedAt:   now,
		TemperatureLog: []models.TemperatureReading{},
		TimeModel:      models.NewTimeModel(now),
	}

	if err := uc.ShipmentRepository.Create(ctx, shipment); err != nil {
		return nil, err
	}

	bloodRequest.Status = models.RequestStatusFulfilled
	bloodRequest.Touch(now)
	if err := uc.BloodRequestRepository.Update(ctx, bloodRequest); err != nil {
		return nil, err
	}

	return shipment, nil
}

func (uc *shipmentUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.Shipment, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	filter := access.BuildScopeFilter(scope, bson.M{})
	return uc.ShipmentRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *shipmentUsecase) GetByID(ctx context.Context, identity *models.Identity, shipmentID string) (*models.Shipment, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	shipment, err := uc.ShipmentRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(scope, bson.M{"id": shipmentID}))
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return shipment, nil
}

func (uc *shipmentUsecase) UpdateStatus(ctx context.Context, identity *models.Identity, shipmentID string, request *requests.UpdateShipmentStatus) (*models.Shipment, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	shipment, err := uc.ShipmentRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(writable, bson.M{"id": shipmentID}))
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if !validShipmentTransition(shipment.Status, request.Status) {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	now := time.Now().UTC()
	shipment.Status = request.Status
	if request.Status == models.ShipmentStatusDelivered {
		shipment.DeliveredAt = &now
	}
	shipment.Touch(now)

	if err := uc.ShipmentRepository.Update(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (uc *shipmentUsecase) AddTemperatureReading(ctx context.Context, identity *models.Identity, shipmentID string, request *requests.AddTemperatureReading) error {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return err
	}

	shipment, err := uc.ShipmentRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(writable, bson.M{"id": shipmentID}))
	if err != nil {
		return err
	}
	if shipment == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	if shipment.Status == models.ShipmentStatusDelivered {
		return exceptions.ErrInvalidStateTransition(nil)
	}

	reading := models.TemperatureReading{
		RecordedAt:   time.Now().UTC(),
		TemperatureC: request.TemperatureC,
		RecordedBy:   identity.UserID,
	}
	return uc.ShipmentRepository.AppendTemperatureReading(ctx, shipmentID, reading)
}

func validShipmentTransition(from, to string) bool {
	switch from {
	case models.ShipmentStatusDispatched:
		return to == models.ShipmentStatusInTransit || to == models.ShipmentStatusDelivered
	case models.ShipmentStatusInTransit:
		return to == models.ShipmentStatusDelivered
	default:
		return false
	}
}

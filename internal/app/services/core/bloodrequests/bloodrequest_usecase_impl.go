package bloodrequests

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type bloodRequestUsecase struct {
	BloodRequestRepository contracts.BloodRequestRepository
	InventoryRepository    contracts.InventoryRepository
	OrganizationRepository contracts.OrganizationRepository
	ScopeResolver          contracts.ScopeResolver
	NotificationPublisher  contracts.NotificationPublisher
	Logger                 *zap.Logger
}

func NewBloodRequestUsecase(
	bloodRequestRepository contracts.BloodRequestRepository,
	inventoryRepository contracts.InventoryRepository,
	organizationRepository contracts.OrganizationRepository,
	scopeResolver contracts.ScopeResolver,
	notificationPublisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.BloodRequestUsecase {
	return &bloodRequestUsecase{
		BloodRequestRepository: bloodRequestRepository,
		InventoryRepository:    inventoryRepository,
		OrganizationRepository: organizationRepository,
		ScopeResolver:          scopeResolver,
		NotificationPublisher:  notificationPublisher,
		Logger:                 logger,
	}
}

func (uc *bloodRequestUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateBloodRequest) (*models.BloodRequest, error) {
	if identity.OrgID == "" {
		return nil, exceptions.ErrScopeForbidden(nil)
	}
	if request.TargetOrgID == identity.OrgID {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	targetOrg, err := uc.OrganizationRepository.FindByID(ctx, request.TargetOrgID)
	if err != nil {
		return nil, err
	}
	if targetOrg == nil || !targetOrg.IsActive {
		return nil, exceptions.ErrOrgNotExist(nil)
	}

	now := time.Now().UTC()
	bloodRequest := &models.BloodRequest{
		ID:            utils.GenerateUUID(),
		OrgID:         identity.OrgID,
		TargetOrgID:   targetOrg.ID,
		BloodType:     request.BloodType,
		ComponentType: request.ComponentType,
		Quantity:      request.Quantity,
		Urgency:       request.Urgency,
		Status:        models.RequestStatusPending,
		RequestedBy:   identity.UserID,
		TimeModel:     models.NewTimeModel(now),
	}

	if err := uc.BloodRequestRepository.Create(ctx, bloodRequest); err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.NotificationEventRequestCreated, bloodRequest)
	return bloodRequest, nil
}

func (uc *bloodRequestUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.BloodRequest, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	// A request is visible to both sides, so the scope clause matches the
	// requesting org or the target org.
	filter := bson.M{"$or": []bson.M{
		{"org_id": bson.M{"$in": scope.ToSlice()}},
		{"target_org_id": bson.M{"$in": scope.ToSlice()}},
	}}
	return uc.BloodRequestRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *bloodRequestUsecase) GetByID(ctx context.Context, identity *models.Identity, requestID string) (*models.BloodRequest, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	bloodRequest, err := uc.BloodRequestRepository.FindOneWithFilter(ctx, bson.M{
		"id": requestID,
		"$or": []bson.M{
			{"org_id": bson.M{"$in": scope.ToSlice()}},
			{"target_org_id": bson.M{"$in": scope.ToSlice()}},
		},
	})
	if err != nil {
		return nil, err
	}
	if bloodRequest == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return bloodRequest, nil
}

func (uc *bloodRequestUsecase) Decide(ctx context.Context, identity *models.Identity, requestID string, request *requests.DecideBloodRequest) (*models.BloodRequest, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	bloodRequest, err := uc.BloodRequestRepository.FindOneWithFilter(ctx, bson.M{"id": requestID})
	if err != nil {
		return nil, err
	}
	if bloodRequest == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !writable.Contains(bloodRequest.TargetOrgID) {
		return nil, exceptions.ErrScopeForbidden(nil)
	}
	if bloodRequest.Status != models.RequestStatusPending {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	now := time.Now().UTC()
	if request.Decision == models.RequestStatusApproved {
		reserved, err := uc.InventoryRepository.ReserveAvailable(
			ctx,
			bloodRequest.TargetOrgID,
			bloodRequest.BloodType,
			bloodRequest.ComponentType,
			bloodRequest.ID,
			bloodRequest.Quantity,
		)
		if err != nil {
			return nil, err
		}
		if reserved < int64(bloodRequest.Quantity) {
			// Return the partial reservation to the pool before refusing,
			// so no units stay parked against a still-pending request.
			uc.releaseReservation(ctx, bloodRequest.ID)
			return nil, exceptions.ErrInsufficientStock(nil)
		}
	} else {
		uc.releaseReservation(ctx, bloodRequest.ID)
	}

	bloodRequest.Status = request.Decision
	bloodRequest.DecidedBy = identity.UserID
	bloodRequest.DecidedAt = &now
	bloodRequest.DecisionNote = request.Note
	bloodRequest.Touch(now)

	if err := uc.BloodRequestRepository.Update(ctx, bloodRequest); err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.NotificationEventRequestDecided, bloodRequest)
	return bloodRequest, nil
}

func (uc *bloodRequestUsecase) Cancel(ctx context.Context, identity *models.Identity, requestID string) (*models.BloodRequest, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	bloodRequest, err := uc.BloodRequestRepository.FindOneWithFilter(ctx, bson.M{"id": requestID})
	if err != nil {
		return nil, err
	}
	if bloodRequest == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if !writable.Contains(bloodRequest.OrgID) {
		return nil, exceptions.ErrScopeForbidden(nil)
	}
	if bloodRequest.Status != models.RequestStatusPending {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	uc.releaseReservation(ctx, bloodRequest.ID)

	bloodRequest.Status = models.RequestStatusCancelled
	bloodRequest.Touch(time.Now().UTC())

	if err := uc.BloodRequestRepository.Update(ctx, bloodRequest); err != nil {
		return nil, err
	}
	return bloodRequest, nil
}

// releaseReservation is best effort: a failed release leaves units reserved
// against a request that will never ship, which operators can spot through
// the inventory listing.
func (uc *bloodRequestUsecase) releaseReservation(ctx context.Context, requestID string) {
	released, err := uc.InventoryRepository.ReleaseReserved(ctx, requestID)
	if err != nil {
		uc.Logger.Warn("failed to release reserved units",
			zap.String("requestId", requestID),
			zap.Error(err),
		)
		return
	}
	if released > 0 {
		uc.Logger.Info("reserved units released",
			zap.String("requestId", requestID),
			zap.Int64("released", released),
		)
	}
}

func (uc *bloodRequestUsecase) publish(ctx context.Context, event string, bloodRequest *models.BloodRequest) {
	if uc.NotificationPublisher == nil {
		return
	}
	if err := uc.NotificationPublisher.Publish(ctx, event, bloodRequest); err != nil {
		uc.Logger.Warn("failed to publish blood request event",
			zap.String("event", event),
			zap.String("requestId", bloodRequest.ID),
			zap.Error(err),
		)
	}
}

package reports

import (
	"context"
	"fmt"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/responses"
	"hemolink-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type reportUsecase struct {
	InventoryRepository    contracts.InventoryRepository
	DonationRepository     contracts.DonationRepository
	BloodRequestRepository contracts.BloodRequestRepository
	ScopeResolver          contracts.ScopeResolver
	ReportStorage          contracts.ReportStorage
	Logger                 *zap.Logger
}

func NewReportUsecase(
	inventoryRepository contracts.InventoryRepository,
	donationRepository contracts.DonationRepository,
	bloodRequestRepository contracts.BloodRequestRepository,
	scopeResolver contracts.ScopeResolver,
	reportStorage contracts.ReportStorage,
	logger *zap.Logger,
) contracts.ReportUsecase {
	return &reportUsecase{
		InventoryRepository:    inventoryRepository,
		DonationRepository:     donationRepository,
		BloodRequestRepository: bloodRequestRepository,
		ScopeResolver:          scopeResolver,
		ReportStorage:          reportStorage,
		Logger:                 logger,
	}
}

func (uc *reportUsecase) StockByBloodType(ctx context.Context, identity *models.Identity) ([]models.StockSummary, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if len(scope) == 0 {
		return nil, exceptions.ErrScopeEmpty(nil)
	}

	return uc.InventoryRepository.AggregateStock(ctx, bson.M{"org_id": bson.M{"$in": scope.ToSlice()}})
}

func (uc *reportUsecase) DonationSummary(ctx context.Context, identity *models.Identity, from, to time.Time) (*responses.DonationSummary, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if len(scope) == 0 {
		return nil, exceptions.ErrScopeEmpty(nil)
	}

	rows, err := uc.DonationRepository.AggregateSummary(ctx, bson.M{
		"org_id":       bson.M{"$in": scope.ToSlice()},
		"collected_at": bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		return nil, err
	}

	summary := &responses.DonationSummary{
		From:        from,
		To:          to,
		ByBloodType: make(map[string]int),
	}
	for _, row := range rows {
		summary.TotalDonations += row.Count
		summary.TotalVolumeML += row.VolumeML
		summary.ByBloodType[row.BloodType] = row.Count
	}
	return summary, nil
}

func (uc *reportUsecase) RequestTurnaround(ctx context.Context, identity *models.Identity) (*responses.RequestTurnaround, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if len(scope) == 0 {
		return nil, exceptions.ErrScopeEmpty(nil)
	}

	total, avgHours, err := uc.BloodRequestRepository.AggregateTurnaround(ctx, bson.M{
		"target_org_id": bson.M{"$in": scope.ToSlice()},
	})
	if err != nil {
		return nil, err
	}

	return &responses.RequestTurnaround{
		TotalDecided:     int(total),
		AvgDecisionHours: avgHours,
	}, nil
}

func (uc *reportUsecase) Export(ctx context.Context, identity *models.Identity) (*responses.ReportExport, error) {
	now := time.Now().UTC()

	stock, err := uc.StockByBloodType(ctx, identity)
	if err != nil {
		return nil, err
	}
	donations, err := uc.DonationSummary(ctx, identity, now.AddDate(0, -1, 0), now)
	if err != nil {
		return nil, err
	}
	turnaround, err := uc.RequestTurnaround(ctx, identity)
	if err != nil {
		return nil, err
	}

	document := map[string]interface{}{
		"generatedAt":       now,
		"generatedBy":       identity.UserID,
		"stockByBloodType":  stock,
		"donationSummary":   donations,
		"requestTurnaround": turnaround,
	}

	data, err := json.Marshal(document)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf("reports/%s/%s.json", identity.OrgID, now.Format("20060102-150405"))
	url, err := uc.ReportStorage.UploadJSON(ctx, objectName, data)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("report exported",
		zap.String("objectName", objectName),
		zap.String("userId", identity.UserID),
	)
	return &responses.ReportExport{ObjectName: objectName, URL: url}, nil
}

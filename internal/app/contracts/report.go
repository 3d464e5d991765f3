package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/responses"
	"time"
)

type ReportUsecase interface {
	StockByBloodType(ctx context.Context, identity *models.Identity) ([]models.StockSummary, error)
	DonationSummary(ctx context.Context, identity *models.Identity, from, to time.Time) (*responses.DonationSummary, error)
	RequestTurnaround(ctx context.Context, identity *models.Identity) (*responses.RequestTurnaround, error)
	Export(ctx context.Context, identity *models.Identity) (*responses.ReportExport, error)
}

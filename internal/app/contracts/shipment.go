package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *models.Shipment) error
	FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Shipment, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Shipment, int64, error)
	Update(ctx context.Context, shipment *models.Shipment) error
	AppendTemperatureReading(ctx context.Context, shipmentID string, reading models.TemperatureReading) error
}

type ShipmentUsecase interface {
	Dispatch(ctx context.Context, identity *models.Identity, request *requests.CreateShipment) (*models.Shipment, error)
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.Shipment, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, shipmentID string) (*models.Shipment, error)
	UpdateStatus(ctx context.Context, identity *models.Identity, shipmentID string, request *requests.UpdateShipmentStatus) (*models.Shipment, error)
	AddTemperatureReading(ctx context.Context, identity *models.Identity, shipmentID string, request *requests.AddTemperatureReading) error
}

package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap carries the constructed drivers into wiring. Nothing here is a
// package-level singleton; everything is injected downstream.
type Bootstrap struct {
	Router          *chi.Mux
	MongoDB         *mongo.Client
	Redis           *redis.Client
	RabbitMQChannel *amqp.Channel
	Minio           *minio.Client
	Logger          *zap.Logger
	DriverConfig    *DriverConfig
	InternalConfig  *InternalConfig
}

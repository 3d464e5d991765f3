package database

import (
	"context"
	"fmt"
	"hemolink-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	if err := client.Ping(context.TODO()).Err(); err != nil {
		logrus.Fatalf("Failed to ping redis: %s", err.Error())
	}
	logrus.Println("Successfully connected to redis")
	return client
}

package storage

import (
	"context"
	"fmt"
	"hemolink-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

func NewMinioClient(driverConfig *config.DriverConfig) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		logrus.Fatalf("Failed to create minio client: %s", err.Error())
	}

	exists, err := client.BucketExists(context.TODO(), driverConfig.Minio.BucketName)
	if err != nil {
		logrus.Fatalf("Failed to check minio bucket: %s", err.Error())
	}
	if !exists {
		err = client.MakeBucket(context.TODO(), driverConfig.Minio.BucketName, minio.MakeBucketOptions{})
		if err != nil {
			logrus.Fatalf("Failed to create minio bucket: %s", err.Error())
		}
	}

	logrus.Println("Successfully connected to minio")
	return client
}

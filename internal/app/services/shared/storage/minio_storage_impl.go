package storage

import (
	"bytes"
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/pkg/exceptions"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient    *minio.Client
	BucketName     string
	PresignedHours int
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, presignedHours int) contracts.ReportStorage {
	return &minioStorage{
		MinioClient:    minioClient,
		BucketName:     bucketName,
		PresignedHours: presignedHours,
	}
}

func (m *minioStorage) UploadJSON(ctx context.Context, objectName string, data []byte) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", exceptions.ErrMinioUploadObject(err, m.BucketName)
	}

	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, time.Duration(m.PresignedHours)*time.Hour, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignedURL(err, m.BucketName)
	}

	return presignedURL.String(), nil
}

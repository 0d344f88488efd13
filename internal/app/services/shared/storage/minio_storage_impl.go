package storage

import (
	"bytes"
	"context"
	"time"

	"github.com/minio/minio-go/v7"

	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/pkg/exceptions"
)

type minioStorage struct {
	MinioClient  *minio.Client
	BucketName   string
	PresignedTTL time.Duration
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, presignedTTL time.Duration) contracts.Storage {
	return &minioStorage{
		MinioClient:  minioClient,
		BucketName:   bucketName,
		PresignedTTL: presignedTTL,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, input *contracts.UploadObjectInput) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		input.ObjectName,
		bytes.NewReader(input.Data),
		int64(len(input.Data)),
		minio.PutObjectOptions{ContentType: input.ContentType},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return input.ObjectName, nil
}

func (m *minioStorage) GetPresignedURL(ctx context.Context, objectName string) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, m.PresignedTTL, nil)
	if err != nil {
		return "", exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return presignedURL.String(), nil
}

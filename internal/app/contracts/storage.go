package contracts

import "context"

type UploadObjectInput struct {
	ObjectName  string
	Data        []byte
	ContentType string
}

type Storage interface {
	UploadObject(ctx context.Context, input *UploadObjectInput) (objectName string, err error)
	GetPresignedURL(ctx context.Context, objectName string) (string, error)
}

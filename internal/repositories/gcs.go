package repositories

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/clearpath-au/go-remit/internal/config"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// CloudStorageRepository archives audit export files. One object per export
// request, named under the configured prefix.
type CloudStorageRepository interface {
	Upload(ctx context.Context, objectName, contentType string, data []byte) (url string, err error)
	NewReader(ctx context.Context, objectName string) (io.ReadCloser, error)
	GetSignedURL(objectName string, expireDuration time.Duration) (url string, err error)
	IsObjectExist(ctx context.Context, objectName string) (isExist bool, url string)
	Close() error
}

type cloudStorageClient struct {
	config *config.CloudStorageConfig
	client *storage.Client
}

func NewCloudStorageRepository(cfg *config.Config, opts ...option.ClientOption) (CloudStorageRepository, error) {
	if cfg.CloudStorage.BucketName == "" {
		return nil, fmt.Errorf("failed to init cloud storage bucket name not set")
	}

	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	return &cloudStorageClient{client: client, config: &cfg.CloudStorage}, nil
}

func (cs *cloudStorageClient) objectPath(objectName string) string {
	if cs.config.ExportPrefix == "" {
		return objectName
	}
	return fmt.Sprintf("%s/%s", cs.config.ExportPrefix, objectName)
}

func (cs *cloudStorageClient) Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	path := cs.objectPath(objectName)
	obj := cs.client.Bucket(cs.config.BucketName).Object(path)

	writer := obj.NewWriter(ctx)
	writer.ContentType = contentType
	writer.ContentDisposition = fmt.Sprintf("attachment; filename=%s", objectName)

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close object writer: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", cs.config.BaseURL, cs.config.BucketName, path), nil
}

func (cs *cloudStorageClient) NewReader(ctx context.Context, objectName string) (io.ReadCloser, error) {
	rc, err := cs.client.Bucket(cs.config.BucketName).Object(cs.objectPath(objectName)).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object in bucket: %v", err)
	}

	return rc, nil
}

func (cs *cloudStorageClient) GetSignedURL(objectName string, expireDuration time.Duration) (url string, err error) {
	url, err = cs.client.Bucket(cs.config.BucketName).SignedURL(cs.objectPath(objectName), &storage.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(expireDuration),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get signed url: %w", err)
	}

	return
}

func (cs *cloudStorageClient) IsObjectExist(ctx context.Context, objectName string) (isExist bool, url string) {
	path := cs.objectPath(objectName)
	_, err := cs.client.Bucket(cs.config.BucketName).Object(path).Attrs(ctx)
	if err == nil {
		isExist = true
		url = fmt.Sprintf("%s/%s/%s", cs.config.BaseURL, cs.config.BucketName, path)
	}

	return
}

func (cs *cloudStorageClient) Close() error {
	return cs.client.Close()
}

package client

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket string
	Region string

	// Optional function overrides for custom test behavior
	UploadFileFunc func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc func(ctx context.Context, key string) error

	Uploaded []string
	Deleted  []string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket: "test-bucket",
		Region: "ap-northeast-2",
	}
}

func (m *MockS3Client) GenerateFileKey(userID uuid.UUID, fileName string, now time.Time) string {
	return BuildPhotoKey(userID, fileName, now)
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	m.Uploaded = append(m.Uploaded, key)
	return m.GetFileURL(key), nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	m.Deleted = append(m.Deleted, key)
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	return PublicURL("", "", m.Bucket, m.Region, key)
}

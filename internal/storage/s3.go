package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

const MaxUploadSizeBytes = 5 * 1024 * 1024 // 5MB

var allowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// Uploader stores a binary blob under a generated key and returns a
// publicly resolvable URL. The blob contents are never inspected.
type Uploader interface {
	Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error)
}

// UploadError wraps any failure talking to the object store so handlers
// can map it to a gateway-class response.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("object storage upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

type S3Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

type s3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Uploader(cfg S3Config) Uploader {
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}

	return &s3Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}
}

func ValidMimeType(mimeType string) bool {
	for _, allowed := range allowedMimeTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

func AllowedMimeTypes() []string {
	return allowedMimeTypes
}

func objectKey(filename string) string {
	return fmt.Sprintf("events/%s%s", uuid.New().String(), filepath.Ext(filename))
}

func (u *s3Uploader) Upload(ctx context.Context, body io.Reader, filename, contentType string) (string, error) {
	key := objectKey(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", &UploadError{Err: err}
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

// Package storage persists outfit and clothing photos in an S3-compatible
// object store (AWS S3 or MinIO). Stored records keep only the object key;
// clients fetch images through short-lived presigned URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/pkg/config"
)

// PresignTTL is how long presigned photo URLs stay valid.
const PresignTTL = 1 * time.Hour

// PhotoStore uploads photos and issues presigned GET URLs.
type PhotoStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewPhotoStore builds an S3 client for the configured endpoint. A non-empty
// PhotoEndpoint switches to path-style addressing so MinIO works unchanged.
func NewPhotoStore(ctx context.Context, cfg *config.Config) (*PhotoStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.PhotoRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.PhotoAccessKey, cfg.PhotoSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PhotoEndpoint != "" {
			o.BaseEndpoint = aws.String("http://" + cfg.PhotoEndpoint)
			o.UsePathStyle = true
		}
	})

	return &PhotoStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  cfg.PhotoBucket,
	}, nil
}

// Upload stores the photo under a per-user key and returns the object key.
func (p *PhotoStore) Upload(ctx context.Context, userID uuid.UUID, body io.Reader, contentType string) (string, error) {
	objectKey := fmt.Sprintf("photos/%s/%s", userID, uuid.New())
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}
	return objectKey, nil
}

// PresignedURL returns a time-limited GET URL for the given object key.
func (p *PhotoStore) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	req, err := p.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(PresignTTL))
	if err != nil {
		return "", fmt.Errorf("presign photo: %w", err)
	}
	return req.URL, nil
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"watchlog/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ObjectStore is the slice of object storage the snapshot service needs.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath, contentType string, body []byte) error
	Download(ctx context.Context, objectPath string) ([]byte, error)
	PresignedGetURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
	PublicURL(objectPath string) string
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	logger    *logrus.Logger
}

var _ ObjectStore = (*MinIOService)(nil)

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

// ensureBucket creates the snapshot bucket. Snapshots hold personal data, so
// the bucket stays private and reads go through presigned URLs.
func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}
	return nil
}

func (s *MinIOService) Upload(ctx context.Context, objectPath, contentType string, body []byte) error {
	info, err := s.client.PutObject(ctx, s.bucket, objectPath, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to upload object")
		return fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"objectPath": objectPath,
		"size":       info.Size,
	}).Info("Object uploaded to MinIO")
	return nil
}

func (s *MinIOService) Download(ctx context.Context, objectPath string) ([]byte, error) {
	objectPath = s.normalizeObjectPath(objectPath)

	object, err := s.client.GetObject(ctx, s.bucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", objectPath, err)
	}
	defer object.Close()

	body, err := io.ReadAll(object)
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to download object")
		return nil, fmt.Errorf("failed to read object %s: %w", objectPath, err)
	}
	return body, nil
}

func (s *MinIOService) PresignedGetURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucket, objectPath, expiry, nil)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return presignedURL.String(), nil
}

// PublicURL builds the bucket URL of an object from AWS_URL, or returns an
// empty string when no public base is configured.
func (s *MinIOService) PublicURL(objectPath string) string {
	if s.publicURL == "" {
		return ""
	}

	publicBase := strings.TrimPrefix(s.publicURL, "https://")
	publicBase = strings.TrimPrefix(publicBase, "http://")

	if idx := strings.Index(publicBase, "/"); idx != -1 {
		publicBase = publicBase[:idx]
	}

	protocol := "http://"
	if strings.Contains(s.publicURL, "https://") {
		protocol = "https://"
	}

	return fmt.Sprintf("%s%s/%s/%s", protocol, publicBase, s.bucket, objectPath)
}

// normalizeObjectPath accepts a bare object path, a bucket-prefixed path or a
// full bucket URL.
func (s *MinIOService) normalizeObjectPath(objectPath string) string {
	if strings.Contains(objectPath, "://") {
		if idx := strings.Index(objectPath, "?"); idx != -1 {
			objectPath = objectPath[:idx]
		}
		if idx := strings.Index(objectPath, "/"+s.bucket+"/"); idx != -1 {
			objectPath = objectPath[idx+1:]
		}
	}
	return strings.TrimPrefix(objectPath, s.bucket+"/")
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"samadhan-setu/services/reel-api/internal/config"
	"samadhan-setu/services/reel-api/internal/infrastructure/metrics"
)

var errStorageDisabled = errors.New("reel storage backend is not configured; set REEL_S3_* to enable uploads")

// S3Storage handles uploads to S3-compatible storage and derives public
// URLs for stored objects.
type S3Storage struct {
	bucket     string
	publicBase string
	client     *s3.Client
	log        zerolog.Logger
	disabled   bool
}

func NewS3Storage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*S3Storage, error) {
	logger := log.With().Str("component", "s3-storage").Logger()
	storage := &S3Storage{
		bucket:     strings.TrimSpace(cfg.S3Bucket),
		publicBase: publicBase(cfg),
		log:        logger,
	}

	accessKey := strings.TrimSpace(cfg.S3AccessKeyID)
	secretKey := strings.TrimSpace(cfg.S3SecretKey)
	if storage.bucket == "" || accessKey == "" || secretKey == "" {
		logger.Warn().Msg("REEL_S3_BUCKET or credentials are not set; reel uploads will be disabled until configured")
		storage.disabled = true
		return storage, nil
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.S3Endpoint != "" {
			return aws.Endpoint{
				URL:           cfg.S3Endpoint,
				PartitionID:   "aws",
				SigningRegion: cfg.S3Region,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	storage.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
	})
	return storage, nil
}

func (s *S3Storage) ensureEnabled() error {
	if s.disabled {
		return errStorageDisabled
	}
	return nil
}

// Upload stores the object under key. PutObject replaces any existing
// object with the same key, so re-running an upload for the same record
// is safe.
func (s *S3Storage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}

	start := time.Now()
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	}
	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		metrics.RecordStorageOperation("put_object", "error", time.Since(start).Seconds())
		return err
	}
	metrics.RecordStorageOperation("put_object", "success", time.Since(start).Seconds())
	return nil
}

// PublicURL derives the stable public address of a stored object. It
// reports false when no addressable endpoint is configured.
func (s *S3Storage) PublicURL(key string) (string, bool) {
	if s.disabled || s.publicBase == "" || s.bucket == "" {
		return "", false
	}
	return fmt.Sprintf("%s/%s/%s", s.publicBase, s.bucket, key), true
}

// Health performs a HeadBucket request.
func (s *S3Storage) Health(ctx context.Context) error {
	if s.disabled {
		return nil
	}
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	return err
}

func publicBase(cfg *config.Config) string {
	base := strings.TrimSpace(cfg.S3PublicEndpoint)
	if base == "" {
		base = strings.TrimSpace(cfg.S3Endpoint)
	}
	return strings.TrimSuffix(base, "/")
}

package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appConfig "stratoview-taxonomy-api/internal/config"
	"stratoview-taxonomy-api/internal/metrics"
)

// Image kinds accepted by GenerateFileKey; they map to key prefixes and
// mirror the content extensions that carry images.
const (
	ImageKindScenario      = "scenarios"
	ImageKindTrendRadar    = "trend_radars"
	ImageKindParticipatory = "participatory_data"
)

// StorageClient is the file-storage collaborator. The service layer
// validates size and extension before calling it; the client only moves
// bytes and generates stable key references.
type StorageClient interface {
	GenerateFileKey(imageKind, contentID, fileExt string) (string, error)
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(key string) string
}

// S3Client wraps the AWS S3 client and implements StorageClient
type S3Client struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
	metrics  *metrics.Metrics
}

// NewS3Client creates a new S3 client. A non-empty endpoint switches to
// MinIO-compatible path-style addressing with static credentials.
func NewS3Client(cfg *appConfig.S3Config, m *metrics.Metrics) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for MinIO endpoint")
		}

		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
		)
	} else {
		// Default credential chain: IAM role on EC2, ~/.aws/credentials locally
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &S3Client{
		client:   s3Client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
		metrics:  m,
	}, nil
}

// GenerateFileKey generates a unique S3 key.
// Format: content/{imageKind}/{contentID}/{year}/{month}/{uuid}_{timestamp}.ext
func (c *S3Client) GenerateFileKey(imageKind, contentID, fileExt string) (string, error) {
	switch imageKind {
	case ImageKindScenario, ImageKindTrendRadar, ImageKindParticipatory:
	default:
		return "", fmt.Errorf("invalid image kind: %s", imageKind)
	}

	now := time.Now()
	key := fmt.Sprintf("content/%s/%s/%s/%s/%s_%d%s",
		imageKind, contentID, now.Format("2006"), now.Format("01"),
		uuid.New().String(), now.Unix(), fileExt)

	return key, nil
}

// UploadFile uploads a file to S3 and returns its URL
func (c *S3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	start := time.Now()
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if c.metrics != nil {
		c.metrics.RecordStorageRequest("upload", time.Since(start), err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return c.GetFileURL(key), nil
}

// DeleteFile deletes a file from S3
func (c *S3Client) DeleteFile(ctx context.Context, key string) error {
	start := time.Now()
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if c.metrics != nil {
		c.metrics.RecordStorageRequest("delete", time.Since(start), err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

// GetFileURL returns the public URL for a stored file
func (c *S3Client) GetFileURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

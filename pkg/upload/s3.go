package upload

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "portfolio-backend/config"
)

// S3Storage stores uploads in an S3-compatible bucket under a fixed prefix.
type S3Storage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	keyPrefix     string
}

// NewS3Storage builds the AWS client. A non-empty cfg.S3.Endpoint switches to
// path-style addressing for S3-compatible providers (Wasabi, MinIO).
func NewS3Storage(ctx context.Context, cfg *appconfig.Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.S3.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	base := cfg.S3.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3.Bucket, cfg.S3.Region)
	}

	return &S3Storage{
		client:        client,
		bucket:        cfg.S3.Bucket,
		publicBaseURL: base,
		keyPrefix:     "portfolio/",
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, filename string, content []byte) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := s.keyPrefix + uuid.NewString() + ext

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &UploadResult{
		URL: s.publicBaseURL + "/" + key,
		Key: key,
	}, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// KeyFromURL recovers the object key from a public URL previously returned by
// Upload. Unknown URLs fall back to the last two path segments so stale
// prefixes still resolve.
func (s *S3Storage) KeyFromURL(url string) string {
	if strings.HasPrefix(url, s.publicBaseURL+"/") {
		return strings.TrimPrefix(url, s.publicBaseURL+"/")
	}
	parts := strings.Split(url, "/")
	if len(parts) >= 2 {
		return parts[len(parts)-2] + "/" + parts[len(parts)-1]
	}
	return url
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "dealspace-backend/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config configures an S3 compatible bucket (AWS, MinIO)
type S3Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	URLExpiry    time.Duration
}

// S3Storage keeps objects in an S3 bucket
type S3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	urlExpiry     time.Duration
}

// NewS3Storage creates a client for the configured bucket
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, apperrors.ErrStorageNotConfigured
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			endpoint := cfg.Endpoint
			if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
				endpoint = "https://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	expiry := cfg.URLExpiry
	if expiry == 0 {
		expiry = 15 * time.Minute
	}

	return &S3Storage{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		urlExpiry:     expiry,
	}, nil
}

// Put uploads the object
func (s *S3Storage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	cleaned, err := cleanKey(key)
	if err != nil {
		return err
	}
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(cleaned),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Open downloads the object
func (s *S3Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(cleaned),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, apperrors.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	return out.Body, nil
}

// Delete removes the object. S3 does not report missing keys on delete.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	cleaned, err := cleanKey(key)
	if err != nil {
		return err
	}
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(cleaned),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// URL returns a presigned download link
func (s *S3Storage) URL(ctx context.Context, key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(cleaned),
	}, s3.WithPresignExpires(s.urlExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign object url: %w", err)
	}
	return req.URL, nil
}

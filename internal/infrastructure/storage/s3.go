package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds configuration for the audio clip bucket.
type S3Config struct {
	Bucket string
	// Region is the AWS region for the bucket.
	Region string
	// Endpoint is an optional custom endpoint (MinIO, hosted storage gateways).
	Endpoint string
	// UsePathStyle enables path-style addressing (required for MinIO).
	UsePathStyle bool
	// Expiry bounds how long a presigned URL stays valid.
	Expiry time.Duration
}

// ClipStore hands out short-lived download links for recorded alert clips.
type ClipStore struct {
	presigner *s3.PresignClient
	bucket    string
	expiry    time.Duration
}

func NewClipStore(ctx context.Context, cfg S3Config) (*ClipStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.UsePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return NewClipStoreWithClient(s3.NewFromConfig(awsCfg, s3Opts...), cfg), nil
}

func NewClipStoreWithClient(client *s3.Client, cfg S3Config) *ClipStore {
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &ClipStore{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		expiry:    expiry,
	}
}

// PresignGet returns a GET URL for key. Keys recorded by devices may carry
// the bucket name as their first segment; it is stripped.
func (s *ClipStore) PresignGet(ctx context.Context, key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimPrefix(key, "/"), s.bucket+"/")
	if key == "" {
		return "", fmt.Errorf("empty object key")
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Config configures the S3 backend.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string // Custom endpoint for S3-compatible services (MinIO, R2)
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	PublicURL       string // CDN or bucket origin used in returned references
}

type objectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3 stores files in an S3-compatible bucket.
type S3 struct {
	deleter   objectDeleter
	uploader  objectUploader
	bucket    string
	publicURL string
}

// NewS3 creates the S3 backend from static or ambient AWS credentials.
func NewS3(context context.Context, cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket name is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	// Static credentials when provided, otherwise the default chain (env, IAM role)
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage: load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &S3{
		deleter:   client,
		uploader:  manager.NewUploader(client),
		bucket:    cfg.Bucket,
		publicURL: publicBaseURL(cfg),
	}, nil
}

// Put uploads the object with the multipart-aware upload manager.
func (backend *S3) Put(context context.Context, object Object) (string, error) {
	key, err := cleanKey(object.Key)
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(backend.bucket),
		Key:    aws.String(key),
		Body:   object.Body,
	}
	if object.ContentType != "" {
		input.ContentType = aws.String(object.ContentType)
	}

	if _, err := backend.uploader.Upload(context, input); err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", key, err)
	}

	return backend.publicURL + "/" + key, nil
}

// Delete removes the object. NoSuchKey is treated as success.
func (backend *S3) Delete(context context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	_, err = backend.deleter.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(backend.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound") {
		return nil
	}
	return fmt.Errorf("storage: delete %s: %w", key, err)
}

// publicBaseURL resolves the origin under which objects are reachable.
func publicBaseURL(cfg S3Config) string {
	switch {
	case cfg.PublicURL != "":
		return strings.TrimRight(cfg.PublicURL, "/")
	case cfg.Endpoint != "" && cfg.UsePathStyle:
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	case cfg.Endpoint != "":
		scheme, host, found := strings.Cut(strings.TrimRight(cfg.Endpoint, "/"), "://")
		if !found {
			return "https://" + cfg.Bucket + "." + scheme
		}
		return scheme + "://" + cfg.Bucket + "." + host
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/cedarbrook-wellness/content-service/internal/config"
	"github.com/cedarbrook-wellness/content-service/internal/upload"
)

// ObjectStore persists assets in a MinIO bucket instead of the local
// filesystem. Category names become key prefixes, so public URLs keep
// the same shape as the disk layout.
type ObjectStore struct {
	client     *minio.Client
	bucketName string
	useSSL     bool
}

// NewObjectStore creates a MinIO-backed asset store
func NewObjectStore(cfg *config.Config) (*ObjectStore, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKeyID, cfg.MinIO.SecretAccessKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	s := &ObjectStore{
		client:     client,
		bucketName: cfg.MinIO.BucketName,
		useSSL:     cfg.MinIO.UseSSL,
	}

	if err := s.ensureBucket(); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return s, nil
}

// ensureBucket creates the bucket if it doesn't exist
func (s *ObjectStore) ensureBucket() error {
	ctx := context.Background()

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

func (s *ObjectStore) publicURL(objectKey string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}

	endpoint := strings.TrimPrefix(s.client.EndpointURL().String(), scheme+"://")
	return fmt.Sprintf("%s://%s/%s/%s", scheme, endpoint, s.bucketName, objectKey)
}

// Save streams the payload straight into the bucket under a freshly
// generated key.
func (s *ObjectStore) Save(ctx context.Context, category, originalFilename string, data io.Reader) (*Asset, error) {
	filename := GenerateFilename(originalFilename)
	objectKey := fmt.Sprintf("%s/%s", category, filename)

	info, err := s.client.PutObject(ctx, s.bucketName, objectKey, data, -1, minio.PutObjectOptions{})
	if err != nil {
		if ctx.Err() != nil {
			return nil, upload.WrapError(upload.CodeUploadTimeout, "upload aborted before completion", ctx.Err())
		}
		return nil, upload.WrapError(upload.CodeIOFailure, "failed to store object", err)
	}

	return &Asset{
		Filename:   filename,
		PublicPath: s.publicURL(objectKey),
		Size:       info.Size,
	}, nil
}

// List returns the assets stored under one category prefix.
func (s *ObjectStore) List(ctx context.Context, category string) ([]Asset, error) {
	prefix := category + "/"

	var assets []Asset
	objectsCh := s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectsCh {
		if object.Err != nil {
			return nil, upload.WrapError(upload.CodeIOFailure, "failed to list objects", object.Err)
		}
		assets = append(assets, Asset{
			Filename:   strings.TrimPrefix(object.Key, prefix),
			PublicPath: s.publicURL(object.Key),
			Size:       object.Size,
		})
	}

	return assets, nil
}

// Delete removes one asset from the bucket.
func (s *ObjectStore) Delete(ctx context.Context, category, filename string) error {
	objectKey := fmt.Sprintf("%s/%s", category, filename)
	err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return upload.WrapError(upload.CodeIOFailure, "failed to delete object", err)
	}
	return nil
}

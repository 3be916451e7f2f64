package storage

import (
	"context"
	"io"
	"log"
	"path"

	"github.com/google/uuid"
	"github.com/linweiyu/bugtrack-go/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore stores attachment bytes in a MinIO bucket. Object keys
// are uuid-prefixed so uploads with the same filename never collide.
type MinioStore struct {
	client *minioSDK.Client
	bucket string
}

func NewMinioStore() (*MinioStore, error) {
	client, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}

	return &MinioStore{client: client, bucket: config.MinioBucket}, nil
}

func (s *MinioStore) Put(ctx context.Context, r io.Reader, size int64, filename string) (string, error) {
	ref := path.Join("bug-attachments", uuid.NewString(), filename)
	_, err := s.client.PutObject(ctx, s.bucket, ref, r, size, minioSDK.PutObjectOptions{})
	if err != nil {
		return "", err
	}
	return ref, nil
}

func (s *MinioStore) Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, ref, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (s *MinioStore) Remove(ctx context.Context, ref string) error {
	return s.client.RemoveObject(ctx, s.bucket, ref, minioSDK.RemoveObjectOptions{})
}

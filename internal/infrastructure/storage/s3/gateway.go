// Package s3 implements the storage gateway against any S3-compatible
// object store.
package s3

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kirillkom/doc-catalog/internal/config"
)

type Gateway struct {
	api    *minio.Client
	bucket string
}

func New(cfg config.Config) (*Gateway, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &Gateway{api: client, bucket: cfg.S3Bucket}, nil
}

// Put uploads the local file under the given key. The call is synchronous
// and is not retried; the caller surfaces the raw error.
func (g *Gateway) Put(ctx context.Context, localPath, key string) error {
	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := g.api.FPutObject(ctx, g.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %s to bucket %s: %w", key, g.bucket, err)
	}
	return nil
}

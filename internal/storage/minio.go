package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"assinatura/internal/config"
)

// Client wraps a MinIO bucket as the remote asset host. Uploads return a
// stable public URL plus the object key, which doubles as the deletion
// handle stored alongside the record.
type Client struct {
	client     *minio.Client
	bucketName string
	publicBase string
}

// UploadResult carries the public URL and deletion handle of a stored asset.
type UploadResult struct {
	URL     string
	AssetID string
}

// NewClient initializes the MinIO client from configuration and ensures the
// target bucket exists.
func NewClient(cfg config.MinIOConfig) (*Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	parsedPublic, err := url.Parse(cfg.PublicEndpoint)
	if err != nil {
		return nil, fmt.Errorf("parse minio public endpoint: %w", err)
	}
	if parsedPublic.Host == "" {
		return nil, fmt.Errorf("invalid minio public endpoint, host missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if !cfg.AutoCreateBucket {
			return nil, fmt.Errorf("bucket %q does not exist (auto create disabled)", cfg.Bucket)
		}
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &Client{
		client:     client,
		bucketName: cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicEndpoint, "/"),
	}, nil
}

// Upload stores an asset under the given folder and returns its public URL
// together with the generated object key. The original filename only
// contributes its extension.
func (c *Client) Upload(ctx context.Context, folder, filename string, reader io.Reader, size int64, contentType string) (*UploadResult, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectKey := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(filename))
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := c.client.PutObject(ctx, c.bucketName, objectKey, reader, size, opts); err != nil {
		return nil, fmt.Errorf("put object %q: %w", objectKey, err)
	}

	return &UploadResult{
		URL:     fmt.Sprintf("%s/%s/%s", c.publicBase, c.bucketName, objectKey),
		AssetID: objectKey,
	}, nil
}

// Delete removes the asset behind the given handle.
// A missing object is treated as success (idempotent).
func (c *Client) Delete(ctx context.Context, assetID string) error {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return nil
	}
	if err := c.client.RemoveObject(ctx, c.bucketName, assetID, minio.RemoveObjectOptions{}); err != nil {
		if IsNoSuchKey(err) {
			return nil
		}
		return fmt.Errorf("remove object %q: %w", assetID, err)
	}
	return nil
}

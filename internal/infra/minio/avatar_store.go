package minio

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"brasileirao-go/internal/config"
	"brasileirao-go/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// AvatarStore 把 data URL 头像转存到对象存储
type AvatarStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewAvatarStore 初始化客户端，确保头像 Bucket 存在且公开可读
func NewAvatarStore(cfg *config.MinIOConfig) (*AvatarStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.AvatarBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.AvatarBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.AvatarBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.AvatarBucket, err)
		}
		logger.Info("MinIO bucket created", zap.String("bucket", cfg.AvatarBucket))
	}

	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, cfg.AvatarBucket)
	if err := client.SetBucketPolicy(ctx, cfg.AvatarBucket, policy); err != nil {
		return nil, fmt.Errorf("failed to set public policy for %s: %w", cfg.AvatarBucket, err)
	}

	base := strings.TrimRight(cfg.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	logger.Info("MinIO connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.AvatarBucket),
	)
	return &AvatarStore{client: client, bucket: cfg.AvatarBucket, publicURL: base}, nil
}

// PutAvatar 上传头像并返回公开地址。对象名带时间戳，更新头像不会命中旧缓存。
func (s *AvatarStore) PutAvatar(ctx context.Context, userID, contentType string, data []byte) (string, error) {
	objectName := fmt.Sprintf("%s/%d%s", userID, time.Now().UnixNano(), extensionFor(contentType))
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}

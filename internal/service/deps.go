package service

import (
	"context"

	infraKafka "brasileirao-go/internal/infra/kafka"
)

// 以下依赖均为可选，nil 表示对应基础设施未启用

// NewsEventPublisher 新闻事件发布（Kafka）
type NewsEventPublisher interface {
	PublishNewsEvent(ctx context.Context, event infraKafka.NewsEvent) error
}

// NewsSearcher 全文检索（Elasticsearch），返回按相关度排序的新闻 ID
type NewsSearcher interface {
	SearchNewsIDs(ctx context.Context, q, teamID string, limit, offset int) ([]string, error)
}

// Cache 只读数据缓存（Redis）
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Delete(ctx context.Context, keys ...string) error
}

// AvatarStore 头像对象存储（MinIO）
type AvatarStore interface {
	PutAvatar(ctx context.Context, userID, contentType string, data []byte) (string, error)
}

package elasticsearch

import (
	"context"
	"fmt"
	"strings"

	"brasileirao-go/pkg/logger"

	"go.uber.org/zap"
)

// newsIndexMapping 新闻索引 mapping，正文使用 ES 内置 brazilian 分析器
const newsIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0,
		"analysis": {
			"analyzer": {
				"pt_folded": {
					"type": "custom",
					"tokenizer": "standard",
					"filter": ["lowercase", "asciifolding"]
				}
			}
		}
	},
	"mappings": {
		"properties": {
			"id": {"type": "keyword"},
			"team_id": {"type": "keyword"},
			"category": {"type": "keyword"},
			"content_type": {"type": "keyword"},
			"author_name": {"type": "text", "analyzer": "pt_folded"},
			"title": {
				"type": "text",
				"analyzer": "brazilian",
				"fields": {
					"folded": {"type": "text", "analyzer": "pt_folded"},
					"keyword": {"type": "keyword", "ignore_above": 255}
				}
			},
			"content": {
				"type": "text",
				"analyzer": "brazilian",
				"fields": {"folded": {"type": "text", "analyzer": "pt_folded"}}
			},
			"likes_count": {"type": "long"},
			"dislikes_count": {"type": "long"},
			"is_published": {"type": "boolean"},
			"published_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
		}
	}
}`

// EnsureIndex 确保新闻索引存在，不存在则创建
func (n *NewsIndex) EnsureIndex(ctx context.Context) error {
	resp, err := n.es.Indices.Exists([]string{n.index}, n.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode == 200 {
		logger.Info("Elasticsearch news index already exists", zap.String("index", n.index))
		return nil
	}

	resp, err = n.es.Indices.Create(
		n.index,
		n.es.Indices.Create.WithContext(ctx),
		n.es.Indices.Create.WithBody(strings.NewReader(newsIndexMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch news index created", zap.String("index", n.index))
	return nil
}

package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"brasileirao-go/internal/model"
	"brasileirao-go/pkg/logger"

	"go.uber.org/zap"
)

// NewsDoc ES 新闻文档
type NewsDoc struct {
	ID            string `json:"id"`
	TeamID        string `json:"team_id"`
	Category      string `json:"category"`
	ContentType   string `json:"content_type"`
	AuthorName    string `json:"author_name"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	LikesCount    int64  `json:"likes_count"`
	DislikesCount int64  `json:"dislikes_count"`
	IsPublished   bool   `json:"is_published"`
	PublishedAt   string `json:"published_at"`
}

// ToDoc 模型转文档
func ToDoc(n *model.News, authorName string) *NewsDoc {
	return &NewsDoc{
		ID:            n.ID,
		TeamID:        n.TeamID,
		Category:      string(n.Category),
		ContentType:   string(n.ContentType),
		AuthorName:    authorName,
		Title:         n.Title,
		Content:       n.Content,
		LikesCount:    n.LikesCount,
		DislikesCount: n.DislikesCount,
		IsPublished:   n.IsPublished,
		PublishedAt:   n.PublishedAt.Format(time.RFC3339),
	}
}

// IndexNews 写入或覆盖单条新闻
func (n *NewsIndex) IndexNews(ctx context.Context, doc *NewsDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := n.es.Index(
		n.index,
		bytes.NewReader(body),
		n.es.Index.WithContext(ctx),
		n.es.Index.WithDocumentID(doc.ID),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("News synced to ES", zap.String("news_id", doc.ID))
	return nil
}

// DeleteNews 删除新闻文档，文档不存在视为成功
func (n *NewsIndex) DeleteNews(ctx context.Context, newsID string) error {
	resp, err := n.es.Delete(n.index, newsID, n.es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkIndex 批量写入，返回成功与失败条数
func (n *NewsIndex) BulkIndex(ctx context.Context, docs []*NewsDoc) (success, failed int, err error) {
	if len(docs) == 0 {
		return 0, 0, nil
	}

	var buf strings.Builder
	for _, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			return 0, len(docs), err
		}
		fmt.Fprintf(&buf, `{"index":{"_index":%q,"_id":%q}}`, n.index, doc.ID)
		buf.WriteString("\n")
		buf.Write(body)
		buf.WriteString("\n")
	}

	resp, err := n.es.Bulk(strings.NewReader(buf.String()), n.es.Bulk.WithContext(ctx))
	if err != nil {
		return 0, len(docs), err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return 0, len(docs), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Items []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return 0, len(docs), err
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}
	return success, failed, nil
}

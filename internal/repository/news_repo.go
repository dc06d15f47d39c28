package repository

import (
	"context"
	"strings"
	"sync/atomic"

	"brasileirao-go/internal/infra/database"
	"brasileirao-go/internal/model"
	"brasileirao-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// v1 结构下的列清单，媒体字段以常量补齐
const legacyNewsColumns = "id, journalist_id, user_id, team_id, title, content, image_url, " +
	"NULL AS video_url, 'TEXT' AS content_type, category, likes_count, dislikes_count, " +
	"is_published, published_at, created_at, updated_at"

var mediaColumns = []string{"video_url", "content_type"}

// NewsRepository 新闻仓储。按 schema_versions 记录的版本决定查询列，
// 若完整查询遇到 undefined_column 则降级到 v1 并重试。
type NewsRepository struct {
	db      *gorm.DB
	version atomic.Int32
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	r := &NewsRepository{db: db}
	r.version.Store(int32(database.LoadSchemaVersion(db)))
	return r
}

// SchemaVersion 当前使用的结构版本
func (r *NewsRepository) SchemaVersion() int {
	return int(r.version.Load())
}

func (r *NewsRepository) hasMedia() bool {
	return r.SchemaVersion() >= model.SchemaV2
}

// find 执行查询，在 v1 结构下选择降级列
func (r *NewsRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]model.News, error) {
	var list []model.News
	if r.hasMedia() {
		err := scope(r.db.WithContext(ctx).Model(&model.News{})).Find(&list).Error
		if err == nil {
			return list, nil
		}
		if !database.IsUndefinedColumn(err) {
			return nil, err
		}
		r.version.Store(model.SchemaV1)
		logger.Warn("news media columns missing, downgrading to legacy schema", zap.Error(err))
		list = nil
	}

	err := scope(r.db.WithContext(ctx).Model(&model.News{})).Select(legacyNewsColumns).Find(&list).Error
	return list, err
}

// ListPublished 已发布新闻分页，teamID 为空时不过滤
func (r *NewsRepository) ListPublished(ctx context.Context, teamID string, limit, offset int) ([]model.News, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_published = ?", true)
		if teamID != "" {
			q = q.Where("team_id = ?", teamID)
		}
		return q.Order("published_at DESC").Limit(limit).Offset(offset)
	})
}

// Search 标题或正文模糊匹配（Elasticsearch 不可用时的降级路径）
func (r *NewsRepository) Search(ctx context.Context, keyword, teamID string, limit, offset int) ([]model.News, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("is_published = ?", true).
			Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", pattern, pattern)
		if teamID != "" {
			q = q.Where("team_id = ?", teamID)
		}
		return q.Order("published_at DESC").Limit(limit).Offset(offset)
	})
}

// ListByAuthors 记者稿与达人稿合并查询，任一参数为空则忽略
func (r *NewsRepository) ListByAuthors(ctx context.Context, journalistID, userID string) ([]model.News, error) {
	if journalistID == "" && userID == "" {
		return nil, nil
	}
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		switch {
		case journalistID != "" && userID != "":
			q = q.Where("journalist_id = ? OR user_id = ?", journalistID, userID)
		case journalistID != "":
			q = q.Where("journalist_id = ?", journalistID)
		default:
			q = q.Where("user_id = ?", userID)
		}
		return q.Order("published_at DESC")
	})
}

// GetByIDs 批量查询新闻（搜索结果回表）
func (r *NewsRepository) GetByIDs(ctx context.Context, ids []string) ([]model.News, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("id IN ?", ids)
	})
}

// GetByID 查询单条新闻
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*model.News, error) {
	list, err := r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("id = ?", id).Limit(1)
	})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &list[0], nil
}

// ListAllPublished 全部已发布新闻（索引重建使用）
func (r *NewsRepository) ListAllPublished(ctx context.Context) ([]model.News, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("is_published = ?", true).Order("published_at DESC")
	})
}

// Create 创建新闻，v1 结构下不写媒体字段
func (r *NewsRepository) Create(ctx context.Context, n *model.News) error {
	if r.hasMedia() {
		err := r.db.WithContext(ctx).Create(n).Error
		if err == nil || !database.IsUndefinedColumn(err) {
			return err
		}
		r.version.Store(model.SchemaV1)
		logger.Warn("news media columns missing on insert, downgrading to legacy schema", zap.Error(err))
	}

	if err := r.db.WithContext(ctx).Omit(mediaColumns...).Create(n).Error; err != nil {
		return err
	}
	n.VideoURL = nil
	n.ContentType = model.ContentText
	return nil
}

// Delete 删除新闻及其互动记录
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", id).Delete(&model.NewsInteraction{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.News{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

package repository

import (
	"context"
	"errors"
	"time"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ToggleResult 一次互动切换后的结果。Removed 为 true 时 Interaction 为 nil。
type ToggleResult struct {
	Interaction   *model.NewsInteraction
	Removed       bool
	LikesCount    int64
	DislikesCount int64
}

type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Toggle 在一个事务内完成状态迁移与计数重算：
// 无记录则插入；同类型则删除；异类型则原地更新。
func (r *InteractionRepository) Toggle(ctx context.Context, userID, newsID string, t model.InteractionType) (*ToggleResult, error) {
	result := &ToggleResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.News{}).Where("id = ?", newsID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		var existing model.NewsInteraction
		err := tx.Where("user_id = ? AND news_id = ?", userID, newsID).Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := model.NewsInteraction{UserID: userID, NewsID: newsID, InteractionType: t}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "news_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"interaction_type"}),
			}).Create(&row).Error; err != nil {
				return err
			}
			var saved model.NewsInteraction
			if err := tx.Where("user_id = ? AND news_id = ?", userID, newsID).Take(&saved).Error; err != nil {
				return err
			}
			result.Interaction = &saved
		case err != nil:
			return err
		case existing.InteractionType == t:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result.Removed = true
		default:
			if err := tx.Model(&existing).Update("interaction_type", t).Error; err != nil {
				return err
			}
			existing.InteractionType = t
			result.Interaction = &existing
		}

		likes, dislikes, err := recount(tx, newsID)
		if err != nil {
			return err
		}
		result.LikesCount, result.DislikesCount = likes, dislikes
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// recount 按互动表重算并回写新闻计数
func recount(tx *gorm.DB, newsID string) (likes, dislikes int64, err error) {
	var rows []struct {
		InteractionType model.InteractionType
		Total           int64
	}
	err = tx.Model(&model.NewsInteraction{}).
		Select("interaction_type, COUNT(*) AS total").
		Where("news_id = ?", newsID).
		Group("interaction_type").
		Scan(&rows).Error
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		switch row.InteractionType {
		case model.InteractionLike:
			likes = row.Total
		case model.InteractionDislike:
			dislikes = row.Total
		}
	}

	err = tx.Model(&model.News{}).Where("id = ?", newsID).Updates(map[string]interface{}{
		"likes_count":    likes,
		"dislikes_count": dislikes,
		"updated_at":     time.Now(),
	}).Error
	return likes, dislikes, err
}

// Get 查询用户对某条新闻的互动
func (r *InteractionRepository) Get(ctx context.Context, userID, newsID string) (*model.NewsInteraction, error) {
	var i model.NewsInteraction
	if err := r.db.WithContext(ctx).Where("user_id = ? AND news_id = ?", userID, newsID).Take(&i).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

// MapByUser 一次查询取出用户在一页新闻上的互动
func (r *InteractionRepository) MapByUser(ctx context.Context, userID string, newsIDs []string) (map[string]model.InteractionType, error) {
	result := make(map[string]model.InteractionType, len(newsIDs))
	if len(newsIDs) == 0 {
		return result, nil
	}

	var rows []model.NewsInteraction
	err := r.db.WithContext(ctx).
		Select("news_id", "interaction_type").
		Where("user_id = ? AND news_id IN ?", userID, newsIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.NewsID] = row.InteractionType
	}
	return result, nil
}

// CountByUser 用户的互动总数
func (r *InteractionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.NewsInteraction{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert 按 (user_id, player_id, match_id) 写入评分，已存在则覆盖分数与评语
func (r *RatingRepository) Upsert(ctx context.Context, rating *model.PlayerRating) (*model.PlayerRating, error) {
	db := r.db.WithContext(ctx)
	rating.UpdatedAt = time.Now()
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "player_id"}, {Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(rating).Error
	if err != nil {
		return nil, err
	}

	var saved model.PlayerRating
	err = db.Where("user_id = ? AND player_id = ? AND match_id = ?", rating.UserID, rating.PlayerID, rating.MatchID).
		Take(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListByPlayer 球员收到的全部评分，最新在前
func (r *RatingRepository) ListByPlayer(ctx context.Context, playerID string) ([]model.PlayerRating, error) {
	var ratings []model.PlayerRating
	err := r.db.WithContext(ctx).Where("player_id = ?", playerID).Order("created_at DESC").Find(&ratings).Error
	return ratings, err
}

// AverageByPlayer 球员平均分，无评分时返回 nil
func (r *RatingRepository) AverageByPlayer(ctx context.Context, playerID string) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.WithContext(ctx).Model(&model.PlayerRating{}).
		Select("AVG(rating)").
		Where("player_id = ?", playerID).
		Row().Scan(&avg)
	if err != nil || !avg.Valid {
		return nil, err
	}
	return &avg.Float64, nil
}

// AveragesForMatch 一次 GROUP BY 取出整场比赛各球员平均分
func (r *RatingRepository) AveragesForMatch(ctx context.Context, matchID string) (map[string]float64, error) {
	var rows []struct {
		PlayerID string
		Average  float64
	}
	err := r.db.WithContext(ctx).Model(&model.PlayerRating{}).
		Select("player_id, AVG(rating) AS average").
		Where("match_id = ?", matchID).
		Group("player_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64, len(rows))
	for _, row := range rows {
		result[row.PlayerID] = row.Average
	}
	return result, nil
}

// UserRatingsForMatch 用户在某场比赛给出的全部评分
func (r *RatingRepository) UserRatingsForMatch(ctx context.Context, userID, matchID string) (map[string]int, error) {
	var rows []model.PlayerRating
	err := r.db.WithContext(ctx).
		Select("player_id", "rating").
		Where("user_id = ? AND match_id = ?", userID, matchID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int, len(rows))
	for _, row := range rows {
		result[row.PlayerID] = row.Rating
	}
	return result, nil
}

// CountByUser 用户评分总数
func (r *RatingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PlayerRating{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"time"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	db *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// List 全部徽章定义
func (r *BadgeRepository) List(ctx context.Context) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.db.WithContext(ctx).Order("threshold ASC").Order("id ASC").Find(&badges).Error
	return badges, err
}

// EarnedByUser 用户已获得的徽章
func (r *BadgeRepository) EarnedByUser(ctx context.Context, userID string) ([]model.UserBadge, error) {
	var earned []model.UserBadge
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&earned).Error
	return earned, err
}

// Award 授予徽章，重复授予不报错，返回是否新插入
func (r *BadgeRepository) Award(ctx context.Context, userID, badgeID string) (*model.UserBadge, bool, error) {
	ub := &model.UserBadge{UserID: userID, BadgeID: badgeID, EarnedAt: time.Now()}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
		DoNothing: true,
	}).Create(ub)
	if result.Error != nil {
		return nil, false, result.Error
	}
	return ub, result.RowsAffected > 0, nil
}

// Upsert 写入徽章定义
func (r *BadgeRepository) Upsert(ctx context.Context, badges []model.Badge) error {
	if len(badges) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "condition", "threshold"}),
	}).Create(&badges).Error
}

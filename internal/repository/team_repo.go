package repository

import (
	"context"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// List 全部球队，按名称排序
func (r *TeamRepository) List(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error
	return teams, err
}

// Standings 积分榜：积分、胜场倒序，名称正序
func (r *TeamRepository) Standings(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Order("points DESC").Order("wins DESC").Order("name ASC").Find(&teams).Error
	return teams, err
}

// GetByID 查询单个球队
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// Exists 球队是否存在
func (r *TeamRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Team{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetByIDs 批量查询球队
func (r *TeamRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Team, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var teams []model.Team
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&teams).Error
	return teams, err
}

// Upsert 按 ID 写入球队基础信息，积分数据保持不变
func (r *TeamRepository) Upsert(ctx context.Context, teams []model.Team) error {
	if len(teams) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "short_name", "logo_url", "primary_color", "secondary_color", "current_position",
		}),
	}).Create(&teams).Error
}

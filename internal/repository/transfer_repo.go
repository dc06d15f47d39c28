package repository

import (
	"context"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransferRepository struct {
	db *gorm.DB
}

func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

// ListByTeam 球队最近的转会，按日期倒序
func (r *TransferRepository) ListByTeam(ctx context.Context, teamID string, limit int) ([]model.Transfer, error) {
	var transfers []model.Transfer
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("transfer_date DESC").
		Limit(limit).
		Find(&transfers).Error
	return transfers, err
}

// Upsert 按 ID 写入转会记录（种子数据）
func (r *TransferRepository) Upsert(ctx context.Context, transfers []model.Transfer) error {
	if len(transfers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"team_id", "player_name", "from_team", "to_team", "transfer_type", "fee", "transfer_date",
		}),
	}).Create(&transfers).Error
}

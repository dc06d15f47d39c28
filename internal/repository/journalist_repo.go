package repository

import (
	"context"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
)

type JournalistRepository struct {
	db *gorm.DB
}

func NewJournalistRepository(db *gorm.DB) *JournalistRepository {
	return &JournalistRepository{db: db}
}

// GetByUserID 根据用户 ID 查询记者资料
func (r *JournalistRepository) GetByUserID(ctx context.Context, userID string) (*model.Journalist, error) {
	var j model.Journalist
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&j).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

// GetByIDs 批量查询记者
func (r *JournalistRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Journalist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []model.Journalist
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

// Promote 在同一事务中创建记者资料并把用户类型改为 JOURNALIST
func (r *JournalistRepository) Promote(ctx context.Context, userID, organization string) (*model.Journalist, error) {
	j := &model.Journalist{UserID: userID, Organization: organization}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(j).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", userID).
			Update("user_type", model.UserTypeJournalist).Error
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

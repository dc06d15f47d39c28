package repository

import (
	"context"
	"time"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create 保存会话
func (r *SessionRepository) Create(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetActive 查询未过期的会话
func (r *SessionRepository) GetActive(ctx context.Context, sid string, now time.Time) (*model.Session, error) {
	var s model.Session
	if err := r.db.WithContext(ctx).Where("sid = ? AND expire > ?", sid, now).Take(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete 删除会话（登出）
func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	return r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&model.Session{}).Error
}

// DeleteExpired 清理过期会话，返回清理条数
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expire <= ?", now).Delete(&model.Session{})
	return result.RowsAffected, result.Error
}

package repository

import (
	"context"
	"time"

	"brasileirao-go/internal/model"

	"gorm.io/gorm"
)

type InfluencerRepository struct {
	db *gorm.DB
}

func NewInfluencerRepository(db *gorm.DB) *InfluencerRepository {
	return &InfluencerRepository{db: db}
}

// Create 创建申请；唯一索引冲突由调用方按 gorm.ErrDuplicatedKey 处理
func (r *InfluencerRepository) Create(ctx context.Context, req *model.InfluencerRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// GetByID 查询申请
func (r *InfluencerRepository) GetByID(ctx context.Context, id string) (*model.InfluencerRequest, error) {
	var req model.InfluencerRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ActiveByUser 用户当前处于 PENDING 或 APPROVED 的申请
func (r *InfluencerRepository) ActiveByUser(ctx context.Context, userID string) (*model.InfluencerRequest, error) {
	var req model.InfluencerRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []model.RequestStatus{model.RequestPending, model.RequestApproved}).
		Take(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// LatestByUser 用户最近一次申请
func (r *InfluencerRepository) LatestByUser(ctx context.Context, userID string) (*model.InfluencerRequest, error) {
	var req model.InfluencerRequest
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Take(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List 按状态筛选申请，status 为空返回全部
func (r *InfluencerRepository) List(ctx context.Context, status model.RequestStatus) ([]model.InfluencerRequest, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var list []model.InfluencerRequest
	err := query.Find(&list).Error
	return list, err
}

// Review 审核申请。只有 PENDING 状态可被审核（条件更新保证原子性），
// 通过时在同一事务中打开申请人的达人标识。
// 返回 (nil, nil) 表示申请存在但已被处理过。
func (r *InfluencerRepository) Review(ctx context.Context, id string, status model.RequestStatus, reviewerID string) (*model.InfluencerRequest, error) {
	var reviewed *model.InfluencerRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&model.InfluencerRequest{}).
			Where("id = ? AND status = ?", id, model.RequestPending).
			Updates(map[string]interface{}{
				"status":      status,
				"reviewed_by": reviewerID,
				"reviewed_at": now,
			})
		if result.Error != nil {
			return result.Error
		}

		var req model.InfluencerRequest
		if err := tx.Where("id = ?", id).Take(&req).Error; err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if status == model.RequestApproved {
			if err := tx.Model(&model.User{}).Where("id = ?", req.UserID).
				Update("is_influencer", true).Error; err != nil {
				return err
			}
		}
		reviewed = &req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviewed, nil
}

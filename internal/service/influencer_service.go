package service

import (
	"context"
	"errors"
	"strings"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/pkg/logger"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrAlreadyInfluencer      = errors.New("Você já é um influencer")
	ErrRequestPending         = errors.New("Você já possui uma solicitação pendente")
	ErrRequestNotFound        = errors.New("Solicitação não encontrada")
	ErrRequestAlreadyReviewed = errors.New("Solicitação já foi analisada")
	ErrInvalidReviewStatus    = errors.New("Status inválido. Use APPROVED ou REJECTED")
)

// InfluencerService 达人申请与管理后台用户操作
type InfluencerService struct {
	requestRepo *repository.InfluencerRepository
	userRepo    *repository.UserRepository
}

func NewInfluencerService(requestRepo *repository.InfluencerRepository, userRepo *repository.UserRepository) *InfluencerService {
	return &InfluencerService{requestRepo: requestRepo, userRepo: userRepo}
}

// Apply 提交达人申请。已是达人或已有 PENDING/APPROVED 申请时拒绝，
// 并发提交由部分唯一索引拦截。
func (s *InfluencerService) Apply(ctx context.Context, userID string, req *dto.InfluencerApplyRequest) (*model.InfluencerRequest, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.IsInfluencer {
		return nil, ErrAlreadyInfluencer
	}

	active, err := s.requestRepo.ActiveByUser(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if active != nil {
		if active.Status == model.RequestApproved {
			return nil, ErrAlreadyInfluencer
		}
		return nil, ErrRequestPending
	}

	request := &model.InfluencerRequest{
		UserID: userID,
		Reason: strings.TrimSpace(req.Reason),
		Status: model.RequestPending,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRequestPending
		}
		return nil, err
	}

	logger.Info("influencer request created", zap.String("request_id", request.ID), zap.String("user_id", userID))
	return request, nil
}

// MyRequest 当前用户最近一条申请，没有时返回 nil
func (s *InfluencerService) MyRequest(ctx context.Context, userID string) (*model.InfluencerRequest, error) {
	req, err := s.requestRepo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return req, nil
}

// ListRequests 按状态列出申请并附上申请人
func (s *InfluencerService) ListRequests(ctx context.Context, status string) ([]dto.InfluencerRequestInfo, error) {
	list, err := s.requestRepo.List(ctx, model.RequestStatus(status))
	if err != nil {
		return nil, err
	}

	ids := newIDSet()
	for _, r := range list {
		ids.add(r.UserID)
	}
	users, err := s.userRepo.GetByIDs(ctx, ids.list())
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*dto.AdminUserInfo, len(users))
	for i := range users {
		info, err := toAdminUserInfo(&users[i])
		if err != nil {
			return nil, err
		}
		byID[users[i].ID] = info
	}

	result := make([]dto.InfluencerRequestInfo, 0, len(list))
	for _, r := range list {
		result = append(result, dto.InfluencerRequestInfo{InfluencerRequest: r, User: byID[r.UserID]})
	}
	return result, nil
}

// Review 审核申请，只处理 PENDING 状态；通过时同一事务内打开申请人的达人标识
func (s *InfluencerService) Review(ctx context.Context, requestID, reviewerID string, req *dto.ReviewRequest) (*model.InfluencerRequest, error) {
	status := model.RequestStatus(req.Status)
	if status != model.RequestApproved && status != model.RequestRejected {
		return nil, ErrInvalidReviewStatus
	}

	reviewed, err := s.requestRepo.Review(ctx, requestID, status, reviewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if reviewed == nil {
		return nil, ErrRequestAlreadyReviewed
	}

	logger.Info("influencer request reviewed",
		zap.String("request_id", requestID),
		zap.String("status", string(status)),
		zap.String("reviewer_id", reviewerID),
	)
	return reviewed, nil
}

// ListUsers 管理后台用户列表（不含密码）
func (s *InfluencerService) ListUsers(ctx context.Context) ([]dto.AdminUserInfo, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AdminUserInfo, 0, len(users))
	if err := copier.Copy(&result, &users); err != nil {
		return nil, err
	}
	return result, nil
}

// SetInfluencer 管理员直接设置达人标识
func (s *InfluencerService) SetInfluencer(ctx context.Context, userID string, isInfluencer bool) (*dto.AdminUserInfo, error) {
	user, err := s.userRepo.SetInfluencer(ctx, userID, isInfluencer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toAdminUserInfo(user)
}

func toAdminUserInfo(user *model.User) (*dto.AdminUserInfo, error) {
	var info dto.AdminUserInfo
	if err := copier.Copy(&info, user); err != nil {
		return nil, err
	}
	return &info, nil
}

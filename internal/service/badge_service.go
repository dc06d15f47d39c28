package service

import (
	"context"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/pkg/logger"

	"go.uber.org/zap"
)

// BadgeEvaluator 徽章评估，注册、评分、互动之后调用
type BadgeEvaluator interface {
	Evaluate(ctx context.Context, userID string) ([]model.UserBadge, error)
}

type BadgeService struct {
	badgeRepo       *repository.BadgeRepository
	ratingRepo      *repository.RatingRepository
	interactionRepo *repository.InteractionRepository
}

func NewBadgeService(
	badgeRepo *repository.BadgeRepository,
	ratingRepo *repository.RatingRepository,
	interactionRepo *repository.InteractionRepository,
) *BadgeService {
	return &BadgeService{badgeRepo: badgeRepo, ratingRepo: ratingRepo, interactionRepo: interactionRepo}
}

// Evaluate 按徽章定义逐条判断条件，授予尚未获得的徽章，返回本次新增的徽章。
// 插入使用 ON CONFLICT DO NOTHING，重复执行不会重复授予。
func (s *BadgeService) Evaluate(ctx context.Context, userID string) ([]model.UserBadge, error) {
	badges, err := s.badgeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.badgeRepo.EarnedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	earnedSet := make(map[string]struct{}, len(earned))
	for _, ub := range earned {
		earnedSet[ub.BadgeID] = struct{}{}
	}

	ratings, err := s.ratingRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	interactions, err := s.interactionRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	awarded := make([]model.UserBadge, 0)
	for _, b := range badges {
		if _, ok := earnedSet[b.ID]; ok {
			continue
		}
		if !conditionMet(b, ratings, interactions) {
			continue
		}
		ub, inserted, err := s.badgeRepo.Award(ctx, userID, b.ID)
		if err != nil {
			return awarded, err
		}
		if inserted {
			awarded = append(awarded, *ub)
		}
	}
	return awarded, nil
}

func conditionMet(b model.Badge, ratings, interactions int64) bool {
	switch b.Condition {
	case model.ConditionSignup:
		return true
	case model.ConditionPlayerRatings:
		return ratings >= b.Threshold
	case model.ConditionNewsInteractions:
		return interactions >= b.Threshold
	default:
		return false
	}
}

// ListForUser 全部徽章及解锁状态
func (s *BadgeService) ListForUser(ctx context.Context, userID string) ([]dto.BadgeStatus, error) {
	badges, err := s.badgeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.badgeRepo.EarnedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	earnedAt := make(map[string]model.UserBadge, len(earned))
	for _, ub := range earned {
		earnedAt[ub.BadgeID] = ub
	}

	result := make([]dto.BadgeStatus, 0, len(badges))
	for _, b := range badges {
		status := dto.BadgeStatus{Badge: b}
		if ub, ok := earnedAt[b.ID]; ok {
			at := ub.EarnedAt
			status.Unlocked = true
			status.EarnedAt = &at
		}
		result = append(result, status)
	}
	return result, nil
}

// awardQuietly 执行徽章评估，失败只记录日志，不影响主流程
func awardQuietly(ctx context.Context, evaluator BadgeEvaluator, userID string) {
	if evaluator == nil {
		return
	}
	awarded, err := evaluator.Evaluate(ctx, userID)
	if err != nil {
		logger.Warn("badge evaluation failed", zap.String("user_id", userID), zap.Error(err))
		return
	}
	for _, ub := range awarded {
		logger.Info("badge awarded", zap.String("user_id", userID), zap.String("badge_id", ub.BadgeID))
	}
}

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/repository"
	"brasileirao-go/pkg/logger"
	"brasileirao-go/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaxAvatarBytes data URL 头像解码后的大小上限
const MaxAvatarBytes = 2 * 1024 * 1024

var (
	ErrWrongPassword   = errors.New("Senha atual incorreta")
	ErrInvalidAvatar   = errors.New("Avatar deve ser uma URL http(s) ou data:image/* em base64")
	ErrAvatarTooLarge  = errors.New("Imagem muito grande. Máximo 2MB")
	ErrNothingToUpdate = errors.New("Nenhum campo para atualizar")
)

type ProfileService struct {
	userRepo *repository.UserRepository
	avatars  AvatarStore
}

func NewProfileService(userRepo *repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// WithAvatarStore 启用头像对象存储
func (s *ProfileService) WithAvatarStore(store AvatarStore) *ProfileService {
	s.avatars = store
	return s
}

// Update 修改昵称与邮箱，邮箱需在其他用户中唯一
func (s *ProfileService) Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserInfo, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNothingToUpdate
		}
		updates["name"] = name
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		exists, err := s.userRepo.ExistsByEmail(ctx, email, userID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
		updates["email"] = email
	}
	if len(updates) == 0 {
		return nil, ErrNothingToUpdate
	}

	user, err := s.userRepo.Update(ctx, userID, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// ChangePassword 校验当前密码后更新
func (s *ProfileService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !utils.VerifyPassword(req.CurrentPassword, user.Password) {
		return ErrWrongPassword
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	_, err = s.userRepo.Update(ctx, userID, map[string]interface{}{"password": hashed})
	return err
}

// UpdateAvatar 更新头像。data URL 在配置了对象存储时转存并替换为公开地址，
// 上传失败则按原样保存。
func (s *ProfileService) UpdateAvatar(ctx context.Context, userID string, req *dto.UpdateAvatarRequest) (*dto.UserInfo, error) {
	avatar := strings.TrimSpace(req.AvatarURL)

	switch {
	case strings.HasPrefix(avatar, "data:image/"):
		contentType, payload, err := parseImageDataURL(avatar)
		if err != nil {
			return nil, err
		}
		if s.avatars != nil {
			data, err := base64.StdEncoding.DecodeString(payload)
			if err != nil {
				return nil, ErrInvalidAvatar
			}
			url, err := s.avatars.PutAvatar(ctx, userID, contentType, data)
			if err != nil {
				logger.Warn("avatar upload failed, storing inline", zap.String("user_id", userID), zap.Error(err))
			} else {
				avatar = url
			}
		}
	case strings.HasPrefix(avatar, "http://"), strings.HasPrefix(avatar, "https://"):
	default:
		return nil, ErrInvalidAvatar
	}

	user, err := s.userRepo.Update(ctx, userID, map[string]interface{}{"avatar_url": avatar})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// parseImageDataURL 拆出 data:image/png;base64,xxx 的类型与负载，并按 base64 长度估算大小
func parseImageDataURL(dataURL string) (contentType, payload string, err error) {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return "", "", ErrInvalidAvatar
	}
	contentType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	if payload == "" {
		return "", "", ErrInvalidAvatar
	}
	if len(payload)*3/4 > MaxAvatarBytes {
		return "", "", ErrAvatarTooLarge
	}
	return contentType, payload, nil
}

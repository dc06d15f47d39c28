package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("Usuário não encontrado")
	ErrEmailExists       = errors.New("Email já cadastrado")
	ErrInvalidCredential = errors.New("Email ou senha incorretos")
	ErrSessionInvalid    = errors.New("Sessão inválida ou expirada")
	ErrTeamNotFound      = errors.New("Time não encontrado")
)

// SessionSettings 会话签发参数
type SessionSettings struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type AuthService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	teamRepo    *repository.TeamRepository
	badges      BadgeEvaluator
	settings    SessionSettings
}

func NewAuthService(
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	teamRepo *repository.TeamRepository,
	badges BadgeEvaluator,
	settings SessionSettings,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		teamRepo:    teamRepo,
		badges:      badges,
		settings:    settings,
	}
}

// Register 注册为 FAN 并直接建立会话，随后发放注册徽章
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, userAgent string) (*dto.SessionData, error) {
	email := normalizeEmail(req.Email)
	exists, err := s.userRepo.ExistsByEmail(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	var teamID *string
	if req.TeamID != nil && *req.TeamID != "" {
		ok, err := s.teamRepo.Exists(ctx, *req.TeamID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrTeamNotFound
		}
		teamID = req.TeamID
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hashed,
		UserType: model.UserTypeFan,
		TeamID:   teamID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	data, err := s.startSession(ctx, user, userAgent)
	if err != nil {
		return nil, err
	}

	awardQuietly(ctx, s.badges, user.ID)
	return data, nil
}

// Login 校验邮箱密码并建立会话
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, userAgent string) (*dto.SessionData, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	return s.startSession(ctx, user, userAgent)
}

// Logout 删除服务端会话，令牌随之失效
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sid, err := utils.ParseSessionToken(s.settings.Secret, token)
	if err != nil {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sid)
}

// Authenticate 校验令牌并返回会话中的用户 ID
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	sid, err := utils.ParseSessionToken(s.settings.Secret, token)
	if err != nil {
		return "", ErrSessionInvalid
	}

	sess, err := s.sessionRepo.GetActive(ctx, sid, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSessionInvalid
		}
		return "", err
	}

	var data model.SessionData
	if err := json.Unmarshal(sess.Sess, &data); err != nil || data.UserID == "" {
		return "", ErrSessionInvalid
	}
	return data.UserID, nil
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// SessionTTL 会话有效期，用于设置 Cookie
func (s *AuthService) SessionTTL() time.Duration {
	return s.settings.TTL
}

func (s *AuthService) startSession(ctx context.Context, user *model.User, userAgent string) (*dto.SessionData, error) {
	payload, err := json.Marshal(model.SessionData{UserID: user.ID, UserAgent: userAgent})
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		SID:    uuid.NewString(),
		Sess:   datatypes.JSON(payload),
		Expire: time.Now().Add(s.settings.TTL),
	}
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, err
	}

	token, err := utils.SignSessionToken(s.settings.Secret, s.settings.Issuer, sess.SID, s.settings.TTL)
	if err != nil {
		return nil, err
	}

	return &dto.SessionData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(s.settings.TTL.Seconds()),
		User:      *toUserInfo(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		TeamID:       user.TeamID,
		UserType:     string(user.UserType),
		IsInfluencer: user.IsInfluencer,
		AvatarURL:    user.AvatarURL,
	}
}

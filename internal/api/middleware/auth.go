package middleware

import (
	"context"
	"errors"
	"strings"

	"brasileirao-go/internal/api/response"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/service"
	"brasileirao-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextKeyUserID = "currentUserID"
	ContextKeyUser   = "currentUser"
)

// SessionAuthenticator 校验会话令牌并返回用户 ID
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// UserFetcher 读取用户记录，角色判断以数据库为准
type UserFetcher func(ctx context.Context, userID string) (*model.User, error)

// SessionAuth 解析 Cookie 或 Authorization 头中的会话令牌。
// 令牌缺失或会话无效时按匿名处理，是否必须登录由 AuthRequired 决定；
// 会话存储不可用时直接返回 500。
func SessionAuth(auth SessionAuthenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(ContextKeyUserID, userID)
		case errors.Is(err, service.ErrSessionInvalid):
		default:
			logger.Error("Session lookup failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
			response.ServerError(c, "Erro ao verificar sessão", err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthRequired 要求已登录（必须在 SessionAuth 之后使用）
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCurrentUserID(c); !ok {
			response.Unauthorized(c, "Não autenticado")
			c.Abort()
			return
		}
		c.Next()
	}
}

// PublisherRequired 记者或达人
func PublisherRequired(fetch UserFetcher) gin.HandlerFunc {
	return requireUser(fetch, func(u *model.User) bool { return u.CanPublish() },
		"Acesso negado. Apenas jornalistas ou influencers.")
}

// AdminRequired 管理员（达人不具备管理员权限）
func AdminRequired(fetch UserFetcher) gin.HandlerFunc {
	return requireUser(fetch, func(u *model.User) bool { return u.IsAdmin() },
		"Acesso negado. Apenas administradores.")
}

func requireUser(fetch UserFetcher, allowed func(*model.User) bool, denied string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetCurrentUserID(c)
		if !ok {
			response.Unauthorized(c, "Não autenticado")
			c.Abort()
			return
		}

		user, err := fetch(c.Request.Context(), userID)
		if err != nil || user == nil {
			response.Unauthorized(c, "Usuário não encontrado")
			c.Abort()
			return
		}

		if !allowed(user) {
			response.Forbidden(c, denied)
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}

// OptionalUserID 匿名访问时返回空串
func OptionalUserID(c *gin.Context) string {
	userID, _ := GetCurrentUserID(c)
	return userID
}

// extractToken 优先读取 Cookie，其次 Authorization: Bearer
func extractToken(c *gin.Context, cookieName string) string {
	if cookieName != "" {
		if v, err := c.Cookie(cookieName); err == nil && v != "" {
			return v
		}
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

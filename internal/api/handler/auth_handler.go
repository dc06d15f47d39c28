package handler

import (
	"errors"
	"net/http"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/api/middleware"
	"brasileirao-go/internal/api/response"
	"brasileirao-go/internal/service"
	"brasileirao-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookieSettings 会话 Cookie 参数
type CookieSettings struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authService *service.AuthService
	cookie      CookieSettings
}

func NewAuthHandler(authService *service.AuthService, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Register 用户注册
// @Summary 用户注册
// @Description 注册为球迷并直接登录，teamId 注册后不可修改
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} response.Response{data=dto.SessionData} "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效或邮箱已注册"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	data, err := h.authService.Register(c.Request.Context(), &req, c.Request.UserAgent())
	if err != nil {
		handleAuthError(c, err)
		return
	}

	h.setSessionCookie(c, data.Token)
	response.Created(c, "Conta criada com sucesso", data)
}

// Login 用户登录
// @Summary 用户登录
// @Description 邮箱密码登录，会话令牌同时写入 Cookie
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.SessionData} "登录成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "邮箱或密码错误"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	data, err := h.authService.Login(c.Request.Context(), &req, c.Request.UserAgent())
	if err != nil {
		handleAuthError(c, err)
		return
	}

	h.setSessionCookie(c, data.Token)
	response.OK(c, "Login realizado com sucesso", data)
}

// Logout 用户登出
// @Summary 用户登出
// @Description 删除服务端会话并清除 Cookie
// @Tags 认证
// @Produce json
// @Success 200 {object} response.Response "登出成功"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.sessionToken(c); token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			logger.Warn("Logout failed", zap.Error(err))
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.OK(c, "Logout realizado com sucesso", nil)
}

// Me 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 认证
// @Produce json
// @Security SessionCookie
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未登录"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	userInfo, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("Get current user failed", zap.Error(err), zap.String("user_id", userID))
		response.ServerError(c, "Erro ao buscar usuário", err)
		return
	}

	response.OK(c, "OK", userInfo)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.authService.SessionTTL().Seconds()), "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) sessionToken(c *gin.Context) string {
	if v, err := c.Cookie(h.cookie.Name); err == nil && v != "" {
		return v
	}
	const prefix = "Bearer "
	if auth := c.GetHeader("Authorization"); len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailExists), errors.Is(err, service.ErrTeamNotFound):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredential):
		response.Unauthorized(c, err.Error())
	default:
		logger.Error("Auth request failed", zap.Error(err))
		response.ServerError(c, "Erro ao processar autenticação", err)
	}
}

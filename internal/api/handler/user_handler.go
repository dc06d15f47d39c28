package handler

import (
	"errors"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/api/middleware"
	"brasileirao-go/internal/api/response"
	"brasileirao-go/internal/service"
	"brasileirao-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler 个人资料与徽章
type UserHandler struct {
	profileService *service.ProfileService
	badgeService   *service.BadgeService
}

func NewUserHandler(profileService *service.ProfileService, badgeService *service.BadgeService) *UserHandler {
	return &UserHandler{profileService: profileService, badgeService: badgeService}
}

// UpdateProfile 修改个人资料
// @Summary 修改昵称或邮箱
// @Tags 个人资料
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.UpdateProfileRequest true "资料"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Failure 400 {object} response.ErrorResponse "邮箱已被使用"
// @Router /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)
	info, err := h.profileService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "Perfil atualizado", info)
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Tags 个人资料
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.ChangePasswordRequest true "当前密码与新密码"
// @Success 200 {object} response.Response "修改成功"
// @Failure 401 {object} response.ErrorResponse "当前密码错误"
// @Router /profile/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)
	if err := h.profileService.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "Senha alterada com sucesso", nil)
}

// UpdateAvatar PUT /api/profile/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var req dto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)
	info, err := h.profileService.UpdateAvatar(c.Request.Context(), userID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "Avatar atualizado", info)
}

// Badges 全部徽章及解锁状态
// @Summary 徽章列表
// @Tags 徽章
// @Produce json
// @Security SessionCookie
// @Success 200 {object} response.Response{data=[]dto.BadgeStatus} "获取成功"
// @Router /badges [get]
func (h *UserHandler) Badges(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	list, err := h.badgeService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "OK", list)
}

// CheckBadges POST /api/badges/check
func (h *UserHandler) CheckBadges(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	awarded, err := h.badgeService.Evaluate(c.Request.Context(), userID)
	if err != nil {
		handleUserError(c, err)
		return
	}
	response.OK(c, "Conquistas verificadas", gin.H{"newBadges": awarded})
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrWrongPassword):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrNothingToUpdate),
		errors.Is(err, service.ErrInvalidAvatar),
		errors.Is(err, service.ErrAvatarTooLarge):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("User request failed", zap.Error(err))
		response.ServerError(c, "Erro ao processar solicitação", err)
	}
}

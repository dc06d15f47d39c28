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

// InfluencerHandler 达人申请及管理后台
type InfluencerHandler struct {
	influencerService *service.InfluencerService
}

func NewInfluencerHandler(influencerService *service.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{influencerService: influencerService}
}

// Apply 提交达人申请
// @Summary 申请成为达人
// @Tags 达人
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.InfluencerApplyRequest true "申请理由"
// @Success 201 {object} response.Response{data=model.InfluencerRequest} "提交成功"
// @Failure 400 {object} response.ErrorResponse "已有待审核申请或已是达人"
// @Router /influencer/request [post]
func (h *InfluencerHandler) Apply(c *gin.Context) {
	var req dto.InfluencerApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)
	created, err := h.influencerService.Apply(c.Request.Context(), userID, &req)
	if err != nil {
		handleInfluencerError(c, err)
		return
	}
	response.Created(c, "Solicitação enviada", created)
}

// MyRequest GET /api/influencer/request/my
func (h *InfluencerHandler) MyRequest(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)
	req, err := h.influencerService.MyRequest(c.Request.Context(), userID)
	if err != nil {
		handleInfluencerError(c, err)
		return
	}
	response.OK(c, "OK", req)
}

// ListUsers 用户列表
// @Summary 管理后台用户列表
// @Tags 管理
// @Produce json
// @Security SessionCookie
// @Success 200 {object} response.Response{data=[]dto.AdminUserInfo} "获取成功"
// @Failure 403 {object} response.ErrorResponse "需要管理员权限"
// @Router /admin/users [get]
func (h *InfluencerHandler) ListUsers(c *gin.Context) {
	users, err := h.influencerService.ListUsers(c.Request.Context())
	if err != nil {
		handleInfluencerError(c, err)
		return
	}
	response.OK(c, "OK", users)
}

// SetInfluencer PUT /api/admin/users/:id/influencer
func (h *InfluencerHandler) SetInfluencer(c *gin.Context) {
	var req dto.SetInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	info, err := h.influencerService.SetInfluencer(c.Request.Context(), c.Param("id"), *req.IsInfluencer)
	if err != nil {
		handleInfluencerError(c, err)
		return
	}
	response.OK(c, "Usuário atualizado", info)
}

// ListRequests GET /api/admin/influencer-requests
func (h *InfluencerHandler) ListRequests(c *gin.Context) {
	var q dto.RequestListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	list, err := h.influencerService.ListRequests(c.Request.Context(), q.Status)
	if err != nil {
		handleInfluencerError(c, err)
		return
	}
	response.OK(c, "OK", list)
}

// Review 审核达人申请
// @Summary 审核达人申请
// @Description 只能审核 PENDING 状态的申请；通过时申请人同时获得达人标识
// @Tags 管理
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "申请ID"
// @Param request body dto.ReviewRequest true "APPROVED 或 REJECTED"
// @Success 200 {object} response.Response{data=model.InfluencerRequest} "审核完成"
// @Failure 400 {object} response.ErrorResponse "申请已被处理"
// @Failure 404 {object} response.ErrorResponse "申请不存在"
// @Router /admin/influencer-requests/{id}/review [put]
func (h *InfluencerHandler) Review(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrInvalidReviewStatus.Error())
		return
	}

	adminID, _ := middleware.GetCurrentUserID(c)
	reviewed, err := h.influencerService.Review(c.Request.Context(), c.Param("id"), adminID, &req)
	if err != nil {
		handleInfluencerError(c, err)
		return
	}
	response.OK(c, "Solicitação analisada", reviewed)
}

func handleInfluencerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound), errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadyInfluencer),
		errors.Is(err, service.ErrRequestPending),
		errors.Is(err, service.ErrRequestAlreadyReviewed),
		errors.Is(err, service.ErrInvalidReviewStatus):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Influencer request failed", zap.Error(err))
		response.ServerError(c, "Erro ao processar solicitação", err)
	}
}

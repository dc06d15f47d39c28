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

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List 球队列表
// @Summary 球队列表
// @Tags 球队
// @Produce json
// @Success 200 {object} response.Response{data=[]model.Team} "获取成功"
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		handleTeamError(c, err)
		return
	}
	response.OK(c, "OK", teams)
}

// Standings 积分榜
// @Summary 积分榜
// @Tags 球队
// @Produce json
// @Success 200 {object} response.Response{data=[]model.Team} "获取成功"
// @Router /standings [get]
func (h *TeamHandler) Standings(c *gin.Context) {
	teams, err := h.teamService.Standings(c.Request.Context())
	if err != nil {
		handleTeamError(c, err)
		return
	}
	response.OK(c, "OK", teams)
}

// Get 球队详情
// @Summary 球队详情（含阵容）
// @Tags 球队
// @Produce json
// @Param id path string true "球队ID"
// @Success 200 {object} response.Response{data=dto.TeamDetail} "获取成功"
// @Failure 404 {object} response.ErrorResponse "球队不存在"
// @Router /teams/{id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	detail, err := h.teamService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleTeamError(c, err)
		return
	}
	response.OK(c, "OK", detail)
}

// RecentMatches GET /api/matches/:teamId/recent
func (h *TeamHandler) RecentMatches(c *gin.Context) {
	var q dto.MatchListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	matches, err := h.teamService.RecentMatches(c.Request.Context(), c.Param("teamId"), q.Limit)
	if err != nil {
		handleTeamError(c, err)
		return
	}
	response.OK(c, "OK", matches)
}

// Upcoming GET /api/teams/:id/upcoming
func (h *TeamHandler) Upcoming(c *gin.Context) {
	var q dto.MatchListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	matches, err := h.teamService.Upcoming(c.Request.Context(), c.Param("id"), q.Limit)
	if err != nil {
		handleTeamError(c, err)
		return
	}
	response.OK(c, "OK", matches)
}

// Transfers 球队转会
// @Summary 球队最近转会
// @Description 按转会日期倒序，默认 10 条
// @Tags 球队
// @Produce json
// @Param id path string true "球队ID"
// @Param limit query int false "数量上限（最大 50）"
// @Success 200 {object} response.Response{data=[]model.Transfer} "获取成功"
// @Router /teams/{id}/transfers [get]
func (h *TeamHandler) Transfers(c *gin.Context) {
	var q dto.MatchListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	transfers, err := h.teamService.Transfers(c.Request.Context(), c.Param("id"), q.Limit)
	if err != nil {
		handleTeamError(c, err)
		return
	}
	response.OK(c, "OK", transfers)
}

// LastMatch 最近一场比赛
// @Summary 最近一场已结束比赛
// @Description 出场球员附平均评分，登录时附当前用户的评分；没有比赛时不返回 data
// @Tags 球队
// @Produce json
// @Param id path string true "球队ID"
// @Success 200 {object} response.Response{data=dto.LastMatch} "获取成功"
// @Router /teams/{id}/last-match [get]
func (h *TeamHandler) LastMatch(c *gin.Context) {
	match, err := h.teamService.LastMatch(c.Request.Context(), c.Param("id"), middleware.OptionalUserID(c))
	if err != nil {
		handleTeamError(c, err)
		return
	}
	response.OK(c, "OK", match)
}

func handleTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Team request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		response.ServerError(c, "Erro ao buscar dados do time", err)
	}
}

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

type RatingHandler struct {
	ratingService *service.RatingService
}

func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// Rate 球员评分
// @Summary 为球员评分
// @Description 同一用户对同一场比赛的同一球员重复评分会覆盖旧值
// @Tags 评分
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "球员ID"
// @Param request body dto.CreateRatingRequest true "评分"
// @Success 201 {object} response.Response{data=model.PlayerRating} "评分成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 404 {object} response.ErrorResponse "球员或比赛不存在"
// @Router /players/{id}/ratings [post]
func (h *RatingHandler) Rate(c *gin.Context) {
	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)
	rating, err := h.ratingService.Rate(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		handleRatingError(c, err)
		return
	}

	response.Created(c, "Avaliação registrada", rating)
}

// List GET /api/players/:id/ratings
func (h *RatingHandler) List(c *gin.Context) {
	data, err := h.ratingService.ListForPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleRatingError(c, err)
		return
	}
	response.OK(c, "OK", data)
}

func handleRatingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlayerNotFound), errors.Is(err, service.ErrMatchNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrRatingOutOfRange), errors.Is(err, service.ErrPlayerNotInMatch):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("Rating request failed", zap.Error(err))
		response.ServerError(c, "Erro ao processar avaliação", err)
	}
}

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

type NewsHandler struct {
	newsService *service.NewsService
}

func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// List 新闻流
// @Summary 新闻列表
// @Description filter=my-team 按当前用户的球队过滤（需要登录），否则可按 teamId 过滤
// @Tags 新闻
// @Produce json
// @Param filter query string false "my-team 或 all"
// @Param teamId query string false "球队ID"
// @Param limit query int false "每页数量，默认 50，最大 100"
// @Param offset query int false "偏移量"
// @Success 200 {object} response.Response{data=[]dto.NewsItem} "获取成功"
// @Failure 401 {object} response.ErrorResponse "my-team 需要登录"
// @Router /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	var q dto.NewsListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	items, err := h.newsService.Feed(c.Request.Context(), service.FeedQuery{
		Filter:   q.Filter,
		TeamID:   q.TeamID,
		Limit:    q.Limit,
		Offset:   q.Offset,
		ViewerID: middleware.OptionalUserID(c),
	})
	if err != nil {
		handleNewsError(c, err)
		return
	}

	response.OK(c, "OK", items)
}

// Search 新闻搜索
// @Summary 新闻搜索
// @Tags 新闻
// @Produce json
// @Param q query string true "关键词"
// @Param teamId query string false "球队ID"
// @Param limit query int false "每页数量"
// @Param offset query int false "偏移量"
// @Success 200 {object} response.Response{data=[]dto.NewsItem} "搜索成功"
// @Router /news/search [get]
func (h *NewsHandler) Search(c *gin.Context) {
	var q dto.NewsSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Parâmetros inválidos: "+err.Error())
		return
	}

	items, err := h.newsService.Search(c.Request.Context(), &q, middleware.OptionalUserID(c))
	if err != nil {
		handleNewsError(c, err)
		return
	}

	response.OK(c, "OK", items)
}

// MyNews GET /api/news/my-news
func (h *NewsHandler) MyNews(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	items, err := h.newsService.MyNews(c.Request.Context(), userID)
	if err != nil {
		handleNewsError(c, err)
		return
	}

	response.OK(c, "OK", items)
}

// Create 发布新闻
// @Summary 发布新闻
// @Description 记者或达人发布；非记者的达人只能发布本队新闻
// @Tags 新闻
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateNewsRequest true "新闻内容"
// @Success 201 {object} response.Response{data=dto.NewsItem} "发布成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未登录"
// @Failure 403 {object} response.ErrorResponse "无发布权限"
// @Router /news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	var req dto.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dados inválidos: "+err.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)
	item, err := h.newsService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleNewsError(c, err)
		return
	}

	response.Created(c, "Notícia publicada com sucesso", item)
}

// Delete DELETE /api/news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(c)

	if err := h.newsService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleNewsError(c, err)
		return
	}

	response.OK(c, "Notícia excluída com sucesso", nil)
}

// Interact 点赞/点踩
// @Summary 点赞或点踩
// @Description 再次提交相同类型取消，提交另一类型切换
// @Tags 新闻
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "新闻ID"
// @Param request body dto.InteractionRequest true "LIKE 或 DISLIKE"
// @Success 201 {object} response.Response{data=dto.InteractionResult} "已记录"
// @Success 200 {object} response.Response{data=dto.InteractionResult} "已取消"
// @Failure 400 {object} response.ErrorResponse "类型无效"
// @Failure 404 {object} response.ErrorResponse "新闻不存在"
// @Router /news/{id}/interaction [post]
func (h *NewsHandler) Interact(c *gin.Context) {
	var req dto.InteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, service.ErrInvalidInteraction.Error())
		return
	}

	userID, _ := middleware.GetCurrentUserID(c)
	result, err := h.newsService.Interact(c.Request.Context(), userID, c.Param("id"), req.Type)
	if err != nil {
		handleNewsError(c, err)
		return
	}

	if result.Removed {
		response.OK(c, "Interação removida", result)
		return
	}
	response.Created(c, "Interação registrada", result)
}

func handleNewsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNewsNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrLoginRequired):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrNotPublisher),
		errors.Is(err, service.ErrInfluencerTeamMismatch),
		errors.Is(err, service.ErrNotNewsAuthor),
		errors.Is(err, service.ErrJournalistNotFound):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrInvalidInteraction),
		errors.Is(err, service.ErrVideoURLRequired),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrTeamNotFound):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("News request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		response.ServerError(c, "Erro ao processar notícia", err)
	}
}

package router

import (
	"brasileirao-go/internal/api/handler"
	"brasileirao-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers 全部业务处理器
type Handlers struct {
	Auth       *handler.AuthHandler
	Team       *handler.TeamHandler
	News       *handler.NewsHandler
	Rating     *handler.RatingHandler
	User       *handler.UserHandler
	Influencer *handler.InfluencerHandler
}

// Setup 注册所有业务路由。sessionAuth 解析会话但不拦截匿名请求，
// publisher / admin 中间件每次从数据库读取角色。
func Setup(
	r *gin.Engine,
	h Handlers,
	sessionAuth gin.HandlerFunc,
	publisherMiddleware gin.HandlerFunc,
	adminMiddleware gin.HandlerFunc,
) {
	api := r.Group("/api", sessionAuth)
	authRequired := middleware.AuthRequired()

	// --- 认证模块 ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", authRequired, h.Auth.Me)
	}

	// --- 球队与比赛 ---
	teams := api.Group("/teams")
	{
		teams.GET("", h.Team.List)
		teams.GET("/:id", h.Team.Get)
		teams.GET("/:id/last-match", h.Team.LastMatch)
		teams.GET("/:id/upcoming", h.Team.Upcoming)
		teams.GET("/:id/transfers", h.Team.Transfers)
	}
	api.GET("/standings", h.Team.Standings)
	api.GET("/matches/:teamId/recent", h.Team.RecentMatches)

	// --- 新闻模块 ---
	news := api.Group("/news")
	{
		news.GET("", h.News.List)
		news.GET("/search", h.News.Search)
		news.GET("/my-news", authRequired, publisherMiddleware, h.News.MyNews)
		news.POST("", authRequired, publisherMiddleware, h.News.Create)
		news.DELETE("/:id", authRequired, h.News.Delete)
		news.POST("/:id/interaction", authRequired, h.News.Interact)
	}

	// --- 球员评分 ---
	players := api.Group("/players")
	{
		players.GET("/:id/ratings", h.Rating.List)
		players.POST("/:id/ratings", authRequired, h.Rating.Rate)
	}

	// --- 个人资料与徽章 ---
	profile := api.Group("/profile", authRequired)
	{
		profile.PUT("", h.User.UpdateProfile)
		profile.PUT("/password", h.User.ChangePassword)
		profile.PUT("/avatar", h.User.UpdateAvatar)
	}
	badges := api.Group("/badges", authRequired)
	{
		badges.GET("", h.User.Badges)
		badges.POST("/check", h.User.CheckBadges)
	}

	// --- 达人申请 ---
	influencer := api.Group("/influencer", authRequired)
	{
		influencer.POST("/request", h.Influencer.Apply)
		influencer.GET("/request/my", h.Influencer.MyRequest)
	}

	// --- 管理后台 ---
	admin := api.Group("/admin", authRequired, adminMiddleware)
	{
		admin.GET("/users", h.Influencer.ListUsers)
		admin.PUT("/users/:id/influencer", h.Influencer.SetInfluencer)
		admin.GET("/influencer-requests", h.Influencer.ListRequests)
		admin.PUT("/influencer-requests/:id/review", h.Influencer.Review)
	}
}

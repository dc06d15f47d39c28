package dto

import "brasileirao-go/internal/model"

// MatchListQuery 比赛列表参数
type MatchListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// TeamDetail 球队详情（含阵容）
type TeamDetail struct {
	model.Team
	Players []model.Player `json:"players"`
}

// LineupPlayer 最近一场比赛的出场球员
type LineupPlayer struct {
	model.Player
	WasStarter    bool     `json:"wasStarter"`
	AverageRating *float64 `json:"averageRating"`
	UserRating    *int     `json:"userRating"`
}

// LastMatch 最近一场已结束比赛及球员评分
type LastMatch struct {
	model.Match
	Players []LineupPlayer `json:"players"`
}

package testutil

import (
	"fmt"
	"testing"
	"time"

	"brasileirao-go/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Team 创建球队
func Team(t testing.TB, db *gorm.DB, id string) *model.Team {
	t.Helper()
	team := &model.Team{
		ID:             id,
		Name:           id,
		ShortName:      id,
		LogoURL:        "/assets/teams/" + id + ".png",
		PrimaryColor:   "#000000",
		SecondaryColor: "#FFFFFF",
	}
	require.NoError(t, db.Create(team).Error)
	return team
}

// User 创建普通球迷，可通过 opts 修改字段
func User(t testing.TB, db *gorm.DB, name string, opts ...func(*model.User)) *model.User {
	t.Helper()
	u := &model.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva",
		UserType: model.UserTypeFan,
	}
	for _, opt := range opts {
		opt(u)
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// WithTeam 设置球队
func WithTeam(teamID string) func(*model.User) {
	return func(u *model.User) { u.TeamID = &teamID }
}

// AsInfluencer 标记为达人
func AsInfluencer() func(*model.User) {
	return func(u *model.User) { u.IsInfluencer = true }
}

// AsType 设置用户类型
func AsType(userType model.UserType) func(*model.User) {
	return func(u *model.User) { u.UserType = userType }
}

// Journalist 创建记者用户及资料
func Journalist(t testing.TB, db *gorm.DB, name string) (*model.User, *model.Journalist) {
	t.Helper()
	u := User(t, db, name, AsType(model.UserTypeJournalist))
	j := &model.Journalist{UserID: u.ID, Organization: "Globo"}
	require.NoError(t, db.Create(j).Error)
	return u, j
}

// News 创建已发布新闻，publishedAt 用于控制排序
func News(t testing.TB, db *gorm.DB, teamID string, author model.Author, publishedAt time.Time) *model.News {
	t.Helper()
	n := &model.News{
		TeamID:      teamID,
		Title:       "Notícia " + publishedAt.Format(time.RFC3339Nano),
		Content:     "Conteúdo",
		Category:    model.CategoryNews,
		IsPublished: true,
		PublishedAt: publishedAt,
	}
	n.SetAuthor(author)
	require.NoError(t, db.Create(n).Error)
	return n
}

// Badges 写入默认徽章定义
func Badges(t testing.TB, db *gorm.DB) []model.Badge {
	t.Helper()
	badges := []model.Badge{
		{ID: "bem-vindo", Name: "Bem-vindo", Description: "Criou sua conta", Icon: "star", Condition: model.ConditionSignup},
		{ID: "primeira-avaliacao", Name: "Primeira Avaliação", Description: "Avaliou um jogador", Icon: "clipboard", Condition: model.ConditionPlayerRatings, Threshold: 1},
		{ID: "torcedor-engajado", Name: "Torcedor Engajado", Description: "Interagiu com 2 notícias", Icon: "heart", Condition: model.ConditionNewsInteractions, Threshold: 2},
	}
	require.NoError(t, db.Create(&badges).Error)
	return badges
}

// FinishedMatch 创建已结束的比赛并登记出场球员
func FinishedMatch(t testing.TB, db *gorm.DB, teamID string, date time.Time, players ...*model.Player) *model.Match {
	t.Helper()
	home, away := 2, 1
	m := &model.Match{
		TeamID:        teamID,
		Opponent:      "Adversário",
		IsHome:        true,
		TeamScore:     &home,
		OpponentScore: &away,
		MatchDate:     date,
		Status:        model.MatchFinished,
		Championship:  "Brasileirão",
	}
	require.NoError(t, db.Create(m).Error)
	for i, p := range players {
		require.NoError(t, db.Create(&model.MatchPlayer{MatchID: m.ID, PlayerID: p.ID, WasStarter: i == 0}).Error)
	}
	return m
}

// Player 创建球员
func Player(t testing.TB, db *gorm.DB, teamID, name string, number int) *model.Player {
	t.Helper()
	p := &model.Player{TeamID: teamID, Name: name, Position: "MEI", JerseyNumber: number}
	require.NoError(t, db.Create(p).Error)
	return p
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Team 球队，ID 为 slug（如 flamengo）
type Team struct {
	ID              string    `gorm:"primaryKey;size:64;comment:球队标识" json:"id" yaml:"id"`
	Name            string    `gorm:"size:255;not null;comment:名称" json:"name" yaml:"name"`
	ShortName       string    `gorm:"size:16;not null;comment:简称" json:"shortName" yaml:"short_name"`
	LogoURL         string    `gorm:"size:500;comment:队徽" json:"logoUrl" yaml:"logo_url"`
	PrimaryColor    string    `gorm:"size:16;comment:主色" json:"primaryColor" yaml:"primary_color"`
	SecondaryColor  string    `gorm:"size:16;comment:辅色" json:"secondaryColor" yaml:"secondary_color"`
	Points          int       `gorm:"not null;default:0" json:"points" yaml:"points"`
	Wins            int       `gorm:"not null;default:0" json:"wins" yaml:"wins"`
	Draws           int       `gorm:"not null;default:0" json:"draws" yaml:"draws"`
	Losses          int       `gorm:"not null;default:0" json:"losses" yaml:"losses"`
	GoalsFor        int       `gorm:"not null;default:0" json:"goalsFor" yaml:"goals_for"`
	GoalsAgainst    int       `gorm:"not null;default:0" json:"goalsAgainst" yaml:"goals_against"`
	CurrentPosition int       `gorm:"not null;default:0;comment:积分榜排名" json:"currentPosition" yaml:"current_position"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt" yaml:"-"`
}

func (Team) TableName() string {
	return "teams"
}

// Player 球员
type Player struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	TeamID       string    `gorm:"size:64;not null;index" json:"teamId"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Position     string    `gorm:"size:32;not null" json:"position"`
	JerseyNumber int       `gorm:"not null" json:"jerseyNumber"`
	PhotoURL     *string   `gorm:"size:500" json:"photoUrl"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Player) TableName() string {
	return "players"
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}

// MatchStatus 比赛状态
type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchLive      MatchStatus = "LIVE"
	MatchFinished  MatchStatus = "FINISHED"
)

// Match 比赛，从 TeamID 一方的视角记录
type Match struct {
	ID            string      `gorm:"primaryKey;size:36" json:"id"`
	TeamID        string      `gorm:"size:64;not null;index:idx_matches_team_date" json:"teamId"`
	Opponent      string      `gorm:"size:255;not null" json:"opponent"`
	OpponentLogo  *string     `gorm:"size:500" json:"opponentLogoUrl"`
	IsHome        bool        `gorm:"not null" json:"isHome"`
	TeamScore     *int        `json:"teamScore"`
	OpponentScore *int        `json:"opponentScore"`
	MatchDate     time.Time   `gorm:"not null;index:idx_matches_team_date" json:"matchDate"`
	Stadium       *string     `gorm:"size:255" json:"stadium"`
	Status        MatchStatus `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	Championship  string      `gorm:"size:128;not null;default:'Brasileirão'" json:"championship"`
}

func (Match) TableName() string {
	return "matches"
}

func (m *Match) BeforeCreate(tx *gorm.DB) error {
	newID(&m.ID)
	return nil
}

// MatchPlayer 比赛出场名单
type MatchPlayer struct {
	MatchID    string `gorm:"primaryKey;size:36" json:"matchId"`
	PlayerID   string `gorm:"primaryKey;size:36;index" json:"playerId"`
	WasStarter bool   `gorm:"not null;default:false" json:"wasStarter"`
}

func (MatchPlayer) TableName() string {
	return "match_players"
}

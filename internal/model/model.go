package model

import "github.com/google/uuid"

// newID 生成字符串主键
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// All 返回需要迁移的全部模型，按依赖顺序排列
func All() []interface{} {
	return []interface{}{
		&SchemaVersion{},
		&Team{},
		&User{},
		&Session{},
		&Journalist{},
		&Player{},
		&Match{},
		&MatchPlayer{},
		&Transfer{},
		&News{},
		&NewsInteraction{},
		&PlayerRating{},
		&Badge{},
		&UserBadge{},
		&InfluencerRequest{},
	}
}

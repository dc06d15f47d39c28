package service

import (
	"context"
	"testing"
	"time"

	"brasileirao-go/internal/model"
	"brasileirao-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeEvaluateIdempotent(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	testutil.Badges(t, env.db)
	fan := testutil.User(t, env.db, "fan")

	awarded, err := env.badges.Evaluate(ctx, fan.ID)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	assert.Equal(t, "bem-vindo", awarded[0].BadgeID)

	awarded, err = env.badges.Evaluate(ctx, fan.ID)
	require.NoError(t, err)
	assert.Empty(t, awarded)

	var count int64
	require.NoError(t, env.db.Model(&model.UserBadge{}).Where("user_id = ?", fan.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBadgeThresholds(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	testutil.Badges(t, env.db)
	testutil.Team(t, env.db, "flamengo")
	_, j := testutil.Journalist(t, env.db, "ana")
	fan := testutil.User(t, env.db, "fan")
	n1 := testutil.News(t, env.db, "flamengo", model.JournalistAuthor{JournalistID: j.ID}, time.Now())
	n2 := testutil.News(t, env.db, "flamengo", model.JournalistAuthor{JournalistID: j.ID}, time.Now())

	_, err := env.news.Interact(ctx, fan.ID, n1.ID, "LIKE")
	require.NoError(t, err)

	statuses, err := env.badges.ListForUser(ctx, fan.ID)
	require.NoError(t, err)
	unlocked := map[string]bool{}
	for _, s := range statuses {
		unlocked[s.ID] = s.Unlocked
		if s.Unlocked {
			assert.NotNil(t, s.EarnedAt)
		} else {
			assert.Nil(t, s.EarnedAt)
		}
	}
	assert.Equal(t, map[string]bool{
		"bem-vindo":          true,
		"primeira-avaliacao": false,
		"torcedor-engajado":  false,
	}, unlocked)

	_, err = env.news.Interact(ctx, fan.ID, n2.ID, "DISLIKE")
	require.NoError(t, err)

	statuses, err = env.badges.ListForUser(ctx, fan.ID)
	require.NoError(t, err)
	for _, s := range statuses {
		if s.ID == "torcedor-engajado" {
			assert.True(t, s.Unlocked)
		}
	}
}

func TestAwardQuietlyNilEvaluator(t *testing.T) {
	assert.NotPanics(t, func() {
		awardQuietly(context.Background(), nil, "user")
	})
}

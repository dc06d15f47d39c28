package service

import (
	"context"
	"testing"
	"time"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateUpsertsAndAverages(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	testutil.Badges(t, env.db)
	testutil.Team(t, env.db, "flamengo")
	p := testutil.Player(t, env.db, "flamengo", "Pedro", 9)
	m := testutil.FinishedMatch(t, env.db, "flamengo", time.Now(), p)
	fan := testutil.User(t, env.db, "fan")
	other := testutil.User(t, env.db, "other")

	_, err := env.ratings.Rate(ctx, fan.ID, p.ID, &dto.CreateRatingRequest{MatchID: m.ID, Rating: intPtr(5)})
	require.NoError(t, err)
	r, err := env.ratings.Rate(ctx, fan.ID, p.ID, &dto.CreateRatingRequest{MatchID: m.ID, Rating: intPtr(9), Comment: strPtr("Golaço")})
	require.NoError(t, err)
	assert.Equal(t, 9, r.Rating)
	_, err = env.ratings.Rate(ctx, other.ID, p.ID, &dto.CreateRatingRequest{MatchID: m.ID, Rating: intPtr(0)})
	require.NoError(t, err)

	list, err := env.ratings.ListForPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list.Ratings, 2)
	require.NotNil(t, list.Average)
	assert.InDelta(t, 4.5, *list.Average, 0.001)

	var earned int64
	require.NoError(t, env.db.Model(&model.UserBadge{}).
		Where("user_id = ? AND badge_id = ?", fan.ID, "primeira-avaliacao").Count(&earned).Error)
	assert.EqualValues(t, 1, earned)
}

func TestRateRejects(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	testutil.Team(t, env.db, "flamengo")
	p := testutil.Player(t, env.db, "flamengo", "Pedro", 9)
	outsider := testutil.Player(t, env.db, "flamengo", "Reserva", 30)
	m := testutil.FinishedMatch(t, env.db, "flamengo", time.Now(), p)
	fan := testutil.User(t, env.db, "fan")

	tests := []struct {
		name     string
		playerID string
		req      dto.CreateRatingRequest
		want     error
	}{
		{"out of range", p.ID, dto.CreateRatingRequest{MatchID: m.ID, Rating: intPtr(11)}, ErrRatingOutOfRange},
		{"negative", p.ID, dto.CreateRatingRequest{MatchID: m.ID, Rating: intPtr(-1)}, ErrRatingOutOfRange},
		{"missing rating", p.ID, dto.CreateRatingRequest{MatchID: m.ID}, ErrRatingOutOfRange},
		{"unknown player", "nope", dto.CreateRatingRequest{MatchID: m.ID, Rating: intPtr(5)}, ErrPlayerNotFound},
		{"unknown match", p.ID, dto.CreateRatingRequest{MatchID: "nope", Rating: intPtr(5)}, ErrMatchNotFound},
		{"not in lineup", outsider.ID, dto.CreateRatingRequest{MatchID: m.ID, Rating: intPtr(5)}, ErrPlayerNotInMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.ratings.Rate(ctx, fan.ID, tt.playerID, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestListForPlayerWithoutRatings(t *testing.T) {
	env := newEnv(t)
	testutil.Team(t, env.db, "flamengo")
	p := testutil.Player(t, env.db, "flamengo", "Pedro", 9)

	list, err := env.ratings.ListForPlayer(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, list.Ratings)
	assert.NotNil(t, list.Ratings)
	assert.Nil(t, list.Average)
}

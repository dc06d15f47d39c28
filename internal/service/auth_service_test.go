package service

import (
	"context"
	"testing"

	"brasileirao-go/internal/api/dto"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginLogout(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	testutil.Badges(t, env.db)
	testutil.Team(t, env.db, "flamengo")

	session, err := env.auth.Register(ctx, &dto.RegisterRequest{
		Name:     "Maria",
		Email:    " Maria@Example.com ",
		Password: "segredo123",
		TeamID:   strPtr("flamengo"),
	}, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", session.User.Email)
	assert.Equal(t, "FAN", session.User.UserType)
	require.NotNil(t, session.User.TeamID)
	assert.Equal(t, "flamengo", *session.User.TeamID)

	userID, err := env.auth.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)

	var earned int64
	require.NoError(t, env.db.Model(&model.UserBadge{}).Where("user_id = ? AND badge_id = ?", userID, "bem-vindo").Count(&earned).Error)
	assert.EqualValues(t, 1, earned)

	_, err = env.auth.Login(ctx, &dto.LoginRequest{Email: "maria@example.com", Password: "errada"}, "")
	assert.ErrorIs(t, err, ErrInvalidCredential)
	_, err = env.auth.Login(ctx, &dto.LoginRequest{Email: "ninguem@example.com", Password: "segredo123"}, "")
	assert.ErrorIs(t, err, ErrInvalidCredential)

	login, err := env.auth.Login(ctx, &dto.LoginRequest{Email: "MARIA@example.com", Password: "segredo123"}, "")
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, login.Token))
	_, err = env.auth.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, ErrSessionInvalid)

	// 其他会话不受影响
	_, err = env.auth.Authenticate(ctx, session.Token)
	require.NoError(t, err)
}

func TestRegisterRejects(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	testutil.User(t, env.db, "joao")

	_, err := env.auth.Register(ctx, &dto.RegisterRequest{Name: "João", Email: "joao@example.com", Password: "segredo123"}, "")
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = env.auth.Register(ctx, &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123", TeamID: strPtr("nenhum")}, "")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestRegisterSurvivesBadgeFailure(t *testing.T) {
	env := newEnv(t)
	failing := &failingEvaluator{}
	env.auth.badges = failing

	session, err := env.auth.Register(context.Background(), &dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "segredo123"}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, 1, failing.calls)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	env := newEnv(t)
	_, err := env.auth.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

package seed

import (
	"context"
	"testing"

	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRepositorySeedFile(t *testing.T) {
	data, err := Load("../../configs/seed.yaml")
	require.NoError(t, err)
	assert.Len(t, data.Teams, 20)
	assert.NotEmpty(t, data.Badges)
	assert.Equal(t, "FLA", data.Teams[0].ShortName)

	require.NotEmpty(t, data.Transfers)
	first := data.Transfers[0]
	assert.Equal(t, "flamengo", first.TeamID)
	assert.Equal(t, model.TransferIn, first.TransferType)
	assert.Equal(t, 2024, first.TransferDate.Year())
}

func TestParseRejects(t *testing.T) {
	_, err := Parse([]byte("teams:\n  - id: a\n    name: A\n  - id: a\n    name: B\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte("badges:\n  - id: x\n    condition: goals\n"))
	assert.ErrorContains(t, err, "unknown condition")

	_, err = Parse([]byte("transfers:\n  - id: t1\n    team_id: a\n    transfer_type: SWAP\n"))
	assert.ErrorContains(t, err, "unknown type")

	_, err = Parse([]byte("teams:\n  - id: a\n    name: A\ntransfers:\n  - id: t1\n    team_id: b\n    transfer_type: IN\n"))
	assert.ErrorContains(t, err, "unknown team")

	_, err = Parse([]byte("transfers:\n  - id: t1\n    transfer_type: IN\n  - id: t1\n    transfer_type: OUT\n"))
	assert.ErrorContains(t, err, "duplicate transfer")

	_, err = Parse([]byte("teams: ["))
	assert.Error(t, err)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	teams := repository.NewTeamRepository(db)
	badges := repository.NewBadgeRepository(db)
	transfers := repository.NewTransferRepository(db)

	data, err := Parse([]byte(`
teams:
  - id: flamengo
    name: Flamengo
    short_name: FLA
badges:
  - id: bem-vindo
    name: Bem-vindo
    description: Criou sua conta
    icon: star
    condition: signup
transfers:
  - id: tr-1
    team_id: flamengo
    player_name: Pedro
    from_team: Genoa
    to_team: Flamengo
    transfer_type: IN
    transfer_date: 2023-01-10
`))
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, data, teams, badges, transfers))

	require.NoError(t, db.Model(&model.Team{}).Where("id = ?", "flamengo").Update("points", 42).Error)

	data.Teams[0].Name = "Clube de Regatas do Flamengo"
	require.NoError(t, Apply(ctx, data, teams, badges, transfers))

	team, err := teams.GetByID(ctx, "flamengo")
	require.NoError(t, err)
	assert.Equal(t, "Clube de Regatas do Flamengo", team.Name)
	assert.Equal(t, 42, team.Points)

	list, err := badges.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	moves, err := transfers.ListByTeam(ctx, "flamengo", 10)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "Pedro", moves[0].PlayerName)
}

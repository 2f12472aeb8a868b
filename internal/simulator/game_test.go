package simulator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame() *Game {
	return NewGame(rand.New(rand.NewSource(42)), 1610612748, "MIA")
}

func TestGameStartsLive(t *testing.T) {
	g := newTestGame()

	board := g.Scoreboard()
	require.Len(t, board.Games, 1)

	sg := board.Games[0]
	assert.Equal(t, 2, sg.GameStatus)
	assert.Equal(t, 1, sg.Period)
	assert.Equal(t, "MIA", sg.HomeTeam.TeamTricode)
	assert.Zero(t, sg.HomeTeam.Score)
}

func TestAdvanceCountersNeverRegress(t *testing.T) {
	g := newTestGame()

	prev := g.BoxScore()
	for i := 0; i < 40; i++ {
		g.Advance()
		cur := g.BoxScore()

		require.GreaterOrEqual(t, cur.Game.HomeTeam.Score, prev.Game.HomeTeam.Score)
		require.GreaterOrEqual(t, cur.Game.AwayTeam.Score, prev.Game.AwayTeam.Score)
		require.GreaterOrEqual(t, cur.Game.Period, prev.Game.Period)
		for j, p := range cur.Game.HomeTeam.Players {
			pp := prev.Game.HomeTeam.Players[j]
			require.GreaterOrEqual(t, p.Statistics.Points, pp.Statistics.Points)
			require.GreaterOrEqual(t, p.Statistics.FieldGoalsAttempted, pp.Statistics.FieldGoalsAttempted)
			require.GreaterOrEqual(t, p.Statistics.FieldGoalsMade, pp.Statistics.FieldGoalsMade)
			require.LessOrEqual(t, p.Statistics.FieldGoalsMade, p.Statistics.FieldGoalsAttempted)
		}
		prev = cur
	}
}

func TestGameEndsAfterFourPeriods(t *testing.T) {
	g := newTestGame()

	for i := 0; i < 32; i++ {
		g.Advance()
	}

	board := g.Scoreboard()
	assert.Equal(t, 3, board.Games[0].GameStatus, "4 períodos x 8 fetches encerram o jogo")
	assert.Equal(t, 4, board.Games[0].Period)

	// jogo encerrado congela o placar
	frozen := board.Games[0].HomeTeam.Score
	g.Advance()
	assert.Equal(t, frozen, g.Scoreboard().Games[0].HomeTeam.Score)
}

func TestBoxScoreShape(t *testing.T) {
	g := newTestGame()
	g.Advance()

	box := g.BoxScore()
	assert.Equal(t, g.GameID(), box.Game.GameID)
	require.Len(t, box.Game.HomeTeam.Players, len(defaultRoster))
	for i, p := range box.Game.HomeTeam.Players {
		assert.Equal(t, defaultRoster[i], p.Name)
		assert.NotEmpty(t, p.Statistics.Minutes)
	}
}

func TestGameIsDeterministicGivenSeed(t *testing.T) {
	a := newTestGame()
	b := newTestGame()

	for i := 0; i < 10; i++ {
		a.Advance()
		b.Advance()
	}

	assert.Equal(t, a.BoxScore(), b.BoxScore())
}

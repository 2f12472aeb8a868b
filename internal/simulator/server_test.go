package simulator

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/provider/nba"
)

// sobe o simulador e o consome com o cliente real: garante que os dois
// lados falam o mesmo formato de payload
func TestServerFeedsRealProviderClient(t *testing.T) {
	game := NewGame(rand.New(rand.NewSource(7)), 1610612748, "MIA")
	s := &Server{Log: zap.NewNop(), Game: game}

	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	client := nba.New(srv.URL, 1610612748)
	ctx := context.Background()

	info, live, err := client.LiveGame(ctx)
	require.NoError(t, err)
	require.True(t, live)
	assert.Equal(t, game.GameID(), info.GameID)
	assert.True(t, info.Home)
	assert.Equal(t, "BOS", info.Opponent)

	now := time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC)
	snap, err := client.BoxScore(ctx, info.GameID, now)
	require.NoError(t, err)

	assert.Equal(t, game.GameID(), snap.GameID)
	assert.Len(t, snap.Players, len(defaultRoster))
	assert.Equal(t, now, snap.CapturedAt)

	// consultar o box score avança o jogo
	again, err := client.BoxScore(ctx, info.GameID, now.Add(time.Minute))
	require.NoError(t, err)

	var fgaBefore, fgaAfter int
	for i := range snap.Players {
		fgaBefore += snap.Players[i].FieldGoalsAttempted
		fgaAfter += again.Players[i].FieldGoalsAttempted
	}
	assert.Greater(t, fgaAfter, fgaBefore)
}

func TestServerUnknownGame(t *testing.T) {
	game := NewGame(rand.New(rand.NewSource(7)), 1610612748, "MIA")
	s := &Server{Log: zap.NewNop(), Game: game}

	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	res, err := http.Get(srv.URL + "/games/NOPE/boxscore")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAppendAndLatest(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	got, err := store.Latest(ctx, "G1")
	require.NoError(t, err)
	assert.Nil(t, got, "jogo nunca observado devolve nil sem erro")

	first := &Snapshot{
		GameID:     "G1",
		CapturedAt: time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC),
		TeamScore:  10,
		Players:    []PlayerStat{{PlayerName: "Bam Adebayo", Points: 4}},
	}
	id1, err := store.Append(ctx, first)
	require.NoError(t, err)
	assert.NotEmpty(t, id1)

	second := &Snapshot{
		GameID:     "G1",
		CapturedAt: first.CapturedAt.Add(time.Minute),
		TeamScore:  15,
		Players:    []PlayerStat{{PlayerName: "Bam Adebayo", Points: 9}},
	}
	id2, err := store.Append(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	got, err = store.Latest(ctx, "G1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 15, got.TeamScore)
	assert.Equal(t, 9, got.Players[0].Points)
}

func TestMemoryLatestIsPerGame(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Append(ctx, &Snapshot{GameID: "G1", TeamScore: 30})
	require.NoError(t, err)
	_, err = store.Append(ctx, &Snapshot{GameID: "G2", TeamScore: 44})
	require.NoError(t, err)

	got, err := store.Latest(ctx, "G1")
	require.NoError(t, err)
	assert.Equal(t, 30, got.TeamScore)
}

func TestMemoryLatestReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, err := store.Append(ctx, &Snapshot{
		GameID:  "G1",
		Players: []PlayerStat{{PlayerName: "Bam Adebayo", Points: 4}},
	})
	require.NoError(t, err)

	got, err := store.Latest(ctx, "G1")
	require.NoError(t, err)
	got.Players[0].Points = 99

	again, err := store.Latest(ctx, "G1")
	require.NoError(t, err)
	assert.Equal(t, 4, again.Players[0].Points, "mutação do chamador não vaza para o store")
}

func TestMemoryPostsSince(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	t0 := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"primeira", "segunda", "terceira"} {
		err := store.RecordPost(ctx, &PostRecord{
			GameID:   "G1",
			Text:     text,
			PostedAt: t0.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	got, err := store.PostsSince(ctx, t0.Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, got, 2, "corte é inclusivo")
	assert.Equal(t, "segunda", got[0].Text)
	assert.Equal(t, "terceira", got[1].Text)
}

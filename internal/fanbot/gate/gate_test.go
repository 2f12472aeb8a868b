package gate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/similarity"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/snapshot"
)

func testScorer() *similarity.Scorer {
	return similarity.NewScorer(similarity.Vocabulary{
		Keywords: []string{"brick", "fire", "cooking", "trash"},
		Entities: []string{"bam", "herro", "jimmy"},
	})
}

func recordPost(t *testing.T, store *snapshot.Memory, gameID, text string, at time.Time) {
	t.Helper()
	err := store.RecordPost(context.Background(), &snapshot.PostRecord{
		GameID:   gameID,
		Text:     text,
		PostedAt: at,
	})
	require.NoError(t, err)
}

func TestEvaluateApprovesOnEmptyHistory(t *testing.T) {
	g := New(snapshot.NewMemory(), testScorer(), 0, 0)

	now := time.Date(2026, 1, 10, 20, 30, 0, 0, time.UTC)
	dec, err := g.Evaluate(context.Background(), "BAM IS ON FIRE 🔥", "G1", now)
	require.NoError(t, err)

	assert.True(t, dec.Approved)
	assert.Equal(t, ReasonApproved, dec.Reason)
}

func TestEvaluateCooldown(t *testing.T) {
	store := snapshot.NewMemory()
	g := New(store, testScorer(), 5*time.Minute, 0.6)

	t0 := time.Date(2026, 1, 10, 20, 30, 0, 0, time.UTC)
	recordPost(t, store, "G1", "HERRO IS COOKING 🔥", t0)

	// um minuto depois, assunto completamente diferente: cooldown vence
	dec, err := g.Evaluate(context.Background(), "BAM JUST BRICKED 3 STRAIGHT 🤡", "G1", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, dec.Approved)
	assert.Equal(t, ReasonCooldown, dec.Reason)

	// janela expirada: passa
	dec, err = g.Evaluate(context.Background(), "BAM JUST BRICKED 3 STRAIGHT 🤡", "G1", t0.Add(6*time.Minute))
	require.NoError(t, err)
	assert.True(t, dec.Approved)
}

func TestEvaluateCooldownIsPerGame(t *testing.T) {
	store := snapshot.NewMemory()
	g := New(store, testScorer(), 5*time.Minute, 0.6)

	t0 := time.Date(2026, 1, 10, 20, 30, 0, 0, time.UTC)
	recordPost(t, store, "G1", "HERRO IS COOKING 🔥", t0)

	dec, err := g.Evaluate(context.Background(), "BAM JUST BRICKED 3 STRAIGHT 🤡", "G2", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, dec.Approved, "post recente em outro jogo não trava este")
}

func TestEvaluateDuplicate(t *testing.T) {
	store := snapshot.NewMemory()
	g := New(store, testScorer(), 5*time.Minute, 0.6)

	t0 := time.Date(2026, 1, 10, 20, 30, 0, 0, time.UTC)
	recordPost(t, store, "G1", "BAM JUST BRICKED 3 STRAIGHT 🤡", t0)

	dec, err := g.Evaluate(context.Background(), "BAM BRICKED 3 MORE 🤡", "G1", t0.Add(10*time.Minute))
	require.NoError(t, err)

	assert.False(t, dec.Approved)
	assert.Equal(t, ReasonDuplicate, dec.Reason)
	assert.Greater(t, dec.Similarity, 0.6)
	assert.Equal(t, "BAM JUST BRICKED 3 STRAIGHT 🤡", dec.SimilarTo)
}

func TestEvaluateDuplicateAcrossGames(t *testing.T) {
	store := snapshot.NewMemory()
	g := New(store, testScorer(), 5*time.Minute, 0.6)

	t0 := time.Date(2026, 1, 10, 20, 30, 0, 0, time.UTC)
	recordPost(t, store, "G1", "BAM JUST BRICKED 3 STRAIGHT 🤡", t0)

	// duplicidade compara contra tudo que saiu hoje, de qualquer jogo
	dec, err := g.Evaluate(context.Background(), "BAM BRICKED 3 MORE 🤡", "G2", t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, ReasonDuplicate, dec.Reason)
}

func TestEvaluateWindowResetsAtMidnight(t *testing.T) {
	store := snapshot.NewMemory()
	g := New(store, testScorer(), 5*time.Minute, 0.6)

	yesterday := time.Date(2026, 1, 9, 23, 50, 0, 0, time.UTC)
	recordPost(t, store, "G1", "BAM JUST BRICKED 3 STRAIGHT 🤡", yesterday)

	// 00:02 do dia seguinte: o post de ontem fica fora da janela
	now := time.Date(2026, 1, 10, 0, 2, 0, 0, time.UTC)
	dec, err := g.Evaluate(context.Background(), "BAM BRICKED 3 MORE 🤡", "G1", now)
	require.NoError(t, err)
	assert.True(t, dec.Approved)
}

type failingPosts struct{ err error }

func (f failingPosts) PostsSince(context.Context, time.Time) ([]snapshot.PostRecord, error) {
	return nil, f.err
}

func TestEvaluateStorageError(t *testing.T) {
	boom := errors.New("db down")
	g := New(failingPosts{err: boom}, testScorer(), 0, 0)

	_, err := g.Evaluate(context.Background(), "BAM IS ON FIRE 🔥", "G1", time.Now())
	assert.ErrorIs(t, err, boom)
}

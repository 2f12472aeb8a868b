package draft

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/classify"
)

func TestDraftColdStreak(t *testing.T) {
	d := NewTemplateDrafter(nil) // rng nulo: primeiro template do pool

	got, err := d.Draft(context.Background(), []classify.Event{
		{Kind: classify.ColdStreak, Player: "Bam Adebayo", Misses: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "BAM JUST BRICKED 3 STRAIGHT 🤡", got)
}

func TestDraftHotStreak(t *testing.T) {
	d := NewTemplateDrafter(nil)

	got, err := d.Draft(context.Background(), []classify.Event{
		{Kind: classify.HotStreak, Player: "Tyler Herro", Points: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, "TYLER IS HIM 🔥🔥🔥 7 PTS SINCE LAST CHECK", got)
}

func TestDraftTeamRunDirection(t *testing.T) {
	d := NewTemplateDrafter(nil)

	up, err := d.Draft(context.Background(), []classify.Event{{Kind: classify.TeamRun, Swing: 9}})
	require.NoError(t, err)
	assert.Contains(t, up, "9 PT")
	assert.NotContains(t, up, "-")

	down, err := d.Draft(context.Background(), []classify.Event{{Kind: classify.TeamRun, Swing: -8}})
	require.NoError(t, err)
	assert.Contains(t, down, "8 PT")
	assert.NotContains(t, down, "-8")
}

func TestDraftBlowout(t *testing.T) {
	d := NewTemplateDrafter(nil)

	up, err := d.Draft(context.Background(), []classify.Event{{Kind: classify.Blowout, ScoreDiff: 24}})
	require.NoError(t, err)
	assert.Equal(t, "UP 24 👑 NEVER A DOUBT", up)

	down, err := d.Draft(context.Background(), []classify.Event{{Kind: classify.Blowout, ScoreDiff: -21}})
	require.NoError(t, err)
	assert.Equal(t, "DOWN 21 🗑️ EMBARRASSING", down)
}

func TestDraftPriority(t *testing.T) {
	d := NewTemplateDrafter(nil)

	// roast de jogador vence hype de time
	got, err := d.Draft(context.Background(), []classify.Event{
		{Kind: classify.Blowout, ScoreDiff: 25},
		{Kind: classify.TeamRun, Swing: 10},
		{Kind: classify.ColdStreak, Player: "Bam Adebayo", Misses: 2},
		{Kind: classify.HotStreak, Player: "Tyler Herro", Points: 5},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "BAM"), "esperava roast do Bam, veio %q", got)
}

func TestDraftNoEvents(t *testing.T) {
	d := NewTemplateDrafter(nil)

	_, err := d.Draft(context.Background(), nil)
	assert.Error(t, err)
}

func TestDraftFitsInAPost(t *testing.T) {
	d := NewTemplateDrafter(nil)

	events := []classify.Event{
		{Kind: classify.ColdStreak, Player: "Giannis Antetokounmpo", Misses: 12},
		{Kind: classify.HotStreak, Player: "Giannis Antetokounmpo", Points: 99},
		{Kind: classify.TeamRun, Swing: -42},
		{Kind: classify.Blowout, ScoreDiff: 60},
	}
	for _, ev := range events {
		got, err := d.Draft(context.Background(), []classify.Event{ev})
		require.NoError(t, err)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 280)
	}
}

func TestUpperName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Bam Adebayo", "BAM"},
		{"Tyler Herro", "TYLER"},
		{"bam", "BAM"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, upperName(tc.in))
	}
}

// Package boxscore formata e publica resumos de jogos encerrados.
// Recurso separado do torcedor reativo: aqui o tom é informativo.
package boxscore

import (
	"fmt"
	"strings"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/snapshot"
	"github.com/radieske/nba-fanbot-poc/internal/provider/nba"
	"github.com/radieske/nba-fanbot-poc/internal/sink/twitter"
)

// FormatFinal monta o resumo simples de placar final
func FormatFinal(team string, g nba.GameInfo) string {
	winner, winScore, loseScore := team, g.TeamScore, g.OpponentScore
	if g.OpponentScore > g.TeamScore {
		winner = g.Opponent
		winScore, loseScore = g.OpponentScore, g.TeamScore
	}

	return fmt.Sprintf("🏀 FINAL SCORE\n\n%s %d x %d %s\n\n%s wins %d-%d! 🎯",
		team, g.TeamScore, g.OpponentScore, g.Opponent,
		winner, winScore, loseScore)
}

// FormatFinalWithPerformers monta o resumo com os destaques do time.
// Cai para o formato simples se estourar o limite da plataforma.
func FormatFinalWithPerformers(team string, g nba.GameInfo, players []snapshot.PlayerStat) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏀 FINAL: %s %d, %s %d\n\n", team, g.TeamScore, g.Opponent, g.OpponentScore)

	for _, perf := range notable(players) {
		badge := ""
		switch {
		case perf.tripleDouble:
			badge = " 🔥 TRIPLE-DOUBLE"
		case perf.doubleDouble:
			badge = " 💪"
		}
		fmt.Fprintf(&b, "%s%s\n%dpts/%dreb/%dast",
			perf.stat.PlayerName, badge,
			perf.stat.Points, perf.stat.Rebounds, perf.stat.Assists)
		if perf.stat.Blocks >= 3 {
			fmt.Fprintf(&b, "/%dblk", perf.stat.Blocks)
		}
		if perf.stat.Steals >= 3 {
			fmt.Fprintf(&b, "/%dstl", perf.stat.Steals)
		}
		b.WriteString("\n\n")
	}

	text := strings.TrimRight(b.String(), "\n")
	if len([]rune(text)) > twitter.MaxPostLen {
		return FormatFinal(team, g)
	}
	return text
}

type performance struct {
	stat         snapshot.PlayerStat
	doubleDouble bool
	tripleDouble bool
	leader       bool
}

// notable seleciona cestinha, double-doubles e triple-doubles (máx. 3)
func notable(players []snapshot.PlayerStat) []performance {
	if len(players) == 0 {
		return nil
	}

	leader := players[0]
	for _, p := range players[1:] {
		if p.Points > leader.Points {
			leader = p
		}
	}

	var out []performance
	for _, p := range players {
		doubles := 0
		for _, v := range []int{p.Points, p.Rebounds, p.Assists} {
			if v >= 10 {
				doubles++
			}
		}
		perf := performance{
			stat:         p,
			doubleDouble: doubles >= 2,
			tripleDouble: doubles >= 3,
			leader:       p.PlayerName == leader.PlayerName,
		}
		bigStat := p.Rebounds >= 15 || p.Assists >= 15
		if perf.leader || perf.tripleDouble || (perf.doubleDouble && bigStat) {
			out = append(out, perf)
		}
		if len(out) == 3 {
			break
		}
	}
	return out
}

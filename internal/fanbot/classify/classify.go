// Package classify mapeia um resultado de diff em eventos notáveis.
// Resultado vazio é o caso normal ("nada interessante"), não é erro.
package classify

import (
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/delta"
)

type Kind string

const (
	HotStreak  Kind = "hot_streak"
	ColdStreak Kind = "cold_streak"
	TeamRun    Kind = "team_run"
	Blowout    Kind = "blowout"
)

// Event é uma classificação independente; um mesmo diff pode gerar zero,
// um ou vários eventos, inclusive para o mesmo jogador.
type Event struct {
	Kind   Kind
	Player string // vazio para eventos de time

	Points    int // Δpontos (hot streak)
	Misses    int // arremessos errados no intervalo (cold streak)
	Swing     int // variação do saldo (team run)
	ScoreDiff int // saldo corrente (blowout)

	Current delta.Delta // delta completo do jogador, quando houver
}

// Thresholds parametriza as regras; zero assume os defaults empíricos
type Thresholds struct {
	HotStreakPoints  int // default 4
	ColdStreakMisses int // default 2
	TeamRunPoints    int // default 6
	BlowoutMargin    int // default 20
}

func (t Thresholds) withDefaults() Thresholds {
	if t.HotStreakPoints <= 0 {
		t.HotStreakPoints = 4
	}
	if t.ColdStreakMisses <= 0 {
		t.ColdStreakMisses = 2
	}
	if t.TeamRunPoints <= 0 {
		t.TeamRunPoints = 6
	}
	if t.BlowoutMargin <= 0 {
		t.BlowoutMargin = 20
	}
	return t
}

type Classifier struct{ t Thresholds }

func New(t Thresholds) *Classifier {
	return &Classifier{t: t.withDefaults()}
}

// Classify aplica as regras sobre o diff. Deltas anômalos (contador que
// regrediu) não geram hot/cold streak; o dado não é confiável.
func (c *Classifier) Classify(res delta.Result) []Event {
	if res.FirstCheck {
		return nil
	}

	var out []Event

	for _, d := range res.Deltas {
		if d.Anomalous() {
			continue
		}
		if d.PointsChange >= c.t.HotStreakPoints {
			out = append(out, Event{
				Kind:    HotStreak,
				Player:  d.Player,
				Points:  d.PointsChange,
				Current: d,
			})
		}
		if d.MissedAttempts >= c.t.ColdStreakMisses && d.FGMChange == 0 {
			out = append(out, Event{
				Kind:    ColdStreak,
				Player:  d.Player,
				Misses:  d.MissedAttempts,
				Current: d,
			})
		}
	}

	if abs(res.ScoreSwing) >= c.t.TeamRunPoints {
		out = append(out, Event{
			Kind:      TeamRun,
			Swing:     res.ScoreSwing,
			ScoreDiff: res.ScoreDiff,
		})
	}

	if abs(res.ScoreDiff) >= c.t.BlowoutMargin {
		out = append(out, Event{
			Kind:      Blowout,
			ScoreDiff: res.ScoreDiff,
		})
	}

	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

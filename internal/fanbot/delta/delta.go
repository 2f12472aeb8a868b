// Package delta compara dois snapshots consecutivos do mesmo jogo e produz
// as variações por jogador. É uma função pura: não lê relógio, não persiste
// e nunca falha por valores numéricos inesperados.
package delta

import (
	"errors"
	"fmt"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/snapshot"
)

// ErrData sinaliza entrada malformada (snapshot corrente nulo ou jogador sem nome).
// Valores negativos NÃO são erro: passam adiante e a classificação decide.
var ErrData = errors.New("malformed snapshot data")

// Delta é a variação dos contadores de um jogador entre dois snapshots.
// Os campos *Change podem ser negativos com entrada anômala do provedor.
type Delta struct {
	Player string

	PointsChange    int
	ReboundsChange  int
	AssistsChange   int
	TurnoversChange int
	FGMChange       int
	FGAChange       int
	ThreePMChange   int
	ThreePAChange   int

	// MissedAttempts = ΔFGA − ΔFGM; insumo principal do cold streak
	MissedAttempts int

	// Acumulados correntes, úteis para compor a take
	CurrentPoints   int
	CurrentRebounds int
	CurrentAssists  int
}

// Anomalous indica contador que regrediu (entrada malformada do provedor).
// O motor não trata como erro; quem classifica é que decide ignorar.
func (d Delta) Anomalous() bool {
	return d.PointsChange < 0 || d.ReboundsChange < 0 || d.AssistsChange < 0 ||
		d.TurnoversChange < 0 || d.FGMChange < 0 || d.FGAChange < 0 ||
		d.ThreePMChange < 0 || d.ThreePAChange < 0
}

// Entered é um jogador presente no snapshot corrente mas ausente no anterior
type Entered struct {
	Player  string
	Current snapshot.PlayerStat
}

// Result é a saída completa de um diff entre dois snapshots
type Result struct {
	GameID     string
	FirstCheck bool
	Deltas     []Delta
	Entered    []Entered

	// ScoreSwing é a variação do saldo do placar (time − adversário)
	// entre os dois snapshots. Positivo = run a favor.
	ScoreSwing int

	// ScoreDiff é o saldo corrente do placar
	ScoreDiff int
}

// Diff compara o snapshot anterior com o corrente.
//
//   - prev nulo: primeira observação do jogo, resultado vazio com FirstCheck
//   - jogador novo no corrente: evento Entered, sem deltas
//   - jogador com todos os contadores inalterados: omitido do resultado
//   - jogador que sumiu do corrente: ignorado de propósito (pode só ter
//     saído de quadra, não é evento)
func Diff(prev, cur *snapshot.Snapshot) (Result, error) {
	if cur == nil {
		return Result{}, fmt.Errorf("%w: current snapshot is nil", ErrData)
	}
	for _, p := range cur.Players {
		if p.PlayerName == "" {
			return Result{}, fmt.Errorf("%w: player with empty name", ErrData)
		}
	}

	res := Result{
		GameID:    cur.GameID,
		ScoreDiff: cur.TeamScore - cur.OpponentScore,
	}

	if prev == nil {
		res.FirstCheck = true
		return res, nil
	}

	res.ScoreSwing = (cur.TeamScore - cur.OpponentScore) - (prev.TeamScore - prev.OpponentScore)

	before := make(map[string]snapshot.PlayerStat, len(prev.Players))
	for _, p := range prev.Players {
		before[p.PlayerName] = p
	}

	for _, p := range cur.Players {
		old, ok := before[p.PlayerName]
		if !ok {
			res.Entered = append(res.Entered, Entered{Player: p.PlayerName, Current: p})
			continue
		}

		d := Delta{
			Player:          p.PlayerName,
			PointsChange:    p.Points - old.Points,
			ReboundsChange:  p.Rebounds - old.Rebounds,
			AssistsChange:   p.Assists - old.Assists,
			TurnoversChange: p.Turnovers - old.Turnovers,
			FGMChange:       p.FieldGoalsMade - old.FieldGoalsMade,
			FGAChange:       p.FieldGoalsAttempted - old.FieldGoalsAttempted,
			ThreePMChange:   p.ThreePointersMade - old.ThreePointersMade,
			ThreePAChange:   p.ThreePointersAttempted - old.ThreePointersAttempted,
			CurrentPoints:   p.Points,
			CurrentRebounds: p.Rebounds,
			CurrentAssists:  p.Assists,
		}
		d.MissedAttempts = d.FGAChange - d.FGMChange

		if d.PointsChange == 0 && d.ReboundsChange == 0 && d.AssistsChange == 0 &&
			d.TurnoversChange == 0 && d.FGMChange == 0 && d.FGAChange == 0 &&
			d.ThreePMChange == 0 && d.ThreePAChange == 0 {
			continue // nada mudou, não é evento
		}

		res.Deltas = append(res.Deltas, d)
	}

	return res, nil
}

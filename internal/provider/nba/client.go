// Package nba é o cliente do provedor de estatísticas. Toda validação de
// payload acontece aqui, na fronteira: o motor de diff só recebe Snapshot
// já íntegro.
package nba

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/snapshot"
)

// ErrData sinaliza payload do provedor sem os contadores obrigatórios
var ErrData = errors.New("malformed stats payload")

// GameInfo resume um jogo do time acompanhado no scoreboard
type GameInfo struct {
	GameID        string
	Period        int
	GameClock     string
	TeamScore     int
	OpponentScore int
	Opponent      string
	Home          bool
	Final         bool
}

type Client struct {
	BaseURL string
	TeamID  int
	HTTP    *http.Client
}

func New(base string, teamID int) *Client {
	return &Client{
		BaseURL: base,
		TeamID:  teamID,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// LiveGame procura um jogo do time em andamento agora.
// Segundo retorno false quando não há jogo ao vivo (não é erro).
func (c *Client) LiveGame(ctx context.Context) (GameInfo, bool, error) {
	board, err := c.scoreboard(ctx)
	if err != nil {
		return GameInfo{}, false, err
	}
	for _, g := range board.Games {
		if g.GameStatus != 2 {
			continue
		}
		if info, ok := c.teamGame(g); ok {
			return info, true, nil
		}
	}
	return GameInfo{}, false, nil
}

// Finals lista os jogos do time já encerrados no scoreboard corrente
func (c *Client) Finals(ctx context.Context) ([]GameInfo, error) {
	board, err := c.scoreboard(ctx)
	if err != nil {
		return nil, err
	}
	var out []GameInfo
	for _, g := range board.Games {
		if g.GameStatus != 3 {
			continue
		}
		if info, ok := c.teamGame(g); ok {
			info.Final = true
			out = append(out, info)
		}
	}
	return out, nil
}

// BoxScore busca o box score corrente e o converte num Snapshot validado.
// `now` vem do chamador: o cliente nunca lê relógio.
func (c *Client) BoxScore(ctx context.Context, gameID string, now time.Time) (*snapshot.Snapshot, error) {
	var out boxScoreResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/games/%s/boxscore", c.BaseURL, gameID), &out); err != nil {
		return nil, err
	}

	var team, opponent *boxScoreTeam
	switch {
	case out.Game.HomeTeam.TeamID == c.TeamID:
		team, opponent = &out.Game.HomeTeam, &out.Game.AwayTeam
	case out.Game.AwayTeam.TeamID == c.TeamID:
		team, opponent = &out.Game.AwayTeam, &out.Game.HomeTeam
	default:
		return nil, fmt.Errorf("%w: team %d not in game %s", ErrData, c.TeamID, gameID)
	}

	snap := &snapshot.Snapshot{
		GameID:        out.Game.GameID,
		CapturedAt:    now,
		Period:        out.Game.Period,
		GameClock:     out.Game.GameClock,
		TeamScore:     team.Score,
		OpponentScore: opponent.Score,
	}

	for _, p := range team.Players {
		stat, err := mapPlayer(p)
		if err != nil {
			return nil, err
		}
		snap.Players = append(snap.Players, stat)
	}

	return snap, nil
}

// mapPlayer valida e converte um jogador do payload; contador obrigatório
// ausente é ErrData aqui, nunca dentro do motor de diff
func mapPlayer(p boxScorePlayer) (snapshot.PlayerStat, error) {
	if p.Name == "" {
		return snapshot.PlayerStat{}, fmt.Errorf("%w: player without name", ErrData)
	}
	required := map[string]*int{
		"points":              p.Statistics.Points,
		"reboundsTotal":       p.Statistics.Rebounds,
		"assists":             p.Statistics.Assists,
		"turnovers":           p.Statistics.Turnovers,
		"fieldGoalsMade":      p.Statistics.FieldGoalsMade,
		"fieldGoalsAttempted": p.Statistics.FieldGoalsAttempted,
	}
	for field, v := range required {
		if v == nil {
			return snapshot.PlayerStat{}, fmt.Errorf("%w: player %q missing counter %s", ErrData, p.Name, field)
		}
	}

	return snapshot.PlayerStat{
		PlayerName:             p.Name,
		Minutes:                p.Statistics.Minutes,
		Points:                 *p.Statistics.Points,
		Rebounds:               *p.Statistics.Rebounds,
		Assists:                *p.Statistics.Assists,
		Turnovers:              *p.Statistics.Turnovers,
		FieldGoalsMade:         *p.Statistics.FieldGoalsMade,
		FieldGoalsAttempted:    *p.Statistics.FieldGoalsAttempted,
		Steals:                 p.Statistics.Steals,
		Blocks:                 p.Statistics.Blocks,
		ThreePointersMade:      p.Statistics.ThreePointersMade,
		ThreePointersAttempted: p.Statistics.ThreePointersAttempted,
	}, nil
}

func (c *Client) teamGame(g scoreboardGame) (GameInfo, bool) {
	home := g.HomeTeam.TeamID == c.TeamID
	away := g.AwayTeam.TeamID == c.TeamID
	if !home && !away {
		return GameInfo{}, false
	}

	info := GameInfo{
		GameID:    g.GameID,
		Period:    g.Period,
		GameClock: g.GameClock,
		Home:      home,
	}
	if home {
		info.TeamScore = g.HomeTeam.Score
		info.OpponentScore = g.AwayTeam.Score
		info.Opponent = g.AwayTeam.TeamTricode
	} else {
		info.TeamScore = g.AwayTeam.Score
		info.OpponentScore = g.HomeTeam.Score
		info.Opponent = g.HomeTeam.TeamTricode
	}
	return info, true
}

func (c *Client) scoreboard(ctx context.Context) (scoreboardResponse, error) {
	var out scoreboardResponse
	err := c.getJSON(ctx, c.BaseURL+"/scoreboard", &out)
	return out, err
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("stats provider http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(dst)
}

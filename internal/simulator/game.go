// Package simulator implementa um provedor de estatísticas fake para
// execução local: um jogo roteirizado cujo box score avança a cada fetch.
package simulator

import (
	"fmt"
	"math/rand"
	"sync"
)

// Estruturas de payload no mesmo formato consumido pelo provider/nba

type scoreboardTeam struct {
	TeamID      int    `json:"teamId"`
	TeamTricode string `json:"teamTricode"`
	Score       int    `json:"score"`
}

type ScoreboardGame struct {
	GameID     string         `json:"gameId"`
	GameStatus int            `json:"gameStatus"`
	Period     int            `json:"period"`
	GameClock  string         `json:"gameClock"`
	HomeTeam   scoreboardTeam `json:"homeTeam"`
	AwayTeam   scoreboardTeam `json:"awayTeam"`
}

type Scoreboard struct {
	Games []ScoreboardGame `json:"games"`
}

type playerStats struct {
	Minutes                string `json:"minutes"`
	Points                 int    `json:"points"`
	Rebounds               int    `json:"reboundsTotal"`
	Assists                int    `json:"assists"`
	Steals                 int    `json:"steals"`
	Blocks                 int    `json:"blocks"`
	Turnovers              int    `json:"turnovers"`
	FieldGoalsMade         int    `json:"fieldGoalsMade"`
	FieldGoalsAttempted    int    `json:"fieldGoalsAttempted"`
	ThreePointersMade      int    `json:"threePointersMade"`
	ThreePointersAttempted int    `json:"threePointersAttempted"`
}

type boxPlayer struct {
	Name       string      `json:"name"`
	Statistics playerStats `json:"statistics"`
}

type boxTeam struct {
	TeamID  int         `json:"teamId"`
	Score   int         `json:"score"`
	Players []boxPlayer `json:"players"`
}

type BoxScore struct {
	Game struct {
		GameID    string  `json:"gameId"`
		Period    int     `json:"period"`
		GameClock string  `json:"gameClock"`
		HomeTeam  boxTeam `json:"homeTeam"`
		AwayTeam  boxTeam `json:"awayTeam"`
	} `json:"game"`
}

// elenco roteirizado do jogo simulado
var defaultRoster = []string{
	"Bam Adebayo", "Tyler Herro", "Norman Powell",
	"Nikola Jovic", "Davion Mitchell", "Kel'el Ware",
}

const fetchesPerPeriod = 8

// Game é o estado mutável do jogo simulado. Avança em cada chamada de
// Advance explícita, ficando determinístico dado o rand injetado.
type Game struct {
	mu sync.Mutex

	rng        *rand.Rand
	gameID     string
	teamID     int
	tricode    string
	oppID      int
	oppTricode string

	period    int
	fetches   int
	teamScore int
	oppScore  int
	players   []playerStats
	names     []string
	final     bool
}

func NewGame(rng *rand.Rand, teamID int, tricode string) *Game {
	g := &Game{
		rng:        rng,
		gameID:     "SIM_0042300001",
		teamID:     teamID,
		tricode:    tricode,
		oppID:      1610612738,
		oppTricode: "BOS",
		period:     1,
		names:      defaultRoster,
		players:    make([]playerStats, len(defaultRoster)),
	}
	for i := range g.players {
		g.players[i].Minutes = "0:00"
	}
	return g
}

// Advance move o jogo um passo: alguns jogadores arremessam, o placar
// anda, o período vira a cada N passos e o jogo encerra depois do quarto
func (g *Game) Advance() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.final {
		return
	}

	acting := 1 + g.rng.Intn(3)
	for i := 0; i < acting; i++ {
		p := &g.players[g.rng.Intn(len(g.players))]

		p.FieldGoalsAttempted++
		three := g.rng.Intn(3) == 0
		if three {
			p.ThreePointersAttempted++
		}
		if g.rng.Intn(100) < 55 { // cesta
			p.FieldGoalsMade++
			if three {
				p.ThreePointersMade++
				p.Points += 3
				g.teamScore += 3
			} else {
				p.Points += 2
				g.teamScore += 2
			}
		}

		switch g.rng.Intn(5) {
		case 0:
			p.Rebounds++
		case 1:
			p.Assists++
		case 2:
			p.Turnovers++
		}
	}

	g.oppScore += g.rng.Intn(7)

	g.fetches++
	if g.fetches%fetchesPerPeriod == 0 {
		if g.period == 4 {
			g.final = true
		} else {
			g.period++
		}
	}
}

func (g *Game) status() int {
	if g.final {
		return 3
	}
	return 2
}

func (g *Game) clock() string {
	if g.final {
		return ""
	}
	left := fetchesPerPeriod - g.fetches%fetchesPerPeriod
	return fmt.Sprintf("PT%02dM00.00S", left)
}

// Scoreboard devolve o placar corrente no formato do scoreboard real
func (g *Game) Scoreboard() Scoreboard {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Scoreboard{Games: []ScoreboardGame{{
		GameID:     g.gameID,
		GameStatus: g.status(),
		Period:     g.period,
		GameClock:  g.clock(),
		HomeTeam:   scoreboardTeam{TeamID: g.teamID, TeamTricode: g.tricode, Score: g.teamScore},
		AwayTeam:   scoreboardTeam{TeamID: g.oppID, TeamTricode: g.oppTricode, Score: g.oppScore},
	}}}
}

// GameID devolve o id do jogo simulado
func (g *Game) GameID() string { return g.gameID }

// BoxScore devolve o box score corrente no formato do box score real
func (g *Game) BoxScore() BoxScore {
	g.mu.Lock()
	defer g.mu.Unlock()

	var out BoxScore
	out.Game.GameID = g.gameID
	out.Game.Period = g.period
	out.Game.GameClock = g.clock()
	out.Game.HomeTeam = boxTeam{TeamID: g.teamID, Score: g.teamScore}
	out.Game.AwayTeam = boxTeam{TeamID: g.oppID, Score: g.oppScore}

	for i, name := range g.names {
		stats := g.players[i]
		stats.Minutes = fmt.Sprintf("%d:00", g.fetches)
		out.Game.HomeTeam.Players = append(out.Game.HomeTeam.Players, boxPlayer{
			Name:       name,
			Statistics: stats,
		})
	}
	return out
}

package nba

// Payloads do provedor de estatísticas (mesmo formato do stats-simulator).
// Contadores obrigatórios são ponteiros de propósito: campo ausente no JSON
// vira nil e é rejeitado na fronteira, antes de virar Snapshot.

type scoreboardResponse struct {
	Games []scoreboardGame `json:"games"`
}

type scoreboardGame struct {
	GameID     string        `json:"gameId"`
	GameStatus int           `json:"gameStatus"` // 1 agendado, 2 ao vivo, 3 encerrado
	Period     int           `json:"period"`
	GameClock  string        `json:"gameClock"`
	HomeTeam   scoreboardTea `json:"homeTeam"`
	AwayTeam   scoreboardTea `json:"awayTeam"`
}

type scoreboardTea struct {
	TeamID      int    `json:"teamId"`
	TeamTricode string `json:"teamTricode"`
	Score       int    `json:"score"`
}

type boxScoreResponse struct {
	Game boxScoreGame `json:"game"`
}

type boxScoreGame struct {
	GameID    string       `json:"gameId"`
	Period    int          `json:"period"`
	GameClock string       `json:"gameClock"`
	HomeTeam  boxScoreTeam `json:"homeTeam"`
	AwayTeam  boxScoreTeam `json:"awayTeam"`
}

type boxScoreTeam struct {
	TeamID  int              `json:"teamId"`
	Score   int              `json:"score"`
	Players []boxScorePlayer `json:"players"`
}

type boxScorePlayer struct {
	Name       string     `json:"name"`
	Statistics playerStat `json:"statistics"`
}

type playerStat struct {
	Minutes string `json:"minutes"`

	// obrigatórios
	Points              *int `json:"points"`
	Rebounds            *int `json:"reboundsTotal"`
	Assists             *int `json:"assists"`
	Turnovers           *int `json:"turnovers"`
	FieldGoalsMade      *int `json:"fieldGoalsMade"`
	FieldGoalsAttempted *int `json:"fieldGoalsAttempted"`

	// opcionais
	Steals                 int `json:"steals"`
	Blocks                 int `json:"blocks"`
	ThreePointersMade      int `json:"threePointersMade"`
	ThreePointersAttempted int `json:"threePointersAttempted"`
}

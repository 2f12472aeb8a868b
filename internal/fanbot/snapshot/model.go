package snapshot

import "time"

// PlayerStat guarda os contadores acumulados de um jogador no momento do snapshot.
// Contadores são cumulativos no jogo (nunca resetam entre snapshots).
type PlayerStat struct {
	PlayerName             string `json:"player_name"`
	Minutes                string `json:"minutes,omitempty"`
	Points                 int    `json:"points"`
	Rebounds               int    `json:"rebounds"`
	Assists                int    `json:"assists"`
	Steals                 int    `json:"steals"`
	Blocks                 int    `json:"blocks"`
	Turnovers              int    `json:"turnovers"`
	FieldGoalsMade         int    `json:"field_goals_made"`
	FieldGoalsAttempted    int    `json:"field_goals_attempted"`
	ThreePointersMade      int    `json:"three_pointers_made"`
	ThreePointersAttempted int    `json:"three_pointers_attempted"`
}

// Snapshot é uma observação do box score de um jogo em um instante.
// Imutável depois de persistido; o motor só compara snapshots consecutivos
// do mesmo GameID.
type Snapshot struct {
	ID            string
	GameID        string
	CapturedAt    time.Time
	Period        int
	GameClock     string // informativo, não entra no diff
	TeamScore     int
	OpponentScore int
	Players       []PlayerStat
}

// PostRecord é uma take aceita e publicada, usada como base de comparação
// de similaridade pelo resto do dia.
type PostRecord struct {
	ID         string
	GameID     string
	Text       string
	ExternalID string
	PostedAt   time.Time
}

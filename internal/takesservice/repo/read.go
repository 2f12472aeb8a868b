package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// ReadRepo expõe consultas de leitura sobre o histórico de snapshots e takes
type ReadRepo struct {
	DB *sql.DB
}

// GameSummary resume um jogo com snapshots registrados
type GameSummary struct {
	GameID        string    `json:"game_id"`
	Snapshots     int       `json:"snapshots"`
	LastCaptured  time.Time `json:"last_captured"`
	TeamScore     int       `json:"team_score"`
	OpponentScore int       `json:"opponent_score"`
}

// SnapshotRow é um snapshot na forma servida pela API de leitura
type SnapshotRow struct {
	ID            string          `json:"id"`
	GameID        string          `json:"game_id"`
	CapturedAt    time.Time       `json:"captured_at"`
	Period        int             `json:"period"`
	GameClock     string          `json:"game_clock"`
	TeamScore     int             `json:"team_score"`
	OpponentScore int             `json:"opponent_score"`
	Box           json.RawMessage `json:"box"`
}

// TakeRow é uma take publicada na forma servida pela API de leitura
type TakeRow struct {
	ID         string    `json:"id"`
	GameID     string    `json:"game_id"`
	Text       string    `json:"text"`
	ExternalID string    `json:"external_id"`
	PostedAt   time.Time `json:"posted_at"`
}

// ListGames lista os jogos com snapshot a partir do corte, mais recentes primeiro
func (r *ReadRepo) ListGames(ctx context.Context, since time.Time) ([]GameSummary, error) {
	const q = `
		SELECT game_id,
		       COUNT(*) AS snapshots,
		       MAX(captured_at) AS last_captured
		FROM game_snapshots
		WHERE captured_at >= $1
		GROUP BY game_id
		ORDER BY last_captured DESC;
	`
	rows, err := r.DB.QueryContext(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GameSummary
	for rows.Next() {
		var g GameSummary
		if err := rows.Scan(&g.GameID, &g.Snapshots, &g.LastCaptured); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// placar corrente vem do snapshot mais recente de cada jogo
	for i := range out {
		const sq = `
			SELECT team_score, opponent_score
			FROM game_snapshots
			WHERE game_id = $1
			ORDER BY captured_at DESC
			LIMIT 1;
		`
		if err := r.DB.QueryRowContext(ctx, sq, out[i].GameID).
			Scan(&out[i].TeamScore, &out[i].OpponentScore); err != nil && err != sql.ErrNoRows {
			return nil, err
		}
	}
	return out, nil
}

// ListSnapshots lista os snapshots de um jogo, mais antigos primeiro
func (r *ReadRepo) ListSnapshots(ctx context.Context, gameID string, limit int) ([]SnapshotRow, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	const q = `
		SELECT id, game_id, captured_at, period, game_clock, team_score, opponent_score, box_json
		FROM game_snapshots
		WHERE game_id = $1
		ORDER BY captured_at ASC
		LIMIT $2;
	`
	rows, err := r.DB.QueryContext(ctx, q, gameID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotRow
	for rows.Next() {
		var s SnapshotRow
		if err := rows.Scan(&s.ID, &s.GameID, &s.CapturedAt, &s.Period, &s.GameClock,
			&s.TeamScore, &s.OpponentScore, &s.Box); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListTakes lista as takes publicadas de um jogo, mais antigas primeiro
func (r *ReadRepo) ListTakes(ctx context.Context, gameID string) ([]TakeRow, error) {
	const q = `
		SELECT id, game_id, take_text, external_id, posted_at
		FROM posted_takes
		WHERE game_id = $1
		ORDER BY posted_at ASC;
	`
	rows, err := r.DB.QueryContext(ctx, q, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TakeRow
	for rows.Next() {
		var t TakeRow
		if err := rows.Scan(&t.ID, &t.GameID, &t.Text, &t.ExternalID, &t.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Postgres implementa Store sobre duas tabelas:
//
//	game_snapshots(id, game_id, captured_at, period, game_clock,
//	               team_score, opponent_score, box_json)
//	posted_takes(id, game_id, take_text, external_id, posted_at)
//
// game_snapshots é append-only; não existe UPDATE nem DELETE.
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do store de snapshots
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Append insere o snapshot como uma única linha (INSERT atômico)
func (p *Postgres) Append(ctx context.Context, s *Snapshot) (string, error) {
	box, err := json.Marshal(s.Players)
	if err != nil {
		return "", fmt.Errorf("marshal box score: %w", err)
	}

	id := uuid.NewString()
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO game_snapshots (id,game_id,captured_at,period,game_clock,team_score,opponent_score,box_json)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		id, s.GameID, s.CapturedAt, s.Period, s.GameClock, s.TeamScore, s.OpponentScore, box,
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w: %w", ErrStorage, err)
	}
	return id, nil
}

// Latest devolve o snapshot mais recente do jogo; nil sem erro quando não há nenhum
func (p *Postgres) Latest(ctx context.Context, gameID string) (*Snapshot, error) {
	const q = `
		SELECT id, game_id, captured_at, period, game_clock, team_score, opponent_score, box_json
		FROM game_snapshots
		WHERE game_id = $1
		ORDER BY captured_at DESC
		LIMIT 1`

	var (
		s   Snapshot
		box []byte
	)
	err := p.db.QueryRowContext(ctx, q, gameID).Scan(
		&s.ID, &s.GameID, &s.CapturedAt, &s.Period, &s.GameClock,
		&s.TeamScore, &s.OpponentScore, &box,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w: %w", ErrStorage, err)
	}
	if err := json.Unmarshal(box, &s.Players); err != nil {
		return nil, fmt.Errorf("unmarshal box score: %w", err)
	}
	return &s, nil
}

// RecordPost registra uma take publicada para as comparações de similaridade do dia
func (p *Postgres) RecordPost(ctx context.Context, rec *PostRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO posted_takes (id,game_id,take_text,external_id,posted_at)
		VALUES ($1,$2,$3,$4,$5)`,
		rec.ID, rec.GameID, rec.Text, rec.ExternalID, rec.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("insert posted take: %w: %w", ErrStorage, err)
	}
	return nil
}

// PostsSince lista as takes publicadas a partir do corte, mais antigas primeiro
func (p *Postgres) PostsSince(ctx context.Context, cutoff time.Time) ([]PostRecord, error) {
	const q = `
		SELECT id, game_id, take_text, external_id, posted_at
		FROM posted_takes
		WHERE posted_at >= $1
		ORDER BY posted_at ASC`

	rows, err := p.db.QueryContext(ctx, q, cutoff)
	if err != nil {
		return nil, fmt.Errorf("query posted takes: %w: %w", ErrStorage, err)
	}
	defer rows.Close()

	var out []PostRecord
	for rows.Next() {
		var rec PostRecord
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.Text, &rec.ExternalID, &rec.PostedAt); err != nil {
			return nil, fmt.Errorf("scan posted take: %w: %w", ErrStorage, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posted takes: %w: %w", ErrStorage, err)
	}
	return out, nil
}

package boxscore

import (
	"context"
	"database/sql"
	"time"

	"github.com/radieske/nba-fanbot-poc/internal/provider/nba"
)

// Postgres registra os jogos já resumidos na tabela boxscore_posts
// para o poster nunca publicar o mesmo jogo duas vezes
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// AlreadyPosted verifica se o jogo já teve resumo publicado
func (p *Postgres) AlreadyPosted(ctx context.Context, gameID string) (bool, error) {
	var one int
	err := p.db.QueryRowContext(ctx,
		`SELECT 1 FROM boxscore_posts WHERE game_id = $1`, gameID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MarkPosted registra o resumo publicado
func (p *Postgres) MarkPosted(ctx context.Context, g nba.GameInfo, team, text, externalID string, now time.Time) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO boxscore_posts (game_id,game_date,home_team,away_team,home_score,away_score,post_text,external_id,posted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (game_id) DO NOTHING`,
		g.GameID, now, homeName(g, team), awayName(g, team), homeScore(g), awayScore(g), text, externalID, now,
	)
	return err
}

func homeName(g nba.GameInfo, team string) string {
	if g.Home {
		return team
	}
	return g.Opponent
}

func awayName(g nba.GameInfo, team string) string {
	if g.Home {
		return g.Opponent
	}
	return team
}

func homeScore(g nba.GameInfo) int {
	if g.Home {
		return g.TeamScore
	}
	return g.OpponentScore
}

func awayScore(g nba.GameInfo) int {
	if g.Home {
		return g.OpponentScore
	}
	return g.TeamScore
}

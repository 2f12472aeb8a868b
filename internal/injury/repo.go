package injury

import (
	"context"
	"database/sql"
	"time"
)

// Postgres registra os posts de insider já processados (tabela processed_posts)
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Seen verifica se o post já foi processado
func (p *Postgres) Seen(ctx context.Context, postID string) (bool, error) {
	var one int
	err := p.db.QueryRowContext(ctx,
		`SELECT 1 FROM processed_posts WHERE post_id = $1`, postID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Record registra o resultado do processamento de um post
func (p *Postgres) Record(ctx context.Context, postID, author, text string, isInjury, reposted bool, repostID string, now time.Time) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO processed_posts (post_id,author,post_text,injury_related,reposted,repost_id,processed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (post_id) DO NOTHING`,
		postID, author, text, isInjury, reposted, repostID, now,
	)
	return err
}

// LastProcessedID devolve o post mais recente já processado do autor, para
// paginar a timeline a partir dele ("" quando não há nenhum)
func (p *Postgres) LastProcessedID(ctx context.Context, author string) (string, error) {
	var id string
	err := p.db.QueryRowContext(ctx, `
		SELECT post_id FROM processed_posts
		WHERE author = $1
		ORDER BY processed_at DESC
		LIMIT 1`, author).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return id, err
}

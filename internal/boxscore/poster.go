package boxscore

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/snapshot"
	"github.com/radieske/nba-fanbot-poc/internal/provider/nba"
)

// StatsProvider é o recorte do cliente de estatísticas usado pelo poster
type StatsProvider interface {
	Finals(ctx context.Context) ([]nba.GameInfo, error)
	BoxScore(ctx context.Context, gameID string, now time.Time) (*snapshot.Snapshot, error)
}

// SocialSink publica o resumo na rede social
type SocialSink interface {
	Post(ctx context.Context, text string) (string, error)
}

// Poster publica resumo de cada jogo encerrado do time, uma única vez por jogo
type Poster struct {
	Log      *zap.Logger
	Team     string
	Provider StatsProvider
	Repo     *Postgres
	Sink     SocialSink
	Now      func() time.Time

	OnPosted func() // métricas
}

// Run verifica os jogos encerrados e publica os resumos ainda não postados
func (p *Poster) Run(ctx context.Context) error {
	finals, err := p.Provider.Finals(ctx)
	if err != nil {
		return fmt.Errorf("list finals: %w", err)
	}

	for _, g := range finals {
		posted, err := p.Repo.AlreadyPosted(ctx, g.GameID)
		if err != nil {
			return fmt.Errorf("check posted game %s: %w", g.GameID, err)
		}
		if posted {
			continue
		}

		now := p.Now()
		text := FormatFinal(p.Team, g)
		if snap, err := p.Provider.BoxScore(ctx, g.GameID, now); err == nil {
			text = FormatFinalWithPerformers(p.Team, g, snap.Players)
		} else {
			// resumo simples já serve; destaque é best-effort
			p.Log.Warn("box score fetch failed, posting plain summary",
				zap.String("game_id", g.GameID), zap.Error(err))
		}

		extID, err := p.Sink.Post(ctx, text)
		if err != nil {
			return fmt.Errorf("post summary for game %s: %w", g.GameID, err)
		}

		if err := p.Repo.MarkPosted(ctx, g, p.Team, text, extID, now); err != nil {
			return fmt.Errorf("mark game %s posted: %w", g.GameID, err)
		}

		if p.OnPosted != nil {
			p.OnPosted()
		}
		p.Log.Info("final summary posted",
			zap.String("game_id", g.GameID), zap.String("external_id", extID))
	}

	return nil
}

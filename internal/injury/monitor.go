package injury

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/sink/twitter"
)

// Timeline é o recorte do cliente social que o monitor lê
type Timeline interface {
	Timeline(ctx context.Context, username, sinceID string) ([]twitter.TimelinePost, error)
}

// Reposter cita um post existente com um comentário curto
type Reposter interface {
	Quote(ctx context.Context, text, quotedID string) (string, error)
}

// Monitor varre a timeline do insider e reposta notícias de lesão,
// deduplicando pelo registro de posts processados
type Monitor struct {
	Log      *zap.Logger
	Insider  string
	Social   Timeline
	Reposter Reposter
	Detector *Detector
	Repo     *Postgres
	Now      func() time.Time

	OnProcessed func()
	OnReposted  func()
}

const repostComment = "🏀 Injury Update"

// Run processa os posts novos do insider desde a última execução
func (m *Monitor) Run(ctx context.Context) error {
	sinceID, err := m.Repo.LastProcessedID(ctx, m.Insider)
	if err != nil {
		return fmt.Errorf("load last processed id: %w", err)
	}

	posts, err := m.Social.Timeline(ctx, m.Insider, sinceID)
	if err != nil {
		return fmt.Errorf("fetch insider timeline: %w", err)
	}

	for _, post := range posts {
		seen, err := m.Repo.Seen(ctx, post.ID)
		if err != nil {
			return fmt.Errorf("check processed post: %w", err)
		}
		if seen {
			continue
		}

		now := m.Now()
		analysis := m.Detector.Classify(ctx, post.Text)

		repostID := ""
		reposted := false
		if analysis.IsInjury {
			repostID, err = m.Reposter.Quote(ctx, repostComment, post.ID)
			if err != nil {
				// registra como não repostado; tenta de novo só se o insider postar de novo
				m.Log.Warn("injury repost failed", zap.String("post_id", post.ID), zap.Error(err))
			} else {
				reposted = true
				if m.OnReposted != nil {
					m.OnReposted()
				}
				m.Log.Info("injury news reposted",
					zap.String("post_id", post.ID),
					zap.String("repost_id", repostID),
					zap.Float64("confidence", analysis.Confidence),
				)
			}
		}

		if err := m.Repo.Record(ctx, post.ID, m.Insider, post.Text, analysis.IsInjury, reposted, repostID, now); err != nil {
			return fmt.Errorf("record processed post: %w", err)
		}
		if m.OnProcessed != nil {
			m.OnProcessed()
		}
	}

	return nil
}

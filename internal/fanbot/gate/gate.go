// Package gate decide se uma take candidata pode ser publicada.
// Decisão pura: não posta, não persiste e recebe o relógio de fora.
// Rejeição não é erro — é um resultado normal e observável.
package gate

import (
	"context"
	"time"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/similarity"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/snapshot"
)

const (
	ReasonApproved  = "approved"
	ReasonCooldown  = "cooldown"
	ReasonDuplicate = "duplicate"
)

// Decision é o veredito sobre uma take candidata
type Decision struct {
	Approved   bool
	Reason     string
	Similarity float64 // maior score encontrado, quando Reason == duplicate
	SimilarTo  string  // take anterior que causou a rejeição
}

// PostsReader é o recorte do snapshot.Store que o gate precisa
type PostsReader interface {
	PostsSince(ctx context.Context, cutoff time.Time) ([]snapshot.PostRecord, error)
}

type Gate struct {
	posts     PostsReader
	scorer    *similarity.Scorer
	cooldown  time.Duration // default 5 min
	threshold float64       // default 0.6
}

func New(posts PostsReader, scorer *similarity.Scorer, cooldown time.Duration, threshold float64) *Gate {
	if cooldown <= 0 {
		cooldown = 5 * time.Minute
	}
	if threshold <= 0 {
		threshold = 0.6
	}
	return &Gate{posts: posts, scorer: scorer, cooldown: cooldown, threshold: threshold}
}

// Evaluate avalia a take candidata contra o histórico do dia.
//
// Ordem das regras:
//  1. cooldown: já postamos sobre este jogo dentro da janela
//  2. duplicate: similaridade acima do corte com qualquer take de hoje
//  3. approved
//
// A janela de comparação reseta na meia-noite do fuso de `now`.
func (g *Gate) Evaluate(ctx context.Context, candidateText, gameID string, now time.Time) (Decision, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	todays, err := g.posts.PostsSince(ctx, startOfDay)
	if err != nil {
		return Decision{}, err
	}

	for _, p := range todays {
		if p.GameID == gameID && now.Sub(p.PostedAt) < g.cooldown {
			return Decision{Approved: false, Reason: ReasonCooldown}, nil
		}
	}

	for _, p := range todays {
		score := g.scorer.Score(candidateText, p.Text)
		if score > g.threshold {
			return Decision{
				Approved:   false,
				Reason:     ReasonDuplicate,
				Similarity: score,
				SimilarTo:  p.Text,
			}, nil
		}
	}

	return Decision{Approved: true, Reason: ReasonApproved}, nil
}

// Package agent orquestra um ciclo completo do torcedor reativo:
// poll do provedor → persistência → diff → classificação → draft →
// gate → publicação. Um ciclo por vez, síncrono; o scheduler fica no main.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/classify"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/delta"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/gate"
	"github.com/radieske/nba-fanbot-poc/internal/fanbot/snapshot"
	"github.com/radieske/nba-fanbot-poc/internal/provider/nba"
	"github.com/radieske/nba-fanbot-poc/pkg/contracts/events"
)

// StatsProvider é o recorte do cliente de estatísticas que o agente usa
type StatsProvider interface {
	LiveGame(ctx context.Context) (nba.GameInfo, bool, error)
	BoxScore(ctx context.Context, gameID string, now time.Time) (*snapshot.Snapshot, error)
}

// SocialSink publica a take na rede social e devolve o id externo
type SocialSink interface {
	Post(ctx context.Context, text string) (string, error)
}

// Drafter transforma eventos notáveis numa take candidata (string opaca)
type Drafter interface {
	Draft(ctx context.Context, evs []classify.Event) (string, error)
}

// Publisher anuncia takes publicadas no feed de eventos (Kafka)
type Publisher interface {
	Publish(ctx context.Context, e events.TakePosted) error
}

// Agent executa o ciclo poll→diff→classify→gate→post.
// Callbacks OnX alimentam métricas no main, como nos demais workers.
type Agent struct {
	Log        *zap.Logger
	Store      snapshot.Store
	Provider   StatsProvider
	Classifier *classify.Classifier
	Drafter    Drafter
	Gate       *gate.Gate
	Sink       SocialSink
	Publisher  Publisher       // opcional
	Now        func() time.Time

	OnCycle  func()       // métricas (counter++)
	OnPosted func()       // métricas
	OnSkip   func(string) // métricas por motivo (no_live_game, first_check, ...)
	OnError  func(string) // métricas por estágio
}

// RunCycle roda um ciclo completo. Erros abortam o ciclo sem tocar no
// histórico já gravado; rejeições do gate não são erro.
func (a *Agent) RunCycle(ctx context.Context) error {
	if a.OnCycle != nil {
		a.OnCycle()
	}
	now := a.Now()

	game, live, err := a.Provider.LiveGame(ctx)
	if err != nil {
		a.fail("provider_scoreboard", err)
		return fmt.Errorf("check live game: %w", err)
	}
	if !live {
		a.skip("no_live_game")
		return nil
	}

	cur, err := a.Provider.BoxScore(ctx, game.GameID, now)
	if err != nil {
		a.fail("provider_boxscore", err)
		return fmt.Errorf("fetch box score: %w", err)
	}

	// lê o anterior antes de gravar o corrente: o diff é sempre contra o
	// snapshot imediatamente precedente
	prev, err := a.Store.Latest(ctx, cur.GameID)
	if err != nil {
		a.fail("store_latest", err)
		return fmt.Errorf("load previous snapshot: %w", err)
	}

	if _, err := a.Store.Append(ctx, cur); err != nil {
		a.fail("store_append", err)
		return fmt.Errorf("append snapshot: %w", err)
	}

	res, err := delta.Diff(prev, cur)
	if err != nil {
		a.fail("diff", err)
		return fmt.Errorf("diff snapshots: %w", err)
	}
	if res.FirstCheck {
		a.skip("first_check")
		a.Log.Info("first snapshot saved, waiting for drama", zap.String("game_id", cur.GameID))
		return nil
	}

	evs := a.Classifier.Classify(res)
	if len(evs) == 0 {
		a.skip("nothing_notable")
		return nil
	}

	text, err := a.Drafter.Draft(ctx, evs)
	if err != nil {
		a.fail("draft", err)
		return fmt.Errorf("draft take: %w", err)
	}

	decision, err := a.Gate.Evaluate(ctx, text, cur.GameID, now)
	if err != nil {
		a.fail("gate", err)
		return fmt.Errorf("evaluate take: %w", err)
	}
	if !decision.Approved {
		a.skip(decision.Reason)
		a.Log.Info("take rejected",
			zap.String("reason", decision.Reason),
			zap.Float64("similarity", decision.Similarity),
			zap.String("candidate", text),
		)
		return nil
	}

	extID, err := a.Sink.Post(ctx, text)
	if err != nil {
		a.fail("sink_post", err)
		return fmt.Errorf("post take: %w", err)
	}

	rec := &snapshot.PostRecord{
		GameID:     cur.GameID,
		Text:       text,
		ExternalID: extID,
		PostedAt:   now,
	}
	if err := a.Store.RecordPost(ctx, rec); err != nil {
		// a take já saiu; registra o erro mas não desfaz nada
		a.fail("store_record_post", err)
		return fmt.Errorf("record posted take: %w", err)
	}

	if a.Publisher != nil {
		ev := events.TakePosted{
			TakeID:     rec.ID,
			GameID:     cur.GameID,
			Text:       text,
			ExternalID: extID,
			Events:     kinds(evs),
			PostedAt:   now,
		}
		if err := a.Publisher.Publish(ctx, ev); err != nil {
			// feed é downstream; falha aqui não invalida o ciclo
			a.Log.Warn("take feed publish failed", zap.Error(err))
		}
	}

	if a.OnPosted != nil {
		a.OnPosted()
	}
	a.Log.Info("take posted",
		zap.String("game_id", cur.GameID),
		zap.String("external_id", extID),
		zap.String("text", text),
	)
	return nil
}

// DataFailure indica se o erro do ciclo veio de payload malformado
// (ciclo pulado, estado anterior intacto) e não de I/O
func DataFailure(err error) bool {
	return errors.Is(err, nba.ErrData) || errors.Is(err, delta.ErrData)
}

func (a *Agent) skip(reason string) {
	if a.OnSkip != nil {
		a.OnSkip(reason)
	}
}

func (a *Agent) fail(stage string, err error) {
	if a.OnError != nil {
		a.OnError(stage)
	}
	a.Log.Warn("cycle stage failed", zap.String("stage", stage), zap.Error(err))
}

func kinds(evs []classify.Event) []string {
	out := make([]string, 0, len(evs))
	for _, ev := range evs {
		out = append(out, string(ev.Kind))
	}
	return out
}

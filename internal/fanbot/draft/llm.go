package draft

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/classify"
	"github.com/radieske/nba-fanbot-poc/internal/llm"
)

// persona do torcedor: exagerado, reativo, sem meio-termo
const systemPrompt = `You are an EXTREMELY opinionated basketball superfan posting live-game hot takes.
Rules:
- React ONLY to the changes described, not overall stats
- Keep it SHORT: 100-150 characters, shitpost style
- ALL CAPS when excited or angry, emojis allowed (🔥💪😤🤡👑🗑️💀)
- Roast players brutally on cold streaks, crown them on hot streaks
- Respond with ONLY the post text, nothing else`

// LLMDrafter pede a take para um LLM; qualquer falha cai para os templates
// para o ciclo nunca travar por causa de colaborador externo.
type LLMDrafter struct {
	Client   *llm.Client
	Fallback *TemplateDrafter
	Log      *zap.Logger
}

func (d *LLMDrafter) Draft(ctx context.Context, evs []classify.Event) (string, error) {
	text, err := d.fromLLM(ctx, evs)
	if err != nil {
		if d.Log != nil {
			d.Log.Warn("llm draft failed, falling back to templates", zap.Error(err))
		}
		return d.Fallback.Draft(ctx, evs)
	}
	return text, nil
}

func (d *LLMDrafter) fromLLM(ctx context.Context, evs []classify.Event) (string, error) {
	if len(evs) == 0 {
		return "", fmt.Errorf("draft: no events to draft from")
	}

	var b strings.Builder
	b.WriteString("What just happened since the last check:\n")
	for _, ev := range evs {
		switch ev.Kind {
		case classify.HotStreak:
			fmt.Fprintf(&b, "- %s scored %d points\n", ev.Player, ev.Points)
		case classify.ColdStreak:
			fmt.Fprintf(&b, "- %s missed %d shots with no makes\n", ev.Player, ev.Misses)
		case classify.TeamRun:
			fmt.Fprintf(&b, "- score swing of %d points (positive = our run)\n", ev.Swing)
		case classify.Blowout:
			fmt.Fprintf(&b, "- current score margin is %d\n", ev.ScoreDiff)
		}
	}
	b.WriteString("Write ONE hot take about the most dramatic item.")

	text, err := d.Client.Complete(ctx, systemPrompt, b.String(), 200)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	text = strings.Trim(text, `"`)
	if text == "" {
		return "", fmt.Errorf("draft: llm returned empty text")
	}
	return text, nil
}

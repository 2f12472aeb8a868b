// Package injury monitora a timeline de um insider e reposta notícias de
// lesão. Classificação em duas fases: filtro barato por palavras-chave e
// confirmação opcional via LLM.
package injury

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/radieske/nba-fanbot-poc/internal/llm"
)

// termos que sugerem notícia de lesão; filtro de primeira passada
var injuryTerms = []string{
	"injury", "injured", "hurt", "out for", "will miss", "miss games",
	"questionable", "doubtful", "probable", "mri", "surgery", "sprain",
	"strain", "fracture", "tear", "torn", "acl", "hamstring",
	"re-evaluated", "week-to-week", "day-to-day", "ruled out",
}

// Analysis é o veredito sobre um post de insider
type Analysis struct {
	IsInjury   bool    `json:"is_injury"`
	Confidence float64 `json:"confidence"`
	Summary    string  `json:"summary"`
}

// Detector classifica posts. LLM nulo desabilita a confirmação: o filtro
// de palavras-chave decide sozinho com confiança reduzida.
type Detector struct {
	LLM *llm.Client
	Log *zap.Logger
}

const classifyPrompt = `You are analyzing a post from an NBA insider to determine if it reports a player injury or injury-related news.
Mark as injury when it mentions: a player injured or hurt, games missed due to injury, out/questionable/doubtful status, MRI or surgery, diagnosis (sprain, strain, fracture, tear), return or re-evaluation timelines.
Do NOT mark as injury for: resting players, trades, contract signings, general team news.
Respond with ONLY a JSON object: {"is_injury": true or false, "confidence": 0.0 to 1.0, "summary": "brief explanation"}`

// Classify decide se o texto é notícia de lesão
func (d *Detector) Classify(ctx context.Context, text string) Analysis {
	if !keywordHit(text) {
		return Analysis{IsInjury: false, Confidence: 0.9, Summary: "no injury keyword present"}
	}
	if d.LLM == nil {
		return Analysis{IsInjury: true, Confidence: 0.5, Summary: "injury keyword present, no llm confirmation"}
	}

	raw, err := d.LLM.Complete(ctx, classifyPrompt, `Post: "`+text+`"`, 200)
	if err != nil {
		d.Log.Warn("llm injury classify failed, keeping keyword verdict", zap.Error(err))
		return Analysis{IsInjury: true, Confidence: 0.5, Summary: "llm unavailable, keyword match"}
	}

	var out Analysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &out); err != nil {
		d.Log.Warn("llm injury classify returned invalid json", zap.Error(err))
		return Analysis{IsInjury: true, Confidence: 0.5, Summary: "llm response unparseable, keyword match"}
	}
	return out
}

func keywordHit(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range injuryTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

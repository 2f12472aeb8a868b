// Package draft transforma eventos notáveis em takes curtas estilo
// shitpost. O drafter de templates é determinístico dado o rand injetado;
// o drafter via LLM (llm.go) cai para os templates quando a API falha.
package draft

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/radieske/nba-fanbot-poc/internal/fanbot/classify"
)

type TemplateDrafter struct {
	rng *rand.Rand
}

func NewTemplateDrafter(rng *rand.Rand) *TemplateDrafter {
	return &TemplateDrafter{rng: rng}
}

// Ordem de prioridade quando um diff gera vários eventos: roast antes de
// hype, jogador antes de time.
var priority = []classify.Kind{
	classify.ColdStreak,
	classify.HotStreak,
	classify.TeamRun,
	classify.Blowout,
}

var coldTemplates = []string{
	"%s JUST BRICKED %d STRAIGHT 🤡",
	"%s BRICKED %d IN A ROW 💀 BENCH HIM",
	"%s CANT HIT A BARN DOOR 🗑️ %d MISSES AND COUNTING",
}

var hotTemplates = []string{
	"%s IS HIM 🔥🔥🔥 %d PTS SINCE LAST CHECK",
	"%s IS THE GOAT 👑 %d STRAIGHT POINTS",
	"%s COOKING RIGHT NOW 🔥 %d QUICK ONES",
}

var runUpTemplates = []string{
	"%d PT SWING 🔥 WE ARE COOKING",
	"CALLED IT 😤 %d PT RUN LETS GO",
}

var runDownTemplates = []string{
	"WE ARE BLOWING IT 💀 %d PT SWING",
	"PANIC TIME 🚨 THEY JUST WENT ON A %d PT RUN",
}

// Draft monta a take para o evento mais prioritário do ciclo
func (t *TemplateDrafter) Draft(_ context.Context, evs []classify.Event) (string, error) {
	ev, ok := pick(evs)
	if !ok {
		return "", fmt.Errorf("draft: no events to draft from")
	}

	switch ev.Kind {
	case classify.ColdStreak:
		return fmt.Sprintf(t.choose(coldTemplates), upperName(ev.Player), ev.Misses), nil
	case classify.HotStreak:
		return fmt.Sprintf(t.choose(hotTemplates), upperName(ev.Player), ev.Points), nil
	case classify.TeamRun:
		if ev.Swing > 0 {
			return fmt.Sprintf(t.choose(runUpTemplates), ev.Swing), nil
		}
		return fmt.Sprintf(t.choose(runDownTemplates), -ev.Swing), nil
	case classify.Blowout:
		if ev.ScoreDiff > 0 {
			return fmt.Sprintf("UP %d 👑 NEVER A DOUBT", ev.ScoreDiff), nil
		}
		return fmt.Sprintf("DOWN %d 🗑️ EMBARRASSING", -ev.ScoreDiff), nil
	}
	return "", fmt.Errorf("draft: unknown event kind %q", ev.Kind)
}

func pick(evs []classify.Event) (classify.Event, bool) {
	for _, kind := range priority {
		for _, ev := range evs {
			if ev.Kind == kind {
				return ev, true
			}
		}
	}
	return classify.Event{}, false
}

func (t *TemplateDrafter) choose(pool []string) string {
	if t.rng == nil {
		return pool[0]
	}
	return pool[t.rng.Intn(len(pool))]
}

// upperName devolve só o primeiro nome em caixa alta ("Bam Adebayo" -> "BAM")
func upperName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == ' ' {
			break
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		out = append(out, r)
	}
	return string(out)
}

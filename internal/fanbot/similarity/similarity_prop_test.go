package similarity

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genTake gera textos plausíveis misturando vocabulário do domínio e ruído
func genTake() gopter.Gen {
	words := gen.OneConstOf(
		"BAM", "HERRO", "JIMMY", "HEAT",
		"BRICK", "BRICKED", "FIRE", "COOKING", "TRASH", "GOAT", "CLUTCH",
		"JUST", "IS", "ON", "STRAIGHT", "TONIGHT", "🔥", "🤡", "LMAO", "3",
	)
	return gen.SliceOfN(6, words).Map(func(ws []string) string {
		return strings.Join(ws, " ")
	})
}

func TestScoreProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	s := testScorer()

	properties.Property("score fica em [0,1]", prop.ForAll(
		func(a, b string) bool {
			got := s.Score(a, b)
			return got >= 0.0 && got <= 1.0
		},
		genTake(), genTake(),
	))

	properties.Property("score é simétrico", prop.ForAll(
		func(a, b string) bool {
			return s.Score(a, b) == s.Score(b, a)
		},
		genTake(), genTake(),
	))

	properties.Property("score não depende de caixa", prop.ForAll(
		func(a, b string) bool {
			return s.Score(a, b) == s.Score(strings.ToLower(a), strings.ToLower(b))
		},
		genTake(), genTake(),
	))

	properties.Property("texto contra si mesmo nunca fica abaixo do limiar quando há sinal", prop.ForAll(
		func(a string) bool {
			got := s.Score(a, a)
			return got == 0.0 || got >= 0.4
		},
		genTake(),
	))

	properties.TestingRun(t)
}

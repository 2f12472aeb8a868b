// Package similarity calcula um score heurístico 0–1 de redundância entre
// duas takes. Não é NLP: é interseção de vocabulário (palavras de
// sentimento e nomes de jogadores), de propósito simples e previsível.
package similarity

import "strings"

// Vocabulary são os dois conjuntos fixos extraídos de cada texto:
// palavras-chave de sentimento do domínio e nomes/apelidos do elenco.
// Injetado por configuração para ser testável e trocável por time.
type Vocabulary struct {
	Keywords []string
	Entities []string
}

type Scorer struct {
	keywords []string
	entities []string
}

func NewScorer(v Vocabulary) *Scorer {
	return &Scorer{
		keywords: upperAll(v.Keywords),
		entities: upperAll(v.Entities),
	}
}

// Score devolve a similaridade entre dois textos em [0,1].
//
// Jaccard independente por vocabulário, combinação 0.6*entidades +
// 0.4*keywords. Quando os textos compartilham pelo menos uma entidade E
// pelo menos uma keyword, soma um boost fixo de 0.2 (mesmo assunto com
// mesmo sentimento tende a ser a mesma take) e trunca em 1.0.
// Sem nenhum sinal nos dois textos, devolve 0.0: na dúvida, posta.
func (s *Scorer) Score(textA, textB string) float64 {
	a := strings.ToUpper(textA)
	b := strings.ToUpper(textB)

	kwA := matches(a, s.keywords)
	kwB := matches(b, s.keywords)
	enA := matches(a, s.entities)
	enB := matches(b, s.entities)

	kwOverlap, kwTotal := overlap(kwA, kwB)
	enOverlap, enTotal := overlap(enA, enB)

	if kwTotal == 0 && enTotal == 0 {
		return 0.0
	}

	var kwSim, enSim float64
	if kwTotal > 0 {
		kwSim = float64(kwOverlap) / float64(kwTotal)
	}
	if enTotal > 0 {
		enSim = float64(enOverlap) / float64(enTotal)
	}

	score := enSim*0.6 + kwSim*0.4
	if enOverlap > 0 && kwOverlap > 0 {
		score += 0.2
		if score > 1.0 {
			score = 1.0
		}
	}
	return score
}

// matches devolve o conjunto de termos do vocabulário presentes no texto
func matches(upperText string, vocab []string) map[string]struct{} {
	found := make(map[string]struct{})
	for _, term := range vocab {
		if strings.Contains(upperText, term) {
			found[term] = struct{}{}
		}
	}
	return found
}

// overlap devolve |A ∩ B| e |A ∪ B|
func overlap(a, b map[string]struct{}) (inter, union int) {
	union = len(b)
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		} else {
			union++
		}
	}
	return inter, union
}

func upperAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToUpper(s))
	}
	return out
}

package injury

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClassifyKeywordOnly(t *testing.T) {
	d := &Detector{Log: zap.NewNop()} // sem LLM: palavra-chave decide

	tests := []struct {
		name   string
		text   string
		injury bool
	}{
		{"ruled out", "Tyler Herro (ankle) has been ruled out for tonight's game vs Boston", true},
		{"mri", "Sources: Bam Adebayo will undergo an MRI on his left knee tomorrow", true},
		{"timeline", "Jimmy Butler is expected to be re-evaluated in two weeks", true},
		{"questionable", "Heat list Duncan Robinson as questionable for Friday", true},
		{"trade", "The Heat are trading two second-round picks for a backup center", false},
		{"contract", "Miami and Nikola Jovic agree on a 4-year extension", false},
		{"resultado", "Heat beat the Celtics 110-101 behind 30 from Herro", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Classify(context.Background(), tc.text)
			assert.Equal(t, tc.injury, got.IsInjury)
		})
	}
}

func TestClassifyConfidenceWithoutLLM(t *testing.T) {
	d := &Detector{Log: zap.NewNop()}

	hit := d.Classify(context.Background(), "Bam Adebayo is day-to-day with a sore wrist")
	assert.True(t, hit.IsInjury)
	assert.InDelta(t, 0.5, hit.Confidence, 1e-9, "sem confirmação do LLM a confiança é reduzida")

	miss := d.Classify(context.Background(), "Heat sign veteran guard to 10-day deal")
	assert.False(t, miss.IsInjury)
	assert.InDelta(t, 0.9, miss.Confidence, 1e-9)
}

func TestKeywordHitIsCaseInsensitive(t *testing.T) {
	assert.True(t, keywordHit("BAM ADEBAYO RULED OUT TONIGHT"))
	assert.True(t, keywordHit("player suffered an ACL tear"))
	assert.False(t, keywordHit("what a great win"))
}

package engine

import (
	"sort"
	"testing"

	"grammarlab/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hintedQuestion() *domain.Question {
	q := domain.NewQuestion("q-fib", domain.QuestionFillInBlank, "Fill in the blank")
	q.FillInBlank = &domain.FillInBlankPayload{
		Template: "___",
		Blanks:   []domain.Blank{{AcceptedAnswers: []string{"cats"}}},
	}
	q.Hints = []string{"Think about number agreement.", "The subject is plural."}
	return q
}

func TestGenerateHintSequence(t *testing.T) {
	s := NewHintSequencer()
	seq := s.GenerateHintSequence(hintedQuestion(), DefaultHintOptions())

	require.NotNil(t, seq)
	assert.GreaterOrEqual(t, len(seq.Hints), 4, "2 provided + generated hints")
	assert.Equal(t, domain.DefaultMaxHints, seq.MaxHints)
	assert.Equal(t, -1, seq.CurrentIndex)
	assert.True(t, seq.AdaptiveMode)

	assert.True(t, sort.SliceIsSorted(seq.Hints, func(i, j int) bool {
		return seq.Hints[i].RevealPercent < seq.Hints[j].RevealPercent
	}))

	// Provided hints occupy the low end ahead of generated ones.
	assert.Equal(t, domain.HintProvided, seq.Hints[0].Category)
	assert.False(t, seq.Hints[0].Generated)
	assert.Equal(t, 10, seq.Hints[0].RevealPercent)
	assert.Equal(t, 30, seq.Hints[1].RevealPercent)
}

func TestGenerateHintSequence_NoAuthorHints(t *testing.T) {
	s := NewHintSequencer()

	for _, qType := range domain.KnownQuestionTypes() {
		q := domain.NewQuestion("q", qType, "prompt")
		seq := s.GenerateHintSequence(q, DefaultHintOptions())
		assert.NotEmpty(t, seq.Hints, string(qType))
		for _, h := range seq.Hints {
			assert.True(t, h.Generated, string(qType))
		}
	}
}

func TestGenerateHintSequence_AdaptiveDisabled(t *testing.T) {
	s := NewHintSequencer()
	opts := DefaultHintOptions()
	opts.EnableAdaptive = false

	seq := s.GenerateHintSequence(hintedQuestion(), opts)
	assert.False(t, seq.AdaptiveMode)
}

func TestNextHint_CursorWalk(t *testing.T) {
	s := NewHintSequencer()
	seq := s.GenerateHintSequence(hintedQuestion(), DefaultHintOptions())

	for i := 0; i < seq.MaxHints; i++ {
		hint := s.NextHint(seq, nil)
		require.NotNil(t, hint, "hint %d", i)
		assert.Equal(t, i, seq.CurrentIndex)
	}

	assert.Nil(t, s.NextHint(seq, nil))
	assert.Equal(t, seq.MaxHints-1, seq.CurrentIndex, "exhausted sequence must not advance")
	assert.Nil(t, s.NextHint(seq, nil))
}

func TestNextHint_ZeroMaxHints(t *testing.T) {
	s := NewHintSequencer()
	seq := s.GenerateHintSequence(hintedQuestion(), HintOptions{MaxHints: 0, EnableAdaptive: true})

	assert.Nil(t, s.NextHint(seq, nil))
	assert.Equal(t, -1, seq.CurrentIndex)
}

func TestNextHint_AdaptivePrefersWeakCategory(t *testing.T) {
	s := NewHintSequencer()
	q := hintedQuestion()
	seq := s.GenerateHintSequence(q, DefaultHintOptions())
	profile := &domain.LearnerProfile{WeakCategories: []domain.HintCategory{domain.HintGrammar}}

	hint := s.NextHint(seq, profile)
	require.NotNil(t, hint)
	assert.Equal(t, domain.HintGrammar, hint.Category)
	assert.Equal(t, 0, seq.CurrentIndex)
}

func TestNextHint_NoWeaknessMatchKeepsOrder(t *testing.T) {
	s := NewHintSequencer()
	seq := s.GenerateHintSequence(hintedQuestion(), DefaultHintOptions())
	ordered := append([]domain.Hint(nil), seq.Hints...)

	profile := &domain.LearnerProfile{WeakCategories: []domain.HintCategory{domain.HintCategory("vocabulary")}}
	hint := s.NextHint(seq, profile)
	require.NotNil(t, hint)
	assert.Equal(t, ordered[0], *hint, "strict order wins without a weakness match")
}

func TestNextHint_AdaptiveModeOffIgnoresProfile(t *testing.T) {
	s := NewHintSequencer()
	opts := DefaultHintOptions()
	opts.EnableAdaptive = false
	seq := s.GenerateHintSequence(hintedQuestion(), opts)
	ordered := append([]domain.Hint(nil), seq.Hints...)

	profile := &domain.LearnerProfile{WeakCategories: []domain.HintCategory{domain.HintGrammar}}
	hint := s.NextHint(seq, profile)
	require.NotNil(t, hint)
	assert.Equal(t, ordered[0], *hint)
}

func TestAdaptiveScore(t *testing.T) {
	profile := &domain.LearnerProfile{WeakCategories: []domain.HintCategory{domain.HintGrammar}}

	assert.Equal(t, 2, adaptiveScore(domain.Hint{Category: domain.HintGrammar}, profile))
	assert.Equal(t, 0, adaptiveScore(domain.Hint{Category: domain.HintStrategy}, profile))
	assert.Equal(t, 0, adaptiveScore(domain.Hint{Category: domain.HintProvided}, profile))
}

package engine

import (
	"sort"

	"grammarlab/internal/domain"
)

// HintOptions configures hint sequence generation.
type HintOptions struct {
	MaxHints       int
	EnableAdaptive bool
}

// DefaultHintOptions returns the documented defaults: three revealable
// hints, adaptive ordering on.
func DefaultHintOptions() HintOptions {
	return HintOptions{
		MaxHints:       domain.DefaultMaxHints,
		EnableAdaptive: true,
	}
}

// Reveal percentages for generated hints. Author-provided hints occupy the
// low end (10-40) so they always surface before the heuristic ones.
const (
	providedRevealBase = 10
	providedRevealStep = 20
	providedRevealCap  = 40
	strategyReveal     = 50
	grammarReveal      = 70
	directedReveal     = 90
)

// HintSequencer builds capped hint sequences and drives the reveal cursor.
type HintSequencer struct{}

// NewHintSequencer creates a new HintSequencer instance.
func NewHintSequencer() *HintSequencer {
	return &HintSequencer{}
}

// GenerateHintSequence builds the ordered sequence for a question:
// author-provided hints first (by reveal percentage), then type-specific
// generated hints. A well-formed question never yields an empty sequence,
// even with zero author hints.
func (s *HintSequencer) GenerateHintSequence(question *domain.Question, opts HintOptions) *domain.HintSequence {
	var hints []domain.Hint

	for i, content := range question.Hints {
		if content == "" {
			continue
		}
		reveal := providedRevealBase + i*providedRevealStep
		if reveal > providedRevealCap {
			reveal = providedRevealCap
		}
		hints = append(hints, domain.Hint{
			Content:       content,
			Category:      domain.HintProvided,
			RevealPercent: reveal,
		})
	}

	hints = append(hints, generatedHints(question)...)

	// Stable: ties keep insertion order, so provided hints stay ahead of
	// generated ones at equal percentages.
	sort.SliceStable(hints, func(i, j int) bool {
		return hints[i].RevealPercent < hints[j].RevealPercent
	})

	return domain.NewHintSequence(hints, opts.MaxHints, opts.EnableAdaptive)
}

// generatedHints supplies the heuristic hints for each question variant.
func generatedHints(question *domain.Question) []domain.Hint {
	switch question.Type {
	case domain.QuestionMultipleChoice:
		return []domain.Hint{
			generated("Eliminate the options that are clearly implausible before choosing.", domain.HintStrategy, strategyReveal),
			generated("Re-read the sentence with each remaining option in place and listen for what sounds off.", domain.HintGrammar, grammarReveal),
		}
	case domain.QuestionFillInBlank:
		return []domain.Hint{
			generated("Read the whole sentence first; the words around the blank narrow down what fits.", domain.HintStrategy, strategyReveal),
			generated("Check the word form: does the blank need a plural, or a different verb tense?", domain.HintGrammar, grammarReveal),
			generated("Say the sentence aloud with your candidate word and check it agrees with the subject.", domain.HintGrammar, directedReveal),
		}
	case domain.QuestionSentenceBuilder:
		return []domain.Hint{
			generated("Find the subject and the verb first, then build the rest around them.", domain.HintStrategy, strategyReveal),
			generated("English usually orders words subject, verb, object; modifiers sit next to what they describe.", domain.HintGrammar, grammarReveal),
		}
	case domain.QuestionDragAndDrop:
		return []domain.Hint{
			generated("Place the items you are certain about first, then reason about what's left.", domain.HintStrategy, strategyReveal),
			generated("Ask what role each word plays in a sentence; that role names its category.", domain.HintGrammar, grammarReveal),
		}
	case domain.QuestionEssay:
		return []domain.Hint{
			generated("Jot down the key points you want to cover before writing full sentences.", domain.HintStrategy, strategyReveal),
			generated("Keep one idea per sentence and check each verb agrees with its subject.", domain.HintGrammar, grammarReveal),
		}
	default:
		return []domain.Hint{
			generated("Break the exercise into smaller parts and handle them one at a time.", domain.HintStrategy, strategyReveal),
		}
	}
}

func generated(content string, category domain.HintCategory, reveal int) domain.Hint {
	return domain.Hint{
		Content:       content,
		Category:      category,
		RevealPercent: reveal,
		Generated:     true,
	}
}

// NextHint reveals the next hint of the sequence, or nil once the sequence
// is exhausted (a normal terminal state, not an error). With a profile and
// adaptive mode on, the unrevealed hint scoring highest against the
// learner's weaknesses is pulled forward; without a winning score the
// strict sequence order stands.
func (s *HintSequencer) NextHint(seq *domain.HintSequence, profile *domain.LearnerProfile) *domain.Hint {
	if seq == nil || seq.Exhausted() {
		return nil
	}
	next := seq.CurrentIndex + 1

	if profile != nil && seq.AdaptiveMode {
		best, bestScore := next, adaptiveScore(seq.Hints[next], profile)
		for i := next + 1; i < len(seq.Hints); i++ {
			if score := adaptiveScore(seq.Hints[i], profile); score > bestScore {
				best, bestScore = i, score
			}
		}
		if best != next {
			promoted := seq.Hints[best]
			copy(seq.Hints[next+1:best+1], seq.Hints[next:best])
			seq.Hints[next] = promoted
		}
	}

	seq.CurrentIndex = next
	return &seq.Hints[next]
}

// adaptiveScore ranks a candidate hint for a learner: a weakness-category
// match scores 2, anything else 0. Ties fall back to sequence order, so a
// profile with no matching weakness leaves the ordering untouched.
func adaptiveScore(hint domain.Hint, profile *domain.LearnerProfile) int {
	if profile.IsWeakIn(hint.Category) {
		return 2
	}
	return 0
}

package domain

// HintCategory classifies what kind of help a hint gives.
type HintCategory string

const (
	HintProvided HintCategory = "provided"
	HintStrategy HintCategory = "strategy"
	HintGrammar  HintCategory = "grammar"
)

// DefaultMaxHints caps how many hints a sequence reveals unless the caller
// overrides it.
const DefaultMaxHints = 3

// Hint is one revealable piece of help. RevealPercent orders hints from
// vague to explicit; Generated distinguishes heuristic hints from
// author-provided ones.
type Hint struct {
	Content       string       `json:"content"`
	Category      HintCategory `json:"category"`
	RevealPercent int          `json:"reveal_percent"`
	Generated     bool         `json:"generated"`
}

// HintSequence is the caller-owned cursor over an ordered hint list.
// CurrentIndex starts at -1 (nothing revealed) and only ever moves forward,
// never past MaxHints-1. One sequence belongs to exactly one learner
// session; the engine does no internal locking.
type HintSequence struct {
	Hints        []Hint `json:"hints"`
	CurrentIndex int    `json:"current_index"`
	MaxHints     int    `json:"max_hints"`
	AdaptiveMode bool   `json:"adaptive_mode"`
}

// NewHintSequence builds an unstarted sequence over hints.
func NewHintSequence(hints []Hint, maxHints int, adaptive bool) *HintSequence {
	return &HintSequence{
		Hints:        hints,
		CurrentIndex: -1,
		MaxHints:     maxHints,
		AdaptiveMode: adaptive,
	}
}

// Exhausted reports whether no further hint can be revealed.
func (s *HintSequence) Exhausted() bool {
	next := s.CurrentIndex + 1
	return next >= s.MaxHints || next >= len(s.Hints)
}

// Remaining returns how many hints are still revealable.
func (s *HintSequence) Remaining() int {
	limit := s.MaxHints
	if len(s.Hints) < limit {
		limit = len(s.Hints)
	}
	remaining := limit - (s.CurrentIndex + 1)
	if remaining < 0 {
		return 0
	}
	return remaining
}

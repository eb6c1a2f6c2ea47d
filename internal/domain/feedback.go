package domain

import "time"

// Classification is the engine's verdict on a submitted answer.
type Classification string

const (
	ClassificationCorrect   Classification = "correct"
	ClassificationPartial   Classification = "partial"
	ClassificationIncorrect Classification = "incorrect"
)

// Tone selects the register of composed feedback messages.
type Tone string

const (
	ToneEncouraging Tone = "encouraging"
	ToneNeutral     Tone = "neutral"
	ToneStrict      Tone = "strict"
)

// FeedbackOptions is the configuration surface of the feedback composer.
type FeedbackOptions struct {
	EnableEncouragement bool
	Tone                Tone
	EnableAdaptive      bool
}

// DefaultFeedbackOptions returns the documented defaults: no encouragement,
// encouraging tone, adaptive hints enabled.
func DefaultFeedbackOptions() FeedbackOptions {
	return FeedbackOptions{
		EnableEncouragement: false,
		Tone:                ToneEncouraging,
		EnableAdaptive:      true,
	}
}

// FeedbackContext carries everything the composer needs about one
// evaluation. It is built fresh per call and never retained.
type FeedbackContext struct {
	Question      *Question
	UserAnswer    Answer
	CorrectAnswer Answer
	AttemptNumber int
	HintsUsed     int
	TimeSpent     time.Duration
	Profile       *LearnerProfile
}

// Feedback is the structured result handed to the UI. It is an immutable
// value fully determined by the inputs that produced it.
type Feedback struct {
	Classification Classification `json:"classification"`
	Title          string         `json:"title"`
	Message        string         `json:"message"`
	Details        []string       `json:"details"`
	Encouragement  string         `json:"encouragement,omitempty"`
	NextSteps      string         `json:"next_steps,omitempty"`
}

// LearnerProfile is the read-only weakness profile supplied by the
// progress-tracking collaborator. It only biases hint ordering; it never
// changes a correctness classification.
type LearnerProfile struct {
	StrongCategories []HintCategory `json:"strong_categories"`
	WeakCategories   []HintCategory `json:"weak_categories"`
	HintVerbosity    string         `json:"hint_verbosity,omitempty"`
	SuccessRate      float64        `json:"success_rate"`
	RecentMistakes   map[string]int `json:"recent_mistakes,omitempty"`
}

// IsWeakIn reports whether the profile records cat as a weakness.
func (p *LearnerProfile) IsWeakIn(cat HintCategory) bool {
	if p == nil {
		return false
	}
	for _, weak := range p.WeakCategories {
		if weak == cat {
			return true
		}
	}
	return false
}

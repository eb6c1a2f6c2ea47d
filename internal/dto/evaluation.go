package dto

// EvaluateRequest is the API request for evaluating a learner's answer.
// Exactly one of Answer, AnswerList or AnswerMap should be set, matching
// the question variant.
type EvaluateRequest struct {
	QuestionID    string            `json:"question_id"`
	Answer        string            `json:"answer,omitempty"`
	AnswerList    []string          `json:"answer_list,omitempty"`
	AnswerMap     map[string]string `json:"answer_map,omitempty"`
	AttemptNumber int               `json:"attempt_number"`
	HintsUsed     int               `json:"hints_used"`
	TimeSpentMs   int64             `json:"time_spent_ms,omitempty"`
	Profile       *LearnerProfile   `json:"profile,omitempty"`
}

// LearnerProfile mirrors the progress collaborator's weakness profile.
type LearnerProfile struct {
	StrongCategories []string       `json:"strong_categories,omitempty"`
	WeakCategories   []string       `json:"weak_categories,omitempty"`
	HintVerbosity    string         `json:"hint_verbosity,omitempty"`
	SuccessRate      float64        `json:"success_rate,omitempty"`
	RecentMistakes   map[string]int `json:"recent_mistakes,omitempty"`
}

// EvaluateResponse carries the composed feedback back to the UI.
type EvaluateResponse struct {
	QuestionID     string   `json:"question_id"`
	Classification string   `json:"classification"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Details        []string `json:"details"`
	Encouragement  string   `json:"encouragement,omitempty"`
	NextSteps      string   `json:"next_steps,omitempty"`
	EssayComments  string   `json:"essay_comments,omitempty"`
}

// StartHintSessionRequest opens a hint session for one question.
type StartHintSessionRequest struct {
	QuestionID string          `json:"question_id"`
	MaxHints   *int            `json:"max_hints,omitempty"`
	Adaptive   *bool           `json:"adaptive,omitempty"`
	Profile    *LearnerProfile `json:"profile,omitempty"`
}

// HintSessionResponse describes a freshly created hint session.
type HintSessionResponse struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	TotalHints int    `json:"total_hints"`
	MaxHints   int    `json:"max_hints"`
	Token      string `json:"token,omitempty"`
}

// HintResponse is one revealed hint. Exhausted is true (with a nil Hint)
// once the sequence has no more hints to give.
type HintResponse struct {
	SessionID string `json:"session_id"`
	Hint      *Hint  `json:"hint,omitempty"`
	Remaining int    `json:"remaining"`
	Exhausted bool   `json:"exhausted"`
}

// Hint is the API shape of a single hint.
type Hint struct {
	Content       string `json:"content"`
	Category      string `json:"category"`
	RevealPercent int    `json:"reveal_percent"`
	Generated     bool   `json:"generated"`
}

// QuestionResponse is the API shape of a question, without the answers.
type QuestionResponse struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options,omitempty"`
	Template   string   `json:"template,omitempty"`
	BlankCount int      `json:"blank_count,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Items      []string `json:"items,omitempty"`
	Words      []string `json:"words,omitempty"`
	Difficulty int      `json:"difficulty"`
	HintCount  int      `json:"hint_count"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}

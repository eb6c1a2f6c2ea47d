package domain

import (
	"strings"
	"time"
)

// QuestionType is the variant tag of a Question.
type QuestionType string

const (
	QuestionMultipleChoice  QuestionType = "multiple_choice"
	QuestionFillInBlank     QuestionType = "fill_in_blank"
	QuestionDragAndDrop     QuestionType = "drag_and_drop"
	QuestionSentenceBuilder QuestionType = "sentence_builder"
	QuestionEssay           QuestionType = "essay"
)

// KnownQuestionTypes lists every variant the engine dispatches on.
func KnownQuestionTypes() []QuestionType {
	return []QuestionType{
		QuestionMultipleChoice,
		QuestionFillInBlank,
		QuestionDragAndDrop,
		QuestionSentenceBuilder,
		QuestionEssay,
	}
}

// MultipleChoicePayload carries the option list for a multiple_choice question.
type MultipleChoicePayload struct {
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
}

// Blank is a single gap in a fill_in_blank question. An answer matches
// when it matches any entry of AcceptedAnswers.
type Blank struct {
	AcceptedAnswers []string `json:"accepted_answers"`
	CaseSensitive   bool     `json:"case_sensitive"`
}

// FillInBlankPayload carries the blank templates for a fill_in_blank question.
type FillInBlankPayload struct {
	Template string  `json:"template"`
	Blanks   []Blank `json:"blanks"`
}

// DragAndDropPayload carries the canonical item-to-category mapping.
type DragAndDropPayload struct {
	Categories []string          `json:"categories"`
	Placement  map[string]string `json:"placement"`
}

// SentenceBuilderPayload carries the canonical word order.
type SentenceBuilderPayload struct {
	Words []string `json:"words"`
}

// EssayPayload carries the structural requirements for an essay question.
// KeyPoints may be empty, in which case the essay is not graded here.
type EssayPayload struct {
	KeyPoints []string `json:"key_points"`
	MinWords  int      `json:"min_words"`
}

// Question is the engine's read-only view of an exercise. Exactly one
// payload field corresponding to Type is populated; the engine treats the
// pair (Type, payload) as a tagged union.
type Question struct {
	ID          string
	Type        QuestionType
	Prompt      string
	Hints       []string
	Explanation string
	Difficulty  int

	MultipleChoice  *MultipleChoicePayload
	FillInBlank     *FillInBlankPayload
	DragAndDrop     *DragAndDropPayload
	SentenceBuilder *SentenceBuilderPayload
	Essay           *EssayPayload

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuestion creates a Question with timestamps set.
func NewQuestion(id string, qType QuestionType, prompt string) *Question {
	now := time.Now()
	return &Question{
		ID:        id,
		Type:      qType,
		Prompt:    prompt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the question and its variant payload.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return NewValidationFailure("prompt is required")
	}
	switch q.Type {
	case QuestionMultipleChoice:
		if q.MultipleChoice == nil || len(q.MultipleChoice.Options) == 0 {
			return NewValidationFailure("multiple choice question requires options")
		}
		if q.MultipleChoice.CorrectOption == "" {
			return NewValidationFailure("multiple choice question requires a correct option")
		}
	case QuestionFillInBlank:
		if q.FillInBlank == nil || len(q.FillInBlank.Blanks) == 0 {
			return NewValidationFailure("fill in blank question requires at least one blank")
		}
		for _, b := range q.FillInBlank.Blanks {
			if len(b.AcceptedAnswers) == 0 {
				return NewValidationFailure("every blank requires at least one accepted answer")
			}
		}
	case QuestionDragAndDrop:
		if q.DragAndDrop == nil || len(q.DragAndDrop.Placement) == 0 {
			return NewValidationFailure("drag and drop question requires a placement mapping")
		}
	case QuestionSentenceBuilder:
		if q.SentenceBuilder == nil || len(q.SentenceBuilder.Words) == 0 {
			return NewValidationFailure("sentence builder question requires a word sequence")
		}
	case QuestionEssay:
		// Key points are optional; an essay without them is ungraded.
	default:
		return NewValidationFailure("unknown question type: " + string(q.Type))
	}
	return nil
}

// Answer is the variant-parametrized shape of a learner's (or the
// canonical) answer. The field matching the question variant is populated:
// Text for multiple_choice/essay, Blanks for fill_in_blank and
// sentence_builder, Placement for drag_and_drop. The zero value stands for
// a missing answer and always classifies incorrect.
type Answer struct {
	Text      string            `json:"text,omitempty"`
	Blanks    []string          `json:"blanks,omitempty"`
	Placement map[string]string `json:"placement,omitempty"`
}

// TextAnswer builds an Answer holding a single string.
func TextAnswer(text string) Answer {
	return Answer{Text: text}
}

// BlanksAnswer builds an Answer holding an ordered list of strings.
func BlanksAnswer(blanks ...string) Answer {
	return Answer{Blanks: blanks}
}

// PlacementAnswer builds an Answer holding an item-to-category mapping.
func PlacementAnswer(placement map[string]string) Answer {
	return Answer{Placement: placement}
}

// IsEmpty reports whether no answer shape is populated.
func (a Answer) IsEmpty() bool {
	return a.Text == "" && len(a.Blanks) == 0 && len(a.Placement) == 0
}

// CorrectAnswer derives the canonical Answer for the question's variant.
func (q *Question) CorrectAnswer() Answer {
	switch q.Type {
	case QuestionMultipleChoice:
		if q.MultipleChoice != nil {
			return TextAnswer(q.MultipleChoice.CorrectOption)
		}
	case QuestionFillInBlank:
		if q.FillInBlank != nil {
			blanks := make([]string, 0, len(q.FillInBlank.Blanks))
			for _, b := range q.FillInBlank.Blanks {
				if len(b.AcceptedAnswers) > 0 {
					blanks = append(blanks, b.AcceptedAnswers[0])
				} else {
					blanks = append(blanks, "")
				}
			}
			return Answer{Blanks: blanks}
		}
	case QuestionDragAndDrop:
		if q.DragAndDrop != nil {
			return PlacementAnswer(q.DragAndDrop.Placement)
		}
	case QuestionSentenceBuilder:
		if q.SentenceBuilder != nil {
			return Answer{Blanks: q.SentenceBuilder.Words}
		}
	case QuestionEssay:
		// Essays have no single canonical answer.
	}
	return Answer{}
}

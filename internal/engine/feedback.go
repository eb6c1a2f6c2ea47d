package engine

import (
	"fmt"

	"grammarlab/internal/domain"
)

// FeedbackComposer turns a comparison result plus interaction context into
// a structured feedback value. Compose is a pure function of its inputs:
// identical inputs always produce a structurally identical Feedback.
type FeedbackComposer struct{}

// NewFeedbackComposer creates a new FeedbackComposer instance.
func NewFeedbackComposer() *FeedbackComposer {
	return &FeedbackComposer{}
}

// Compose builds the feedback for one evaluation.
func (f *FeedbackComposer) Compose(result ComparisonResult, fctx domain.FeedbackContext, opts domain.FeedbackOptions) domain.Feedback {
	feedback := domain.Feedback{
		Classification: result.Classification,
		Title:          composeTitle(result.Classification, fctx.HintsUsed),
		Message:        f.composeMessage(result, fctx, opts),
		Details:        append([]string(nil), result.Details...),
		NextSteps:      composeNextSteps(result.Classification, fctx.Question),
	}
	if opts.EnableEncouragement {
		feedback.Encouragement = composeEncouragement(fctx.AttemptNumber)
	}
	return feedback
}

func composeTitle(classification domain.Classification, hintsUsed int) string {
	switch classification {
	case domain.ClassificationCorrect:
		if hintsUsed == 0 {
			return "Perfect!"
		}
		return "Correct!"
	case domain.ClassificationPartial:
		return "Almost there!"
	default:
		return "Not quite right"
	}
}

func (f *FeedbackComposer) composeMessage(result ComparisonResult, fctx domain.FeedbackContext, opts domain.FeedbackOptions) string {
	if result.Classification == domain.ClassificationCorrect {
		if ToneOrDefault(opts.Tone) == domain.ToneStrict {
			return "Well done. The answer is correct."
		}
		return "Well done, that's the right answer!"
	}

	message := attemptMessage(fctx.AttemptNumber, ToneOrDefault(opts.Tone))
	if result.Classification == domain.ClassificationPartial {
		message = fmt.Sprintf("%s You got %d%% of this right.", message, percentCorrect(result, fctx.Question))
	}
	return message
}

// attemptMessage buckets the retry guidance by how many attempts the
// learner has made. The literal phrases are part of the engine contract.
func attemptMessage(attemptNumber int, tone domain.Tone) string {
	switch {
	case attemptNumber <= 1:
		if tone == domain.ToneStrict {
			return "That is not correct. Take another look at the sentence."
		}
		return "Not quite, take another look at the sentence."
	case attemptNumber == 2:
		if tone == domain.ToneStrict {
			return "Still not correct. Consider using a hint before the next attempt."
		}
		return "Close, but not yet. Consider using a hint if you're stuck."
	default:
		if tone == domain.ToneNeutral {
			return "Keep trying. Review the explanation if you need a refresher."
		}
		return "Keep trying, you're learning with every attempt!"
	}
}

// percentCorrect derives the share of sub-parts answered correctly from the
// detail count against the question's total part count.
func percentCorrect(result ComparisonResult, question *domain.Question) int {
	total := totalParts(question)
	if total == 0 {
		return 0
	}
	wrong := len(result.Details)
	if wrong > total {
		wrong = total
	}
	return (total - wrong) * 100 / total
}

// totalParts counts the independently graded sub-parts of a question.
func totalParts(question *domain.Question) int {
	if question == nil {
		return 1
	}
	switch question.Type {
	case domain.QuestionFillInBlank:
		if question.FillInBlank != nil {
			return len(question.FillInBlank.Blanks)
		}
	case domain.QuestionDragAndDrop:
		if question.DragAndDrop != nil {
			return len(question.DragAndDrop.Placement)
		}
	case domain.QuestionSentenceBuilder:
		if question.SentenceBuilder != nil {
			return len(question.SentenceBuilder.Words)
		}
	case domain.QuestionEssay:
		if question.Essay != nil && len(question.Essay.KeyPoints) > 0 {
			return len(question.Essay.KeyPoints)
		}
	}
	return 1
}

// composeEncouragement references effort, never correctness, so it reads
// the same whether the answer was right or wrong.
func composeEncouragement(attemptNumber int) string {
	if attemptNumber >= 3 {
		return "Sticking with a hard exercise is how grammar sinks in. Nice persistence!"
	}
	return "You're putting in real effort, and that's what builds skill."
}

func composeNextSteps(classification domain.Classification, question *domain.Question) string {
	switch classification {
	case domain.ClassificationCorrect:
		return "Move on to the next exercise."
	case domain.ClassificationPartial:
		return "Review the parts flagged below and adjust just those."
	default:
		if question != nil && question.Explanation != "" {
			return "Read the explanation for this exercise, then try again."
		}
		return "Try the exercise again from the start."
	}
}

// ToneOrDefault normalizes an unset tone to the default encouraging one.
func ToneOrDefault(tone domain.Tone) domain.Tone {
	if tone == "" {
		return domain.ToneEncouraging
	}
	return tone
}

package engine

import (
	"fmt"
	"strings"

	"grammarlab/internal/domain"
)

// ComparisonResult is the comparator's verdict: a classification plus
// human-readable discrepancy details. Details is empty for a fully correct
// answer.
type ComparisonResult struct {
	Classification domain.Classification
	Details        []string
}

// AnswerComparator dispatches on the question variant and compares a
// learner's answer against the canonical one. Compare never fails:
// malformed or unknown input degrades to a case-normalized exact string
// comparison.
type AnswerComparator struct {
	morphology *MorphologyMatcher
}

// NewAnswerComparator creates a comparator with a default morphology matcher.
func NewAnswerComparator() *AnswerComparator {
	return &AnswerComparator{morphology: NewMorphologyMatcher()}
}

// Compare evaluates userAnswer against correctAnswer for the given question.
func (c *AnswerComparator) Compare(question *domain.Question, userAnswer, correctAnswer domain.Answer) ComparisonResult {
	if question == nil {
		return c.compareExact(userAnswer.Text, correctAnswer.Text)
	}

	switch question.Type {
	case domain.QuestionMultipleChoice:
		return c.compareMultipleChoice(question, userAnswer, correctAnswer)
	case domain.QuestionFillInBlank:
		return c.compareFillInBlank(question, userAnswer)
	case domain.QuestionSentenceBuilder:
		return c.compareSentenceBuilder(question, userAnswer, correctAnswer)
	case domain.QuestionDragAndDrop:
		return c.compareDragAndDrop(question, userAnswer, correctAnswer)
	case domain.QuestionEssay:
		return c.compareEssay(question, userAnswer)
	default:
		return c.compareExact(userAnswer.Text, correctAnswer.Text)
	}
}

// compareExact is the fallback for unknown variants: trimmed,
// case-insensitive string equality.
func (c *AnswerComparator) compareExact(user, correct string) ComparisonResult {
	if strings.EqualFold(strings.TrimSpace(user), strings.TrimSpace(correct)) {
		return ComparisonResult{Classification: domain.ClassificationCorrect}
	}
	return ComparisonResult{
		Classification: domain.ClassificationIncorrect,
		Details:        []string{"Incorrect answer"},
	}
}

func (c *AnswerComparator) compareMultipleChoice(question *domain.Question, user, correct domain.Answer) ComparisonResult {
	expected := correct.Text
	if expected == "" && question.MultipleChoice != nil {
		expected = question.MultipleChoice.CorrectOption
	}
	if strings.EqualFold(strings.TrimSpace(user.Text), strings.TrimSpace(expected)) {
		return ComparisonResult{Classification: domain.ClassificationCorrect}
	}
	return ComparisonResult{
		Classification: domain.ClassificationIncorrect,
		Details:        []string{"Incorrect option selected"},
	}
}

// compareFillInBlank grades each blank independently. A blank submission is
// matched against every accepted answer and the best match wins. Exact
// matches are silent; every other verdict produces a per-blank detail.
func (c *AnswerComparator) compareFillInBlank(question *domain.Question, user domain.Answer) ComparisonResult {
	payload := question.FillInBlank
	if payload == nil || len(payload.Blanks) == 0 {
		return c.compareExact(user.Text, "")
	}

	var details []string
	exact, variant := 0, 0
	for i, blank := range payload.Blanks {
		submitted := ""
		if i < len(user.Blanks) {
			submitted = user.Blanks[i]
		}

		kind, expected := c.matchBlank(blank, submitted)
		switch kind {
		case MatchExact:
			exact++
		case MatchGrammaticalVariation:
			variant++
			details = append(details, fmt.Sprintf("Blank %d: Grammatical variation of '%s'", i+1, expected))
		case MatchSpelling:
			variant++
			details = append(details, fmt.Sprintf("Blank %d: Spelling error", i+1))
		default:
			details = append(details, fmt.Sprintf("Blank %d: Incorrect", i+1))
		}
	}

	total := len(payload.Blanks)
	switch {
	case exact == total:
		return ComparisonResult{Classification: domain.ClassificationCorrect}
	case exact == 0 && variant == 0:
		return ComparisonResult{Classification: domain.ClassificationIncorrect, Details: details}
	default:
		return ComparisonResult{Classification: domain.ClassificationPartial, Details: details}
	}
}

// matchBlank returns the best match kind across the blank's accepted
// answers, together with the accepted answer that produced it.
func (c *AnswerComparator) matchBlank(blank domain.Blank, submitted string) (MatchKind, string) {
	best := MatchWrong
	bestExpected := ""
	if len(blank.AcceptedAnswers) > 0 {
		bestExpected = blank.AcceptedAnswers[0]
	}

	for _, accepted := range blank.AcceptedAnswers {
		kind := c.morphology.Classify(accepted, submitted)
		if kind == MatchExact && blank.CaseSensitive && strings.TrimSpace(accepted) != strings.TrimSpace(submitted) {
			// Right letters, wrong casing: a slip, not a match.
			kind = MatchSpelling
		}
		if matchRank(kind) > matchRank(best) {
			best = kind
			bestExpected = accepted
		}
		if best == MatchExact {
			break
		}
	}
	return best, bestExpected
}

func matchRank(kind MatchKind) int {
	switch kind {
	case MatchExact:
		return 3
	case MatchGrammaticalVariation:
		return 2
	case MatchSpelling:
		return 1
	default:
		return 0
	}
}

// compareSentenceBuilder compares word sequences positionally. The same
// words in a different order are partial credit; different words are wrong.
func (c *AnswerComparator) compareSentenceBuilder(question *domain.Question, user, correct domain.Answer) ComparisonResult {
	expected := correct.Blanks
	if len(expected) == 0 && question.SentenceBuilder != nil {
		expected = question.SentenceBuilder.Words
	}
	submitted := user.Blanks

	if equalWordSequences(submitted, expected) {
		return ComparisonResult{Classification: domain.ClassificationCorrect}
	}
	if sameWordMultiset(submitted, expected) {
		return ComparisonResult{
			Classification: domain.ClassificationPartial,
			Details:        []string{"Word order: the words are right but the order is not"},
		}
	}
	return ComparisonResult{
		Classification: domain.ClassificationIncorrect,
		Details:        []string{"Incorrect words: the sentence uses different words than expected"},
	}
}

func equalWordSequences(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(strings.TrimSpace(a[i]), strings.TrimSpace(b[i])) {
			return false
		}
	}
	return true
}

func sameWordMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, w := range a {
		counts[strings.ToLower(strings.TrimSpace(w))]++
	}
	for _, w := range b {
		counts[strings.ToLower(strings.TrimSpace(w))]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

// compareDragAndDrop compares the learner's item-to-category placement
// key-by-key against the canonical mapping.
func (c *AnswerComparator) compareDragAndDrop(question *domain.Question, user, correct domain.Answer) ComparisonResult {
	canonical := correct.Placement
	if len(canonical) == 0 && question.DragAndDrop != nil {
		canonical = question.DragAndDrop.Placement
	}
	if len(canonical) == 0 {
		return c.compareExact(user.Text, correct.Text)
	}

	var details []string
	matched := 0
	for item, category := range canonical {
		placed, ok := user.Placement[item]
		if ok && strings.EqualFold(strings.TrimSpace(placed), strings.TrimSpace(category)) {
			matched++
			continue
		}
		details = append(details, fmt.Sprintf("'%s' belongs in '%s'", item, category))
	}

	switch {
	case matched == len(canonical):
		return ComparisonResult{Classification: domain.ClassificationCorrect}
	case matched == 0:
		return ComparisonResult{Classification: domain.ClassificationIncorrect, Details: details}
	default:
		return ComparisonResult{Classification: domain.ClassificationPartial, Details: details}
	}
}

// compareEssay is a structural check only. With no key points supplied the
// essay is ungraded here and treated as correct; real grading belongs to
// the external essay collaborator.
func (c *AnswerComparator) compareEssay(question *domain.Question, user domain.Answer) ComparisonResult {
	payload := question.Essay
	if payload == nil || len(payload.KeyPoints) == 0 {
		return ComparisonResult{Classification: domain.ClassificationCorrect}
	}

	essay := strings.ToLower(user.Text)
	var details []string
	present := 0
	for _, point := range payload.KeyPoints {
		if strings.Contains(essay, strings.ToLower(point)) {
			present++
			continue
		}
		details = append(details, fmt.Sprintf("Missing key point: %s", point))
	}

	switch {
	case present == len(payload.KeyPoints):
		return ComparisonResult{Classification: domain.ClassificationCorrect}
	case present == 0:
		return ComparisonResult{Classification: domain.ClassificationIncorrect, Details: details}
	default:
		return ComparisonResult{Classification: domain.ClassificationPartial, Details: details}
	}
}

package port

import "context"

// EssayGrader is the external essay-grading collaborator. The engine only
// checks essays structurally; a grader, when configured, supplies prose
// commentary on the learner's writing.
type EssayGrader interface {
	GradeEssay(ctx context.Context, prompt string, keyPoints []string, essay string) (string, error)
}

package service

import (
	"context"
	"time"

	"grammarlab/internal/config"
	"grammarlab/internal/domain"
	"grammarlab/internal/dto"
	"grammarlab/internal/engine"
	"grammarlab/internal/logger"
	"grammarlab/internal/port"

	"go.uber.org/zap"
)

// EvaluationService defines the interface for answer evaluation operations
type EvaluationService interface {
	// Evaluate runs the comparison and feedback pipeline for one submission.
	// sessionID identifies the learner session for attempt records and may
	// be empty for anonymous one-off calls.
	Evaluate(ctx context.Context, req *dto.EvaluateRequest, sessionID string) (*dto.EvaluateResponse, error)
}

// evaluationService implements EvaluationService
type evaluationService struct {
	questions   domain.QuestionRepository
	attempts    domain.AttemptRepository
	comparator  *engine.AnswerComparator
	composer    *engine.FeedbackComposer
	essayGrader port.EssayGrader
	engineCfg   config.EngineConfig
}

// NewEvaluationService creates a new instance of evaluationService.
// essayGrader may be nil; essays are then graded structurally only.
func NewEvaluationService(
	questions domain.QuestionRepository,
	attempts domain.AttemptRepository,
	essayGrader port.EssayGrader,
	engineCfg config.EngineConfig,
) EvaluationService {
	return &evaluationService{
		questions:   questions,
		attempts:    attempts,
		comparator:  engine.NewAnswerComparator(),
		composer:    engine.NewFeedbackComposer(),
		essayGrader: essayGrader,
		engineCfg:   engineCfg,
	}
}

// Evaluate implements EvaluationService
func (s *evaluationService) Evaluate(ctx context.Context, req *dto.EvaluateRequest, sessionID string) (*dto.EvaluateResponse, error) {
	question, err := s.questions.GetQuestionByID(req.QuestionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(req.QuestionID)
	}

	userAnswer := answerFromRequest(question, req)
	correctAnswer := question.CorrectAnswer()

	attemptNumber := req.AttemptNumber
	if attemptNumber < 1 {
		attemptNumber = 1
	}

	result := s.comparator.Compare(question, userAnswer, correctAnswer)
	fctx := domain.FeedbackContext{
		Question:      question,
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		AttemptNumber: attemptNumber,
		HintsUsed:     req.HintsUsed,
		TimeSpent:     time.Duration(req.TimeSpentMs) * time.Millisecond,
		Profile:       profileFromDTO(req.Profile),
	}
	feedback := s.composer.Compose(result, fctx, s.feedbackOptions())

	resp := &dto.EvaluateResponse{
		QuestionID:     question.ID,
		Classification: string(feedback.Classification),
		Title:          feedback.Title,
		Message:        feedback.Message,
		Details:        feedback.Details,
		Encouragement:  feedback.Encouragement,
		NextSteps:      feedback.NextSteps,
	}

	if question.Type == domain.QuestionEssay && s.essayGrader != nil && userAnswer.Text != "" {
		keyPoints := []string(nil)
		if question.Essay != nil {
			keyPoints = question.Essay.KeyPoints
		}
		comments, gradeErr := s.essayGrader.GradeEssay(ctx, question.Prompt, keyPoints, userAnswer.Text)
		if gradeErr != nil {
			// Structural feedback already stands on its own.
			logger.Get().Warn("EvaluationService: essay grader unavailable",
				zap.Error(gradeErr),
				zap.String("questionID", question.ID))
		} else {
			resp.EssayComments = comments
		}
	}

	s.recordAttempt(question.ID, sessionID, feedback.Classification, attemptNumber, req)
	return resp, nil
}

// recordAttempt persists the attempt record. Persistence failures are
// logged, not surfaced: the learner still gets their feedback.
func (s *evaluationService) recordAttempt(questionID, sessionID string, classification domain.Classification, attemptNumber int, req *dto.EvaluateRequest) {
	if s.attempts == nil {
		return
	}
	attempt := domain.NewAttempt(
		"",
		questionID,
		sessionID,
		classification,
		attemptNumber,
		req.HintsUsed,
		time.Duration(req.TimeSpentMs)*time.Millisecond,
	)
	if err := s.attempts.SaveAttempt(attempt); err != nil {
		logger.Get().Warn("EvaluationService: failed to save attempt",
			zap.Error(err),
			zap.String("questionID", questionID),
			zap.String("sessionID", sessionID))
	}
}

func (s *evaluationService) feedbackOptions() domain.FeedbackOptions {
	opts := domain.DefaultFeedbackOptions()
	if s.engineCfg.Tone != "" {
		opts.Tone = domain.Tone(s.engineCfg.Tone)
	}
	opts.EnableEncouragement = s.engineCfg.EnableEncouragement
	opts.EnableAdaptive = s.engineCfg.EnableAdaptive
	return opts
}

// answerFromRequest narrows the request's loosely shaped answer fields to
// the shape the question variant expects. Missing answers stay empty and
// classify incorrect downstream.
func answerFromRequest(question *domain.Question, req *dto.EvaluateRequest) domain.Answer {
	switch question.Type {
	case domain.QuestionFillInBlank, domain.QuestionSentenceBuilder:
		if len(req.AnswerList) > 0 {
			return domain.BlanksAnswer(req.AnswerList...)
		}
		if req.Answer != "" {
			return domain.BlanksAnswer(req.Answer)
		}
		return domain.Answer{}
	case domain.QuestionDragAndDrop:
		return domain.PlacementAnswer(req.AnswerMap)
	default:
		return domain.TextAnswer(req.Answer)
	}
}

func profileFromDTO(p *dto.LearnerProfile) *domain.LearnerProfile {
	if p == nil {
		return nil
	}
	profile := &domain.LearnerProfile{
		HintVerbosity:  p.HintVerbosity,
		SuccessRate:    p.SuccessRate,
		RecentMistakes: p.RecentMistakes,
	}
	for _, c := range p.StrongCategories {
		profile.StrongCategories = append(profile.StrongCategories, domain.HintCategory(c))
	}
	for _, c := range p.WeakCategories {
		profile.WeakCategories = append(profile.WeakCategories, domain.HintCategory(c))
	}
	return profile
}

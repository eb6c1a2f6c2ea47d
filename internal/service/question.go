package service

import (
	"grammarlab/internal/domain"
)

// QuestionService exposes read access to the question bank.
type QuestionService interface {
	GetQuestion(id string) (*domain.Question, error)

	// GetRandomQuestion picks a random question, optionally filtered by type.
	GetRandomQuestion(qType domain.QuestionType) (*domain.Question, error)
}

type questionService struct {
	questions domain.QuestionRepository
}

// NewQuestionService creates a new instance of questionService.
func NewQuestionService(questions domain.QuestionRepository) QuestionService {
	return &questionService{questions: questions}
}

// GetQuestion implements QuestionService
func (s *questionService) GetQuestion(id string) (*domain.Question, error) {
	question, err := s.questions.GetQuestionByID(id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	return question, nil
}

// GetRandomQuestion implements QuestionService
func (s *questionService) GetRandomQuestion(qType domain.QuestionType) (*domain.Question, error) {
	question, err := s.questions.GetRandomQuestion(qType)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get random question", err)
	}
	if question == nil {
		return nil, domain.NewNotFoundError("No questions available")
	}
	return question, nil
}

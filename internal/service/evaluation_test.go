package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"grammarlab/internal/config"
	"grammarlab/internal/domain"
	"grammarlab/internal/dto"
	"grammarlab/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "development"}); err != nil {
		panic(err)
	}
	code := m.Run()
	logger.Sync()
	os.Exit(code)
}

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		MaxHints:            3,
		Tone:                "encouraging",
		EnableEncouragement: false,
		EnableAdaptive:      true,
	}
}

func multipleChoiceQuestion() *domain.Question {
	q := domain.NewQuestion("Q1", domain.QuestionMultipleChoice, "Choose the correct verb form.")
	q.MultipleChoice = &domain.MultipleChoicePayload{
		Options:       []string{"go", "goes", "going"},
		CorrectOption: "goes",
	}
	return q
}

func TestEvaluationService_Evaluate_Correct(t *testing.T) {
	mockQuestions := new(MockQuestionRepository)
	mockAttempts := new(MockAttemptRepository)
	mockQuestions.On("GetQuestionByID", "Q1").Return(multipleChoiceQuestion(), nil)
	mockAttempts.On("SaveAttempt", mock.AnythingOfType("*domain.Attempt")).Return(nil)

	svc := NewEvaluationService(mockQuestions, mockAttempts, nil, testEngineConfig())
	resp, err := svc.Evaluate(context.Background(), &dto.EvaluateRequest{
		QuestionID:    "Q1",
		Answer:        "goes",
		AttemptNumber: 1,
	}, "session-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.ClassificationCorrect), resp.Classification)
	assert.Equal(t, "Perfect!", resp.Title)
	assert.Empty(t, resp.Details)
	mockAttempts.AssertExpectations(t)
}

func TestEvaluationService_Evaluate_WrongSecondAttempt(t *testing.T) {
	mockQuestions := new(MockQuestionRepository)
	mockAttempts := new(MockAttemptRepository)
	mockQuestions.On("GetQuestionByID", "Q1").Return(multipleChoiceQuestion(), nil)
	mockAttempts.On("SaveAttempt", mock.AnythingOfType("*domain.Attempt")).Return(nil)

	svc := NewEvaluationService(mockQuestions, mockAttempts, nil, testEngineConfig())
	resp, err := svc.Evaluate(context.Background(), &dto.EvaluateRequest{
		QuestionID:    "Q1",
		Answer:        "going",
		AttemptNumber: 2,
	}, "session-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.ClassificationIncorrect), resp.Classification)
	assert.Equal(t, "Not quite right", resp.Title)
	assert.Contains(t, resp.Message, "Consider using a hint")
}

func TestEvaluationService_Evaluate_QuestionNotFound(t *testing.T) {
	mockQuestions := new(MockQuestionRepository)
	mockQuestions.On("GetQuestionByID", "missing").Return(nil, nil)

	svc := NewEvaluationService(mockQuestions, nil, nil, testEngineConfig())
	_, err := svc.Evaluate(context.Background(), &dto.EvaluateRequest{QuestionID: "missing", Answer: "x"}, "")

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeQuestionNotFound, domainErr.Code)
}

func TestEvaluationService_Evaluate_RepositoryError(t *testing.T) {
	mockQuestions := new(MockQuestionRepository)
	mockQuestions.On("GetQuestionByID", "Q1").Return(nil, fmt.Errorf("db down"))

	svc := NewEvaluationService(mockQuestions, nil, nil, testEngineConfig())
	_, err := svc.Evaluate(context.Background(), &dto.EvaluateRequest{QuestionID: "Q1", Answer: "x"}, "")

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestEvaluationService_Evaluate_AttemptSaveFailureIsNonFatal(t *testing.T) {
	mockQuestions := new(MockQuestionRepository)
	mockAttempts := new(MockAttemptRepository)
	mockQuestions.On("GetQuestionByID", "Q1").Return(multipleChoiceQuestion(), nil)
	mockAttempts.On("SaveAttempt", mock.AnythingOfType("*domain.Attempt")).Return(fmt.Errorf("disk full"))

	svc := NewEvaluationService(mockQuestions, mockAttempts, nil, testEngineConfig())
	resp, err := svc.Evaluate(context.Background(), &dto.EvaluateRequest{
		QuestionID: "Q1",
		Answer:     "goes",
	}, "session-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.ClassificationCorrect), resp.Classification)
}

func TestEvaluationService_Evaluate_FillInBlankPartial(t *testing.T) {
	q := domain.NewQuestion("Q2", domain.QuestionFillInBlank, "Fill in the blanks.")
	q.FillInBlank = &domain.FillInBlankPayload{
		Template: "She ___ to school and ___ lunch.",
		Blanks: []domain.Blank{
			{AcceptedAnswers: []string{"goes"}},
			{AcceptedAnswers: []string{"eats"}},
		},
	}
	mockQuestions := new(MockQuestionRepository)
	mockAttempts := new(MockAttemptRepository)
	mockQuestions.On("GetQuestionByID", "Q2").Return(q, nil)
	mockAttempts.On("SaveAttempt", mock.AnythingOfType("*domain.Attempt")).Return(nil)

	svc := NewEvaluationService(mockQuestions, mockAttempts, nil, testEngineConfig())
	resp, err := svc.Evaluate(context.Background(), &dto.EvaluateRequest{
		QuestionID: "Q2",
		AnswerList: []string{"goes", "runs"},
	}, "session-1")

	require.NoError(t, err)
	assert.Equal(t, string(domain.ClassificationPartial), resp.Classification)
	assert.Equal(t, "Almost there!", resp.Title)
	assert.Contains(t, resp.Message, "50%")
	require.Len(t, resp.Details, 1)
	assert.Contains(t, resp.Details[0], "Blank 2")
}

func TestEvaluationService_Evaluate_EssayWithGrader(t *testing.T) {
	q := domain.NewQuestion("Q3", domain.QuestionEssay, "Describe your weekend.")
	q.Essay = &domain.EssayPayload{KeyPoints: []string{"weekend"}, MinWords: 3}

	mockQuestions := new(MockQuestionRepository)
	mockAttempts := new(MockAttemptRepository)
	mockGrader := new(MockEssayGrader)
	mockQuestions.On("GetQuestionByID", "Q3").Return(q, nil)
	mockAttempts.On("SaveAttempt", mock.AnythingOfType("*domain.Attempt")).Return(nil)
	mockGrader.On("GradeEssay", mock.Anything, q.Prompt, q.Essay.KeyPoints, mock.AnythingOfType("string")).
		Return("Good coverage of the weekend topic.", nil)

	svc := NewEvaluationService(mockQuestions, mockAttempts, mockGrader, testEngineConfig())
	resp, err := svc.Evaluate(context.Background(), &dto.EvaluateRequest{
		QuestionID: "Q3",
		Answer:     "My weekend was relaxing and fun.",
	}, "session-1")

	require.NoError(t, err)
	assert.Equal(t, "Good coverage of the weekend topic.", resp.EssayComments)
	mockGrader.AssertExpectations(t)
}

func TestEvaluationService_Evaluate_EssayGraderFailureIsNonFatal(t *testing.T) {
	q := domain.NewQuestion("Q3", domain.QuestionEssay, "Describe your weekend.")
	q.Essay = &domain.EssayPayload{KeyPoints: []string{"weekend"}}

	mockQuestions := new(MockQuestionRepository)
	mockAttempts := new(MockAttemptRepository)
	mockGrader := new(MockEssayGrader)
	mockQuestions.On("GetQuestionByID", "Q3").Return(q, nil)
	mockAttempts.On("SaveAttempt", mock.AnythingOfType("*domain.Attempt")).Return(nil)
	mockGrader.On("GradeEssay", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("ollama unreachable"))

	svc := NewEvaluationService(mockQuestions, mockAttempts, mockGrader, testEngineConfig())
	resp, err := svc.Evaluate(context.Background(), &dto.EvaluateRequest{
		QuestionID: "Q3",
		Answer:     "It was a quiet weekend at home.",
	}, "session-1")

	require.NoError(t, err)
	assert.Empty(t, resp.EssayComments)
	assert.NotEmpty(t, resp.Title)
}

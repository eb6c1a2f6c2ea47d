package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"grammarlab/internal/config"
	"grammarlab/internal/domain"
	"grammarlab/internal/dto"
	"grammarlab/internal/logger"
	"grammarlab/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validULID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "development"}); err != nil {
		log.Fatalf("Failed to initialize logger for handler tests: %v", err)
	}
	exitCode := m.Run()
	logger.Sync()
	os.Exit(exitCode)
}

// MockEvaluationService is a mock implementation of service.EvaluationService
type MockEvaluationService struct {
	mock.Mock
}

func (m *MockEvaluationService) Evaluate(ctx context.Context, req *dto.EvaluateRequest, sessionID string) (*dto.EvaluateResponse, error) {
	args := m.Called(ctx, req, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EvaluateResponse), args.Error(1)
}

// MockHintService is a mock implementation of service.HintService
type MockHintService struct {
	mock.Mock
}

func (m *MockHintService) StartSession(ctx context.Context, req *dto.StartHintSessionRequest) (*dto.HintSessionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HintSessionResponse), args.Error(1)
}

func (m *MockHintService) NextHint(ctx context.Context, sessionID string) (*dto.HintResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HintResponse), args.Error(1)
}

// MockQuestionService is a mock implementation of service.QuestionService
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) GetQuestion(id string) (*domain.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionService) GetRandomQuestion(qType domain.QuestionType) (*domain.Question, error) {
	args := m.Called(qType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
}

func TestEvaluationHandler_Evaluate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app := newTestApp()
		mockService := new(MockEvaluationService)
		handler := NewEvaluationHandler(mockService)
		app.Post("/api/evaluate", handler.Evaluate)

		mockService.On("Evaluate", mock.Anything, mock.AnythingOfType("*dto.EvaluateRequest"), "").
			Return(&dto.EvaluateResponse{
				QuestionID:     validULID,
				Classification: "correct",
				Title:          "Perfect!",
			}, nil).Once()

		payload, _ := json.Marshal(dto.EvaluateRequest{QuestionID: validULID, Answer: "goes"})
		req := httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.EvaluateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Perfect!", body.Title)
		mockService.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		app := newTestApp()
		handler := NewEvaluationHandler(new(MockEvaluationService))
		app.Post("/api/evaluate", handler.Evaluate)

		payload, _ := json.Marshal(dto.EvaluateRequest{QuestionID: "bad-id", Answer: "goes"})
		req := httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("question not found", func(t *testing.T) {
		app := newTestApp()
		mockService := new(MockEvaluationService)
		handler := NewEvaluationHandler(mockService)
		app.Post("/api/evaluate", handler.Evaluate)

		mockService.On("Evaluate", mock.Anything, mock.Anything, "").
			Return(nil, domain.NewQuestionNotFoundError(validULID)).Once()

		payload, _ := json.Marshal(dto.EvaluateRequest{QuestionID: validULID, Answer: "goes"})
		req := httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHintHandler_StartSession(t *testing.T) {
	app := newTestApp()
	mockService := new(MockHintService)
	handler := NewHintHandler(mockService)
	app.Post("/api/sessions", handler.StartSession)

	mockService.On("StartSession", mock.Anything, mock.AnythingOfType("*dto.StartHintSessionRequest")).
		Return(&dto.HintSessionResponse{
			SessionID:  validULID,
			QuestionID: validULID,
			TotalHints: 4,
			MaxHints:   3,
		}, nil).Once()

	payload, _ := json.Marshal(dto.StartHintSessionRequest{QuestionID: validULID})
	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.HintSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.MaxHints)
}

func TestHintHandler_NextHint(t *testing.T) {
	t.Run("reveals hint", func(t *testing.T) {
		app := newTestApp()
		mockService := new(MockHintService)
		handler := NewHintHandler(mockService)
		app.Post("/api/sessions/:id/hints/next", handler.NextHint)

		mockService.On("NextHint", mock.Anything, validULID).
			Return(&dto.HintResponse{
				SessionID: validULID,
				Hint:      &dto.Hint{Content: "Look at the subject.", Category: "strategy", RevealPercent: 50},
				Remaining: 2,
			}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+validULID+"/hints/next", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.HintResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotNil(t, body.Hint)
		assert.Equal(t, "Look at the subject.", body.Hint.Content)
	})

	t.Run("unknown session", func(t *testing.T) {
		app := newTestApp()
		mockService := new(MockHintService)
		handler := NewHintHandler(mockService)
		app.Post("/api/sessions/:id/hints/next", handler.NextHint)

		mockService.On("NextHint", mock.Anything, validULID).
			Return(nil, domain.NewSessionNotFoundError(validULID)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+validULID+"/hints/next", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed session id", func(t *testing.T) {
		app := newTestApp()
		handler := NewHintHandler(new(MockHintService))
		app.Post("/api/sessions/:id/hints/next", handler.NextHint)

		req := httptest.NewRequest(http.MethodPost, "/api/sessions/short/hints/next", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestQuestionHandler_GetRandomQuestion(t *testing.T) {
	app := newTestApp()
	mockService := new(MockQuestionService)
	handler := NewQuestionHandler(mockService)
	app.Get("/api/questions/random", handler.GetRandomQuestion)

	q := domain.NewQuestion(validULID, domain.QuestionSentenceBuilder, "Arrange the words.")
	q.SentenceBuilder = &domain.SentenceBuilderPayload{Words: []string{"she", "goes", "home"}}
	mockService.On("GetRandomQuestion", domain.QuestionSentenceBuilder).Return(q, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/questions/random?type=sentence_builder", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.QuestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	// Alphabetical, not answer order.
	assert.Equal(t, []string{"goes", "home", "she"}, body.Words)
	assert.Empty(t, body.Options)
}

func TestQuestionHandler_GetQuestion_HidesAnswers(t *testing.T) {
	app := newTestApp()
	mockService := new(MockQuestionService)
	handler := NewQuestionHandler(mockService)
	app.Get("/api/questions/:id", handler.GetQuestion)

	q := domain.NewQuestion(validULID, domain.QuestionFillInBlank, "Fill in the blank.")
	q.FillInBlank = &domain.FillInBlankPayload{
		Template: "She ___ to school.",
		Blanks:   []domain.Blank{{AcceptedAnswers: []string{"goes"}}},
	}
	mockService.On("GetQuestion", validULID).Return(q, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/questions/"+validULID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "goes")

	var body dto.QuestionResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 1, body.BlankCount)
	assert.Equal(t, "She ___ to school.", body.Template)
}

package handler

import (
	"sort"

	"grammarlab/internal/domain"
	"grammarlab/internal/dto"
	"grammarlab/internal/service"
	"grammarlab/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question bank HTTP requests
type QuestionHandler struct {
	service   service.QuestionService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetRandomQuestion godoc
// @Summary Get a random question
// @Description Returns a random question, optionally filtered by type
// @Tags questions
// @Produce json
// @Param type query string false "Question type filter"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/random [get]
func (h *QuestionHandler) GetRandomQuestion(c *fiber.Ctx) error {
	qType := c.Query("type")
	if errs := h.validator.ValidateQuestionType(qType); len(errs) > 0 {
		return errs
	}

	question, err := h.service.GetRandomQuestion(domain.QuestionType(qType))
	if err != nil {
		return err
	}
	return c.JSON(toQuestionResponse(question))
}

// GetQuestion godoc
// @Summary Get a question by ID
// @Description Returns one question without its answer key
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	question, err := h.service.GetQuestion(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(toQuestionResponse(question))
}

// toQuestionResponse strips the answer key: the client sees the exercise
// material, never the accepted answers or correct placement.
func toQuestionResponse(q *domain.Question) *dto.QuestionResponse {
	resp := &dto.QuestionResponse{
		ID:         q.ID,
		Type:       string(q.Type),
		Prompt:     q.Prompt,
		Difficulty: q.Difficulty,
		HintCount:  len(q.Hints),
	}

	switch q.Type {
	case domain.QuestionMultipleChoice:
		if q.MultipleChoice != nil {
			resp.Options = q.MultipleChoice.Options
		}
	case domain.QuestionFillInBlank:
		if q.FillInBlank != nil {
			resp.Template = q.FillInBlank.Template
			resp.BlankCount = len(q.FillInBlank.Blanks)
		}
	case domain.QuestionDragAndDrop:
		if q.DragAndDrop != nil {
			resp.Categories = q.DragAndDrop.Categories
			items := make([]string, 0, len(q.DragAndDrop.Placement))
			for item := range q.DragAndDrop.Placement {
				items = append(items, item)
			}
			sort.Strings(items)
			resp.Items = items
		}
	case domain.QuestionSentenceBuilder:
		if q.SentenceBuilder != nil {
			// Presented alphabetically so the answer order is not given away.
			words := append([]string(nil), q.SentenceBuilder.Words...)
			sort.Strings(words)
			resp.Words = words
		}
	}
	return resp
}

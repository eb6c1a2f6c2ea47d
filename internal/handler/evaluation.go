package handler

import (
	"grammarlab/internal/domain"
	"grammarlab/internal/dto"
	"grammarlab/internal/middleware"
	"grammarlab/internal/service"
	"grammarlab/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// EvaluationHandler handles answer evaluation HTTP requests
type EvaluationHandler struct {
	service   service.EvaluationService
	validator *validation.Validator
}

// NewEvaluationHandler creates a new EvaluationHandler instance
func NewEvaluationHandler(service service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Evaluate godoc
// @Summary Evaluate a learner's answer
// @Description Compares the submitted answer against the question and returns structured feedback
// @Tags evaluation
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Answer submission"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /evaluate [post]
func (h *EvaluationHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateEvaluateRequest(&req); len(errs) > 0 {
		return errs
	}

	sessionID, _ := c.Locals(middleware.SessionIDKey).(string)
	resp, err := h.service.Evaluate(c.Context(), &req, sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

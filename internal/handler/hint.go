package handler

import (
	"grammarlab/internal/domain"
	"grammarlab/internal/dto"
	"grammarlab/internal/service"
	"grammarlab/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// HintHandler handles hint session HTTP requests
type HintHandler struct {
	service   service.HintService
	validator *validation.Validator
}

// NewHintHandler creates a new HintHandler instance
func NewHintHandler(service service.HintService) *HintHandler {
	return &HintHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// StartSession godoc
// @Summary Open a hint session
// @Description Builds the hint sequence for a question and returns a session ID plus bearer token
// @Tags hints
// @Accept json
// @Produce json
// @Param request body dto.StartHintSessionRequest true "Session parameters"
// @Success 201 {object} dto.HintSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *HintHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartHintSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateStartHintSessionRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.StartSession(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// NextHint godoc
// @Summary Reveal the next hint
// @Description Advances the session's hint cursor and returns the revealed hint
// @Tags hints
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.HintResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id}/hints/next [post]
// @Security ApiKeyAuth
func (h *HintHandler) NextHint(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.NextHint(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

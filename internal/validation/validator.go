package validation

import (
	"regexp"
	"strings"

	"grammarlab/internal/domain"
	"grammarlab/internal/dto"
)

const (
	maxAnswerLength = 2000
	maxAnswerParts  = 50
	maxHintsPerRun  = 10
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEvaluateRequest validates the answer evaluation request
func (v *Validator) ValidateEvaluateRequest(req *dto.EvaluateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuestionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	} else if !isValidULID(req.QuestionID) {
		errors = append(errors, domain.NewInvalidFormatError("question_id", req.QuestionID))
	}

	if len(req.Answer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", len(req.Answer), 0, maxAnswerLength))
	}
	if len(req.AnswerList) > maxAnswerParts {
		errors = append(errors, domain.NewOutOfRangeError("answer_list", len(req.AnswerList), 0, maxAnswerParts))
	}
	for _, part := range req.AnswerList {
		if len(part) > maxAnswerLength {
			errors = append(errors, domain.NewOutOfRangeError("answer_list", len(part), 0, maxAnswerLength))
			break
		}
	}
	if len(req.AnswerMap) > maxAnswerParts {
		errors = append(errors, domain.NewOutOfRangeError("answer_map", len(req.AnswerMap), 0, maxAnswerParts))
	}

	if req.AttemptNumber < 0 {
		errors = append(errors, domain.NewOutOfRangeError("attempt_number", req.AttemptNumber, 0, 1000))
	}
	if req.HintsUsed < 0 {
		errors = append(errors, domain.NewOutOfRangeError("hints_used", req.HintsUsed, 0, 1000))
	}

	return errors
}

// ValidateStartHintSessionRequest validates the hint session open request
func (v *Validator) ValidateStartHintSessionRequest(req *dto.StartHintSessionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuestionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	} else if !isValidULID(req.QuestionID) {
		errors = append(errors, domain.NewInvalidFormatError("question_id", req.QuestionID))
	}

	if req.MaxHints != nil && (*req.MaxHints < 1 || *req.MaxHints > maxHintsPerRun) {
		errors = append(errors, domain.NewOutOfRangeError("max_hints", *req.MaxHints, 1, maxHintsPerRun))
	}

	return errors
}

// ValidateSessionID validates a hint session path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateQuestionType validates an optional question type filter
func (v *Validator) ValidateQuestionType(qType string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if qType == "" {
		return errors
	}

	for _, known := range domain.KnownQuestionTypes() {
		if domain.QuestionType(qType) == known {
			return errors
		}
	}
	errors = append(errors, domain.NewInvalidFormatError("type", qType))
	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

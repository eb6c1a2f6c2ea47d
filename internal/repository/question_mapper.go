package repository

import (
	"encoding/json"
	"fmt"

	"grammarlab/internal/domain"
	"grammarlab/internal/repository/models"
	"grammarlab/internal/util"
)

// toDomainQuestion converts a DB row into a domain Question, decoding the
// variant payload column according to the type tag.
func toDomainQuestion(m *models.Question) (*domain.Question, error) {
	if m == nil {
		return nil, nil
	}

	q := &domain.Question{
		ID:         m.ID,
		Type:       domain.QuestionType(m.Type),
		Prompt:     m.Prompt,
		Hints:      []string(m.Hints),
		Difficulty: m.Difficulty,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Explanation.Valid {
		q.Explanation = m.Explanation.String
	}

	payload := []byte(m.Payload)
	if len(payload) == 0 {
		return q, nil
	}

	var err error
	switch q.Type {
	case domain.QuestionMultipleChoice:
		err = json.Unmarshal(payload, &q.MultipleChoice)
	case domain.QuestionFillInBlank:
		err = json.Unmarshal(payload, &q.FillInBlank)
	case domain.QuestionDragAndDrop:
		err = json.Unmarshal(payload, &q.DragAndDrop)
	case domain.QuestionSentenceBuilder:
		err = json.Unmarshal(payload, &q.SentenceBuilder)
	case domain.QuestionEssay:
		err = json.Unmarshal(payload, &q.Essay)
	default:
		// Unknown variants stay payload-less; the comparator falls back to
		// exact string comparison for them.
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload for question %s: %w", m.ID, err)
	}
	return q, nil
}

// toModelQuestion converts a domain Question into its DB row, encoding the
// variant payload as JSON.
func toModelQuestion(q *domain.Question) (*models.Question, error) {
	if q == nil {
		return nil, fmt.Errorf("cannot map nil question")
	}

	var payload interface{}
	switch q.Type {
	case domain.QuestionMultipleChoice:
		payload = q.MultipleChoice
	case domain.QuestionFillInBlank:
		payload = q.FillInBlank
	case domain.QuestionDragAndDrop:
		payload = q.DragAndDrop
	case domain.QuestionSentenceBuilder:
		payload = q.SentenceBuilder
	case domain.QuestionEssay:
		payload = q.Essay
	}

	encoded := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload for question %s: %w", q.ID, err)
		}
		encoded = string(data)
	}

	return &models.Question{
		ID:          q.ID,
		Type:        string(q.Type),
		Prompt:      q.Prompt,
		Payload:     encoded,
		Hints:       models.StringSlice(q.Hints),
		Explanation: util.StringToNullString(q.Explanation),
		Difficulty:  q.Difficulty,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}, nil
}

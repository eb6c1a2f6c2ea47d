package repository

import (
	"fmt"
	"time"

	"grammarlab/internal/domain"
	"grammarlab/internal/repository/models"
	"grammarlab/internal/util"

	"github.com/jmoiron/sqlx"
)

// AttemptDatabaseAdapter implements domain.AttemptRepository using sqlx.DB
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAttemptDatabaseAdapter creates a new instance of AttemptDatabaseAdapter
func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

// SaveAttempt implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) SaveAttempt(attempt *domain.Attempt) error {
	if attempt == nil {
		return fmt.Errorf("cannot save nil attempt")
	}
	if err := attempt.Validate(); err != nil {
		return err
	}

	model := &models.Attempt{
		ID:             attempt.ID,
		QuestionID:     attempt.QuestionID,
		SessionID:      attempt.SessionID,
		Classification: string(attempt.Classification),
		AttemptNumber:  attempt.AttemptNumber,
		HintsUsed:      attempt.HintsUsed,
		TimeSpentMs:    attempt.TimeSpent.Milliseconds(),
		AnsweredAt:     attempt.AnsweredAt,
		CreatedAt:      time.Now(),
	}
	if model.ID == "" {
		model.ID = util.NewULID()
	}

	query := `INSERT INTO attempts (
		id, question_id, session_id, classification, attempt_number, hints_used, time_spent_ms, answered_at, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := a.db.Exec(query,
		model.ID,
		model.QuestionID,
		model.SessionID,
		model.Classification,
		model.AttemptNumber,
		model.HintsUsed,
		model.TimeSpentMs,
		model.AnsweredAt,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}

	attempt.ID = model.ID
	return nil
}

// CountAttempts implements domain.AttemptRepository
func (a *AttemptDatabaseAdapter) CountAttempts(sessionID, questionID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM attempts
	WHERE session_id = ? AND question_id = ? AND deleted_at IS NULL`

	err := a.db.Get(&count, query, sessionID, questionID)
	if err != nil {
		return 0, fmt.Errorf("failed to count attempts for session %s: %w", sessionID, err)
	}
	return count, nil
}

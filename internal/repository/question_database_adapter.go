package repository

import (
	"database/sql"
	"fmt"
	"time"

	"grammarlab/internal/domain"
	"grammarlab/internal/repository/models"
	"grammarlab/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question_type, prompt, payload, hints, explanation, difficulty, created_at, updated_at, deleted_at`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// GetQuestionByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetQuestionByID(id string) (*domain.Question, error) {
	var model models.Question
	query := `SELECT ` + questionColumns + `
	FROM questions
	WHERE id = ? AND deleted_at IS NULL`

	err := a.db.Get(&model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	return toDomainQuestion(&model)
}

// GetRandomQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetRandomQuestion(qType domain.QuestionType) (*domain.Question, error) {
	var model models.Question
	var err error

	if qType == "" {
		query := `SELECT ` + questionColumns + `
		FROM questions
		WHERE deleted_at IS NULL
		ORDER BY RANDOM()
		LIMIT 1`
		err = a.db.Get(&model, query)
	} else {
		query := `SELECT ` + questionColumns + `
		FROM questions
		WHERE question_type = ? AND deleted_at IS NULL
		ORDER BY RANDOM()
		LIMIT 1`
		err = a.db.Get(&model, query, string(qType))
	}

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get random question: %w", err)
	}
	return toDomainQuestion(&model)
}

// SaveQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SaveQuestion(question *domain.Question) error {
	model, err := toModelQuestion(question)
	if err != nil {
		return err
	}
	if model.ID == "" {
		model.ID = util.NewULID()
	}
	now := time.Now()
	model.CreatedAt = now
	model.UpdatedAt = now

	query := `INSERT INTO questions (
		id, question_type, prompt, payload, hints, explanation, difficulty, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = a.db.Exec(query,
		model.ID,
		model.Type,
		model.Prompt,
		model.Payload,
		model.Hints,
		model.Explanation,
		model.Difficulty,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = model.ID
	question.CreatedAt = model.CreatedAt
	question.UpdatedAt = model.UpdatedAt
	return nil
}

// CountQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountQuestions() (int, error) {
	var count int
	err := a.db.Get(&count, `SELECT COUNT(*) FROM questions WHERE deleted_at IS NULL`)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

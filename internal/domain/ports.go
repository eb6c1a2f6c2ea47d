package domain

import (
	"context"
	"time"
)

// QuestionRepository defines the interface for question-bank persistence.
type QuestionRepository interface {
	// GetQuestionByID retrieves a question by its ID
	GetQuestionByID(id string) (*Question, error)

	// GetRandomQuestion returns a random question, optionally filtered by type.
	// An empty qType means any type.
	GetRandomQuestion(qType QuestionType) (*Question, error)

	// SaveQuestion persists a new question
	SaveQuestion(question *Question) error

	// CountQuestions returns the number of questions in the bank
	CountQuestions() (int, error)
}

// AttemptRepository defines the interface for attempt-record persistence.
type AttemptRepository interface {
	// SaveAttempt persists one evaluation record
	SaveAttempt(attempt *Attempt) error

	// CountAttempts returns how many attempts a session has made on a question
	CountAttempts(sessionID, questionID string) (int, error)
}

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache defines the interface (port) for caching operations. The Redis
// adapter is the production implementation; an in-memory adapter backs
// cache-less deployments and tests.
type Cache interface {
	// Get retrieves an item from the cache.
	// It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item to the cache, overwriting an existing item if one exists.
	// If expiration is 0, the item is cached indefinitely.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item from the cache.
	// It should not return an error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}

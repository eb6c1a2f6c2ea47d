package domain

import "time"

// Attempt is one persisted evaluation record. The engine itself is
// stateless; the service layer owns attempt persistence.
type Attempt struct {
	ID             string
	QuestionID     string
	SessionID      string
	Classification Classification
	AttemptNumber  int
	HintsUsed      int
	TimeSpent      time.Duration
	AnsweredAt     time.Time
}

// NewAttempt creates an Attempt stamped with the current time.
func NewAttempt(id, questionID, sessionID string, classification Classification, attemptNumber, hintsUsed int, timeSpent time.Duration) *Attempt {
	return &Attempt{
		ID:             id,
		QuestionID:     questionID,
		SessionID:      sessionID,
		Classification: classification,
		AttemptNumber:  attemptNumber,
		HintsUsed:      hintsUsed,
		TimeSpent:      timeSpent,
		AnsweredAt:     time.Now(),
	}
}

// Validate validates the attempt record.
func (a *Attempt) Validate() error {
	if a.QuestionID == "" {
		return NewValidationFailure("question ID is required")
	}
	if a.AttemptNumber < 1 {
		return NewValidationFailure("attempt number must be at least 1")
	}
	if a.HintsUsed < 0 {
		return NewValidationFailure("hints used cannot be negative")
	}
	return nil
}

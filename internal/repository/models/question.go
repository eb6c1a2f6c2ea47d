package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a []string as a JSON text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Question is the DB row for one exercise. The variant payload is stored
// as a JSON text column keyed by Type.
type Question struct {
	ID          string         `db:"id"`
	Type        string         `db:"question_type"`
	Prompt      string         `db:"prompt"`
	Payload     string         `db:"payload"`
	Hints       StringSlice    `db:"hints"`
	Explanation sql.NullString `db:"explanation"`
	Difficulty  int            `db:"difficulty"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   sql.NullTime   `db:"deleted_at"`
}

func (Question) TableName() string {
	return "questions"
}

// Attempt is the DB row for one evaluation record.
type Attempt struct {
	ID             string       `db:"id"`
	QuestionID     string       `db:"question_id"`
	SessionID      string       `db:"session_id"`
	Classification string       `db:"classification"`
	AttemptNumber  int          `db:"attempt_number"`
	HintsUsed      int          `db:"hints_used"`
	TimeSpentMs    int64        `db:"time_spent_ms"`
	AnsweredAt     time.Time    `db:"answered_at"`
	CreatedAt      time.Time    `db:"created_at"`
	DeletedAt      sql.NullTime `db:"deleted_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}

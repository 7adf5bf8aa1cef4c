package database

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CvAnalysis struct {
	ID                uuid.UUID
	UserID            uuid.NullUUID
	JobDescription    string
	MatchScore        int32
	MatchingSkills    json.RawMessage
	MissingSkills     json.RawMessage
	Suggestions       json.RawMessage
	CoverLetterPoints json.RawMessage
	CreatedAt         time.Time
}

type GeneratedDocument struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	AnalysisID uuid.NullUUID
	Kind       string
	ObjectKey  string
	CreatedAt  time.Time
}

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

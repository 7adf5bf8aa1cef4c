package database

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

const createAnalysis = `-- name: CreateAnalysis :one
INSERT INTO cv_analyses (
user_id, job_description, match_score, matching_skills, missing_skills, suggestions, cover_letter_points)
VALUES ( $1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, job_description, match_score, matching_skills, missing_skills, suggestions, cover_letter_points, created_at
`

type CreateAnalysisParams struct {
	UserID            uuid.NullUUID
	JobDescription    string
	MatchScore        int32
	MatchingSkills    json.RawMessage
	MissingSkills     json.RawMessage
	Suggestions       json.RawMessage
	CoverLetterPoints json.RawMessage
}

func (q *Queries) CreateAnalysis(ctx context.Context, arg CreateAnalysisParams) (CvAnalysis, error) {
	row := q.db.QueryRowContext(ctx, createAnalysis,
		arg.UserID,
		arg.JobDescription,
		arg.MatchScore,
		arg.MatchingSkills,
		arg.MissingSkills,
		arg.Suggestions,
		arg.CoverLetterPoints,
	)
	var i CvAnalysis
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.JobDescription,
		&i.MatchScore,
		&i.MatchingSkills,
		&i.MissingSkills,
		&i.Suggestions,
		&i.CoverLetterPoints,
		&i.CreatedAt,
	)
	return i, err
}

const getAnalysis = `-- name: GetAnalysis :one
SELECT id, user_id, job_description, match_score, matching_skills, missing_skills, suggestions, cover_letter_points, created_at FROM cv_analyses WHERE id=$1
`

func (q *Queries) GetAnalysis(ctx context.Context, id uuid.UUID) (CvAnalysis, error) {
	row := q.db.QueryRowContext(ctx, getAnalysis, id)
	var i CvAnalysis
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.JobDescription,
		&i.MatchScore,
		&i.MatchingSkills,
		&i.MissingSkills,
		&i.Suggestions,
		&i.CoverLetterPoints,
		&i.CreatedAt,
	)
	return i, err
}

const listAnalysesByUser = `-- name: ListAnalysesByUser :many
SELECT id, user_id, job_description, match_score, matching_skills, missing_skills, suggestions, cover_letter_points, created_at FROM cv_analyses
WHERE user_id=$1
ORDER BY created_at DESC
LIMIT $2
`

type ListAnalysesByUserParams struct {
	UserID uuid.NullUUID
	Limit  int32
}

func (q *Queries) ListAnalysesByUser(ctx context.Context, arg ListAnalysesByUserParams) ([]CvAnalysis, error) {
	rows, err := q.db.QueryContext(ctx, listAnalysesByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CvAnalysis
	for rows.Next() {
		var i CvAnalysis
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.JobDescription,
			&i.MatchScore,
			&i.MatchingSkills,
			&i.MissingSkills,
			&i.Suggestions,
			&i.CoverLetterPoints,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

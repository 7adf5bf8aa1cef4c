package database

import (
	"context"

	"github.com/google/uuid"
)

const createGeneratedDocument = `-- name: CreateGeneratedDocument :one
INSERT INTO generated_documents (
user_id, analysis_id, kind, object_key)
VALUES ( $1, $2, $3, $4)
RETURNING id, user_id, analysis_id, kind, object_key, created_at
`

type CreateGeneratedDocumentParams struct {
	UserID     uuid.UUID
	AnalysisID uuid.NullUUID
	Kind       string
	ObjectKey  string
}

func (q *Queries) CreateGeneratedDocument(ctx context.Context, arg CreateGeneratedDocumentParams) (GeneratedDocument, error) {
	row := q.db.QueryRowContext(ctx, createGeneratedDocument,
		arg.UserID,
		arg.AnalysisID,
		arg.Kind,
		arg.ObjectKey,
	)
	var i GeneratedDocument
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.AnalysisID,
		&i.Kind,
		&i.ObjectKey,
		&i.CreatedAt,
	)
	return i, err
}

const deleteGeneratedDocument = `-- name: DeleteGeneratedDocument :exec
DELETE FROM generated_documents
WHERE id=$1 AND user_id=$2
`

type DeleteGeneratedDocumentParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) DeleteGeneratedDocument(ctx context.Context, arg DeleteGeneratedDocumentParams) error {
	_, err := q.db.ExecContext(ctx, deleteGeneratedDocument, arg.ID, arg.UserID)
	return err
}

const getGeneratedDocument = `-- name: GetGeneratedDocument :one
SELECT id, user_id, analysis_id, kind, object_key, created_at FROM generated_documents
WHERE id=$1 AND user_id=$2
`

type GetGeneratedDocumentParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) GetGeneratedDocument(ctx context.Context, arg GetGeneratedDocumentParams) (GeneratedDocument, error) {
	row := q.db.QueryRowContext(ctx, getGeneratedDocument, arg.ID, arg.UserID)
	var i GeneratedDocument
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.AnalysisID,
		&i.Kind,
		&i.ObjectKey,
		&i.CreatedAt,
	)
	return i, err
}

const listGeneratedDocumentsByUser = `-- name: ListGeneratedDocumentsByUser :many
SELECT id, user_id, analysis_id, kind, object_key, created_at FROM generated_documents
WHERE user_id=$1
ORDER BY created_at DESC
LIMIT $2
`

type ListGeneratedDocumentsByUserParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListGeneratedDocumentsByUser(ctx context.Context, arg ListGeneratedDocumentsByUserParams) ([]GeneratedDocument, error) {
	rows, err := q.db.QueryContext(ctx, listGeneratedDocumentsByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GeneratedDocument
	for rows.Next() {
		var i GeneratedDocument
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.AnalysisID,
			&i.Kind,
			&i.ObjectKey,
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

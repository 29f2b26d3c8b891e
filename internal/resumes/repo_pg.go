package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-scorer/internal/resume"
)

// PGRepo implements DraftsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new draft.
func (r *PGRepo) Create(ctx context.Context, d Draft) error {
	const query = `
INSERT INTO resume_drafts (
    id,
    owner_id,
    title,
    data,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	data, err := json.Marshal(d.Data)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query, d.ID, d.OwnerID, d.Title, data, d.CreatedAt, d.UpdatedAt)
	return err
}

// Get fetches a draft by id for an owner.
func (r *PGRepo) Get(ctx context.Context, ownerID, id string) (Draft, error) {
	const query = `
SELECT id, owner_id, title, data, created_at, updated_at
FROM resume_drafts
WHERE owner_id = $1 AND id = $2
LIMIT 1`
	d, err := scanDraft(r.DB.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Draft{}, ErrNotFound
		}
		return Draft{}, err
	}
	return d, nil
}

// List lists an owner's drafts ordered by most recent update.
func (r *PGRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]Draft, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, owner_id, title, data, created_at, updated_at
FROM resume_drafts
WHERE owner_id = $1
ORDER BY updated_at DESC, id
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Draft{}
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update replaces the title and data of a draft.
func (r *PGRepo) Update(ctx context.Context, d Draft) error {
	const query = `
UPDATE resume_drafts
SET title = $1, data = $2, updated_at = $3
WHERE owner_id = $4 AND id = $5`
	data, err := json.Marshal(d.Data)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	res, err := r.DB.ExecContext(ctx, query, d.Title, data, d.UpdatedAt, d.OwnerID, d.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a draft.
func (r *PGRepo) Delete(ctx context.Context, ownerID, id string) error {
	const query = `
DELETE FROM resume_drafts
WHERE owner_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDraft(row rowScanner) (Draft, error) {
	var d Draft
	var raw []byte
	if err := row.Scan(&d.ID, &d.OwnerID, &d.Title, &raw, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return Draft{}, err
	}
	var data resume.Resume
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return Draft{}, fmt.Errorf("decode resume %s: %w", d.ID, err)
		}
	}
	d.Data = data.Normalize()
	return d, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ DraftsRepo = (*PGRepo)(nil)

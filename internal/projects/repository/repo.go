package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/rix-app/rix-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Insert persists one project row with the workflow-assigned id. The row is
// never updated in place afterwards.
func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		return fmt.Errorf("project id required")
	}
	if p.OwnerUID == "" {
		return fmt.Errorf("owner uid required")
	}

	resources, err := json.Marshal(p.Resources)
	if err != nil {
		return fmt.Errorf("marshal resources: %w", err)
	}

	const q = `
INSERT INTO projects (id, owner_uid, name, description, kind, resources, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	if _, err := r.db.ExecContext(ctx, q,
		p.ID, p.OwnerUID, p.Name, p.Description, string(p.Kind), resources, p.CreatedAt); err != nil {
		return err
	}
	return nil
}

// ListByOwner returns all projects owned by ownerUID, newest first.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerUID string) ([]domain.Project, error) {
	const q = `
SELECT id, owner_uid, name, description, kind, resources, created_at
FROM projects
WHERE owner_uid = $1
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, ownerUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var (
			p         domain.Project
			kind      string
			resources []byte
		)
		if err := rows.Scan(&p.ID, &p.OwnerUID, &p.Name, &p.Description, &kind, &resources, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Kind = domain.Kind(kind)
		if len(resources) > 0 {
			var res domain.Resources
			if err := json.Unmarshal(resources, &res); err != nil {
				return nil, fmt.Errorf("unmarshal resources for %s: %w", p.ID, err)
			}
			if res.Kind() != "" {
				p.Resources = &res
			}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the row scoped by owner and id. Returns false when no row
// matched.
func (r *ProjectRepository) Delete(ctx context.Context, ownerUID, projectID string) (bool, error) {
	const q = `
DELETE FROM projects
WHERE owner_uid = $1 AND id = $2;
`
	result, err := r.db.ExecContext(ctx, q, ownerUID, projectID)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ExistingIDs reports which of the given project ids still have a row. The
// janitor uses it to tell live objects from leaked ones.
func (r *ProjectRepository) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}

	const q = `SELECT id FROM projects WHERE id = ANY($1);`
	rows, err := r.db.QueryContext(ctx, q, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

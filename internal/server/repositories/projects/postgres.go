package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/dmitrijs2005/projecthub/internal/dbx"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, title, description string) (*models.ProjectSummary, error) {

	query :=
		`INSERT INTO projects (title, description)
		 VALUES ($1, $2)
		 RETURNING id::text, created_at
		 `

	p := &models.ProjectSummary{Title: title, Description: description, TaskIDs: []string{}}
	err := r.db.QueryRowContext(ctx, query, title, description).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query :=
		`SELECT id::text, title, description, created_at FROM projects
		 WHERE id = $1::uuid
		 `

	p := &models.Project{Tasks: []*models.Task{}}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	tasks, err := r.expandTasks(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Tasks = tasks

	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Project, error) {
	query :=
		`SELECT id::text, title, description, created_at FROM projects
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Project{}
	byID := map[string]*models.Project{}

	for rows.Next() {
		p := &models.Project{Tasks: []*models.Task{}}
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query =
		`SELECT pt.project_id::text, t.id::text, t.title, t.description, t.project_id::text, t.created_at
		 FROM project_tasks pt
		 JOIN tasks t ON t.id = pt.task_id
		 ORDER BY pt.position
		 `

	taskRows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var ownerID string
		t := &models.Task{}
		if err := taskRows.Scan(&ownerID, &t.ID, &t.Title, &t.Description, &t.ProjectID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if p, ok := byID[ownerID]; ok {
			p.Tasks = append(p.Tasks, t)
		}
	}
	if err := taskRows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id, title, description string) (*models.ProjectSummary, error) {
	query :=
		`UPDATE projects SET title = $2, description = $3
		 WHERE id = $1::uuid
		 RETURNING id::text, title, description, created_at
		 `

	p := &models.ProjectSummary{}
	err := r.db.QueryRowContext(ctx, query, id, title, description).
		Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	taskIDs, err := r.taskIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	p.TaskIDs = taskIDs

	return p, nil
}

// Delete removes the project row and its membership rows. Owned tasks are
// left in place; removing a project does not cascade to them.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM project_tasks WHERE project_id = $1::uuid`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM projects WHERE id = $1::uuid`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// AppendTask atomically appends taskID to the project's membership list.
// The guarded INSERT touches nothing when the project does not exist, in
// which case common.ErrorNotFound is returned.
func (r *PostgresRepository) AppendTask(ctx context.Context, projectID, taskID string) (*models.ProjectSummary, error) {

	query :=
		`INSERT INTO project_tasks (project_id, task_id)
		 SELECT p.id, $2::uuid FROM projects p WHERE p.id = $1::uuid
		 `

	res, err := r.db.ExecContext(ctx, query, projectID, taskID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}

	query =
		`SELECT id::text, title, description, created_at FROM projects
		 WHERE id = $1::uuid
		 `

	p := &models.ProjectSummary{}
	err = r.db.QueryRowContext(ctx, query, projectID).
		Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	taskIDs, err := r.taskIDs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	p.TaskIDs = taskIDs

	return p, nil
}

func (r *PostgresRepository) taskIDs(ctx context.Context, projectID string) ([]string, error) {
	query :=
		`SELECT task_id::text FROM project_tasks
		 WHERE project_id = $1::uuid
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ids, nil
}

func (r *PostgresRepository) expandTasks(ctx context.Context, projectID string) ([]*models.Task, error) {
	query :=
		`SELECT t.id::text, t.title, t.description, t.project_id::text, t.created_at
		 FROM project_tasks pt
		 JOIN tasks t ON t.id = pt.task_id
		 WHERE pt.project_id = $1::uuid
		 ORDER BY pt.position
		 `

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		t := &models.Task{}
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.ProjectID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tasks, nil
}

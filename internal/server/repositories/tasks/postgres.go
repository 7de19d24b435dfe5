package tasks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/projecthub/internal/dbx"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (title, description, project_id)
		 VALUES ($1, $2, $3::uuid)
		 RETURNING id::text, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.ProjectID).Scan(&task.ID, &task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/projecthub/internal/common"
	"github.com/dmitrijs2005/projecthub/internal/dbx"
	"github.com/dmitrijs2005/projecthub/internal/server/models"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/repomanager"
)

// ProjectService handles project and task operations. Read operations that
// miss return (nil, nil): absence is an expected outcome, not an error.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager) *ProjectService {
	return &ProjectService{db: db, repomanager: m}
}

// CreateProject creates a project with an empty task list.
func (s *ProjectService) CreateProject(ctx context.Context, title, description string) (*models.ProjectSummary, error) {
	repo := s.repomanager.Projects(s.db)

	p, err := repo.Create(ctx, title, description)
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}
	return p, nil
}

// GetProject resolves one project with its task list expanded to full task
// records.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading project: %w", err)
	}
	return p, nil
}

// ListProjects resolves all projects with their task lists expanded.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	list, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return list, nil
}

// UpdateProject replaces the title and description of a project.
func (s *ProjectService) UpdateProject(ctx context.Context, id, title, description string) (*models.ProjectSummary, error) {
	repo := s.repomanager.Projects(s.db)

	p, err := repo.Update(ctx, id, title, description)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating project: %w", err)
	}
	return p, nil
}

// DeleteProject removes a project and its membership list in one
// transaction. The project's tasks are not removed; they keep their
// backlink to the vanished project.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Projects(tx).Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}
	return nil
}

// CreateTask creates a task with its backlink set to projectID and appends
// the new task id to the project's list. The two writes do not share a
// transaction: when the append fails after the insert succeeded, the task
// exists without being listed, and no compensating delete runs. A missing
// project yields (nil, nil) with the task already written.
func (s *ProjectService) CreateTask(ctx context.Context, title, description, projectID string) (*models.ProjectSummary, error) {
	taskRepo := s.repomanager.Tasks(s.db)
	projectRepo := s.repomanager.Projects(s.db)

	task := &models.Task{Title: title, Description: description, ProjectID: projectID}
	task, err := taskRepo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	p, err := projectRepo.AppendTask(ctx, projectID, task.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error appending task to project: %w", err)
	}
	return p, nil
}

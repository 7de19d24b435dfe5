package httpapi

import (
	"context"

	"github.com/dmitrijs2005/projecthub/internal/server/models"
)

// UserService is the slice of the user business logic the handlers need.
type UserService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// ProjectService is the slice of the project/task business logic the
// handlers need. Read and update operations return (nil, nil) when the
// entity does not exist.
type ProjectService interface {
	CreateProject(ctx context.Context, title, description string) (*models.ProjectSummary, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id, title, description string) (*models.ProjectSummary, error)
	DeleteProject(ctx context.Context, id string) error
	CreateTask(ctx context.Context, title, description, projectID string) (*models.ProjectSummary, error)
}

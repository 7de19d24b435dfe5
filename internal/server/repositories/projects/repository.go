// Package projects persists project records and the ordered membership
// list linking each project to its tasks.
package projects

import (
	"context"

	"github.com/dmitrijs2005/projecthub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, title, description string) (*models.ProjectSummary, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, id, title, description string) (*models.ProjectSummary, error)
	Delete(ctx context.Context, id string) error
	AppendTask(ctx context.Context, projectID, taskID string) (*models.ProjectSummary, error)
}

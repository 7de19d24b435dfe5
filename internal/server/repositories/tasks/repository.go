// Package tasks persists task records.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/projecthub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
}

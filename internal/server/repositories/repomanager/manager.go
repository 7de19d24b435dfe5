// Package repomanager vends repository implementations bound to a database
// handle and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/projecthub/internal/dbx"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/projects"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/projecthub/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to the provided DBTX,
// which may be either a plain connection pool or a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Projects(db dbx.DBTX) projects.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}

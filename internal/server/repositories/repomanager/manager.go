package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/printquote/internal/dbx"
	"github.com/dmitrijs2005/printquote/internal/server/repositories/jobs"
)

// RepositoryManager vends repositories bound to a *sql.DB or a transaction,
// so services can run several repositories inside one dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Jobs(db dbx.DBTX) jobs.Repository
}

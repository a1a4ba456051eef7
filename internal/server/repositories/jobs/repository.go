package jobs

import (
	"context"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, job *models.Job) error
	AddFolders(ctx context.Context, jobID string, folders []aggregate.FolderSummary) error
	AddAudit(ctx context.Context, jobID string, audit []aggregate.AuditRecord) error
	SetReportKey(ctx context.Context, jobID, key string) error
	Get(ctx context.Context, jobID string) (*models.Job, error)
	Folders(ctx context.Context, jobID string) ([]aggregate.FolderSummary, error)
	Audit(ctx context.Context, jobID string) ([]aggregate.AuditRecord, error)
}

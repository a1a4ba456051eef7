// Package models holds the quote server's persisted records.
package models

import (
	"time"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
)

// Job is one estimate run. ReportKey is the object-store key of the XLSX
// report, empty until the upload succeeds.
type Job struct {
	ID          string    `db:"id"`
	Client      string    `db:"client"`
	ArchiveName string    `db:"archive_name"`
	Fingerprint string    `db:"fingerprint"`
	ReportKey   string    `db:"report_key"`
	CreatedAt   time.Time `db:"created_at"`

	Folders []aggregate.FolderSummary
	Audit   []aggregate.AuditRecord
}

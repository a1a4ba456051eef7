// Package models holds the CLI's locally persisted records.
package models

import (
	"time"

	"github.com/dmitrijs2005/printquote/internal/materials"
)

// Mode says where an estimate ran.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

// HistoryEntry is one past estimate with its archive-wide totals.
type HistoryEntry struct {
	ID          int64
	ArchiveName string
	Fingerprint string
	Mode        Mode
	JobID       string
	MonoSheets  int
	ColorSheets int
	Materials   materials.Tally
	Files       int
	ReportPath  string
	CreatedAt   time.Time
}

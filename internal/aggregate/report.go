// Package aggregate folds per-file results into per-top-folder summaries and
// keeps the per-file audit trail.
package aggregate

import (
	"github.com/dmitrijs2005/printquote/internal/classify"
	"github.com/dmitrijs2005/printquote/internal/materials"
	"github.com/dmitrijs2005/printquote/internal/printspec"
)

// FolderSummary holds the running totals of one top-level folder.
type FolderSummary struct {
	Folder      string          `json:"folder"`
	MonoSheets  int             `json:"mono_sheets"`
	ColorSheets int             `json:"color_sheets"`
	Materials   materials.Tally `json:"materials"`
	Files       int             `json:"files"`
}

// AuditRecord describes what one file contributed.
type AuditRecord struct {
	Folder     string              `json:"folder"`
	Path       string              `json:"path"`
	Filename   string              `json:"filename"`
	Category   classify.Category   `json:"category"`
	Spec       printspec.PrintSpec `json:"spec"`
	RawCount   int                 `json:"raw_count"`
	FinalCount int                 `json:"final_count"`
	Formula    string              `json:"formula"`
	Materials  materials.Tally     `json:"materials"`
	Note       string              `json:"note,omitempty"`
}

// Report accumulates summaries in first-seen folder order. It only grows.
type Report struct {
	order   []string
	folders map[string]*FolderSummary
	audit   []AuditRecord
}

func NewReport() *Report {
	return &Report{folders: make(map[string]*FolderSummary)}
}

// Restore rebuilds a report from stored summaries and audit records, e.g. a
// job loaded back from the database or received from the quote server.
func Restore(folders []FolderSummary, audit []AuditRecord) *Report {
	r := NewReport()
	for _, f := range folders {
		s := r.summary(f.Folder)
		*s = f
	}
	r.audit = append(r.audit, audit...)
	return r
}

// Accumulate adds one file's sheets and material deltas to its folder.
// Sheets land in the color or monochrome total only for print categories.
func (r *Report) Accumulate(folder string, category classify.Category, sheets int, deltas materials.Tally) {
	s := r.summary(folder)
	s.Files++
	if sheets > 0 {
		switch category {
		case classify.ColorPrint:
			s.ColorSheets += sheets
		case classify.MonochromePrint:
			s.MonoSheets += sheets
		}
	}
	s.Materials.Merge(deltas)
}

// Record appends an audit record.
func (r *Report) Record(rec AuditRecord) {
	r.audit = append(r.audit, rec)
}

// Folders returns copies of the summaries in first-seen order.
func (r *Report) Folders() []FolderSummary {
	out := make([]FolderSummary, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.folders[name])
	}
	return out
}

// Folder returns the summary of one folder.
func (r *Report) Folder(name string) (FolderSummary, bool) {
	s, ok := r.folders[name]
	if !ok {
		return FolderSummary{}, false
	}
	return *s, true
}

// Audit returns the audit records in processing order.
func (r *Report) Audit() []AuditRecord {
	out := make([]AuditRecord, len(r.audit))
	copy(out, r.audit)
	return out
}

// Totals sums every folder into one summary named "total".
func (r *Report) Totals() FolderSummary {
	t := FolderSummary{Folder: "total"}
	for _, name := range r.order {
		s := r.folders[name]
		t.MonoSheets += s.MonoSheets
		t.ColorSheets += s.ColorSheets
		t.Files += s.Files
		t.Materials.Merge(s.Materials)
	}
	return t
}

func (r *Report) summary(folder string) *FolderSummary {
	s, ok := r.folders[folder]
	if !ok {
		s = &FolderSummary{Folder: folder}
		r.folders[folder] = s
		r.order = append(r.order, folder)
	}
	return s
}

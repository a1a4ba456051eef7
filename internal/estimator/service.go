// Package estimator runs the quote pipeline over one archive: page counting
// in parallel, then rule resolution, classification, material accounting and
// aggregation strictly in archive order.
package estimator

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/archive"
	"github.com/dmitrijs2005/printquote/internal/classify"
	"github.com/dmitrijs2005/printquote/internal/hierarchy"
	"github.com/dmitrijs2005/printquote/internal/logging"
	"github.com/dmitrijs2005/printquote/internal/materials"
	"github.com/dmitrijs2005/printquote/internal/printspec"
	"github.com/dmitrijs2005/printquote/internal/rules"
	"github.com/dmitrijs2005/printquote/internal/textx"
)

// Audit notes.
const (
	NoteUnsupported = "unsupported"
	NoteUnreadable  = "unreadable"
	NoteNoPrint     = "no print"
)

// PageCounter is the document backend.
type PageCounter interface {
	Supports(ext string) bool
	Count(data []byte, ext string) (int, error)
}

// Archive is the part of archive.Archive the pipeline needs.
type Archive interface {
	Entries() []archive.Entry
}

// Policy holds the behaviors product owners may want to switch.
type Policy struct {
	// UnitsPerCopy scales binder-part and table-of-contents units by the
	// file's copies instead of counting one unit per file.
	UnitsPerCopy bool
	// SiblingStorageNames lets a sibling folder whose name mentions USB/CD
	// mark files in neighbouring folders as storage media.
	SiblingStorageNames bool
}

func DefaultPolicy() Policy {
	return Policy{UnitsPerCopy: true}
}

type Option func(*Service)

// WithWorkers bounds concurrent page counting. Values below 1 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

func WithPolicy(p Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

type Service struct {
	pages   PageCounter
	log     logging.Logger
	workers int
	policy  Policy
}

func NewService(pages PageCounter, log logging.Logger, opts ...Option) *Service {
	s := &Service{
		pages:   pages,
		log:     log.With("module", "estimator"),
		workers: runtime.GOMAXPROCS(0),
		policy:  DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type pageResult struct {
	raw  int
	note string
}

// Estimate produces the report for one archive. Per-file problems are
// recorded in the audit and never fail the job; only cancellation does.
func (s *Service) Estimate(ctx context.Context, a Archive) (*aggregate.Report, error) {
	var docs []archive.Entry
	var notes []hierarchy.Note
	var paths []string
	for _, e := range a.Entries() {
		paths = append(paths, e.Path)
		if hierarchy.IsNote(e.Name) {
			notes = append(notes, s.readNote(ctx, e))
			continue
		}
		docs = append(docs, e)
	}

	pages, err := s.countPages(ctx, docs)
	if err != nil {
		return nil, err
	}

	var opts []hierarchy.Option
	if s.policy.SiblingStorageNames {
		opts = append(opts, hierarchy.WithSiblingNames(rules.HasStorageMedia))
	}
	ix := hierarchy.NewIndex(paths, notes, opts...)
	reg := materials.NewRegistry()
	report := aggregate.NewReport()

	for i, e := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec := s.process(e, ix.BuildContext(e.Path), pages[i], reg)
		report.Accumulate(rec.Folder, rec.Category, rec.FinalCount, rec.Materials)
		report.Record(rec)

		s.log.Debug(ctx, "file estimated",
			"path", e.Path,
			"category", rec.Category.String(),
			"spec", rec.Spec.String(),
			"raw", rec.RawCount,
			"final", rec.FinalCount,
		)
	}

	totals := report.Totals()
	s.log.Info(ctx, "estimate finished",
		"files", len(docs),
		"notes", len(notes),
		"folders", len(report.Folders()),
		"mono_sheets", totals.MonoSheets,
		"color_sheets", totals.ColorSheets,
	)
	return report, nil
}

func (s *Service) readNote(ctx context.Context, e archive.Entry) hierarchy.Note {
	b, err := e.ReadAll()
	if err != nil {
		s.log.Warn(ctx, "instruction note unreadable", "path", e.Path, "error", err)
		return hierarchy.Note{Path: e.Path}
	}
	return hierarchy.Note{Path: e.Path, Text: textx.Decode(b)}
}

// countPages reads and counts every supported document with at most
// s.workers in flight. Results are indexed like docs.
func (s *Service) countPages(ctx context.Context, docs []archive.Entry) ([]pageResult, error) {
	results := make([]pageResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, e := range docs {
		if !s.pages.Supports(e.Ext) {
			results[i] = pageResult{note: NoteUnsupported}
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.countOne(gctx, e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) countOne(ctx context.Context, e archive.Entry) pageResult {
	data, err := e.ReadAll()
	if err != nil {
		s.log.Warn(ctx, "entry unreadable", "path", e.Path, "error", err)
		return pageResult{note: NoteUnreadable}
	}
	n, err := s.pages.Count(data, e.Ext)
	if err != nil {
		s.log.Warn(ctx, "page count failed", "path", e.Path, "error", err)
		return pageResult{note: NoteUnreadable}
	}
	return pageResult{raw: n}
}

// process resolves one document. It runs sequentially: reg is shared by
// every file of the job.
func (s *Service) process(e archive.Entry, levels []hierarchy.Level, pages pageResult, reg *materials.Registry) aggregate.AuditRecord {
	var own, siblings []hierarchy.Level
	for _, l := range levels {
		if l.Sibling {
			siblings = append(siblings, l)
		} else {
			own = append(own, l)
		}
	}
	texts := hierarchy.Texts(own)

	spec := printspec.Resolve(e.Name, texts)
	category := classify.Classify(e.Name, texts)
	if category.IsPrint() && len(siblings) > 0 && classify.HasStorageMedia("", hierarchy.Texts(siblings)) {
		category = classify.SkipStorageMedia
	}

	rec := aggregate.AuditRecord{
		Folder:   e.TopFolder(),
		Path:     e.Path,
		Filename: e.Name,
		Category: category,
		Spec:     spec,
		RawCount: pages.raw,
		Formula:  printspec.Formula(pages.raw, spec),
	}
	var notes []string
	if pages.note != "" {
		notes = append(notes, pages.note)
	}
	if spec.Suppressed {
		notes = append(notes, NoteNoPrint)
	}
	rec.Note = strings.Join(notes, "; ")

	if category.IsPrint() {
		rec.FinalCount = printspec.ComputeSheets(pages.raw, spec)
	}
	if !spec.Suppressed {
		units := 1
		if s.policy.UnitsPerCopy {
			units = max(spec.Copies, 1)
		}
		switch category {
		case classify.BinderPart:
			rec.Materials.Add(materials.BinderPart, units)
		case classify.TableOfContents:
			rec.Materials.Add(materials.TOCUnit, units)
		}
	}

	fileLevel := materials.Level{Scope: hierarchy.Dir(e.Path), Text: e.Name}
	mine := materialLevels(fileLevel, own)
	withSiblings := materialLevels(fileLevel, levels)

	for _, kind := range materials.KeywordKinds {
		lv := mine
		if kind == materials.StorageMedia {
			lv = withSiblings
		}
		res := materials.Resolve(lv, kind)
		if res.Mode == materials.Each && !eachQualifies(kind, category, pages, spec) {
			continue
		}
		rec.Materials.Add(kind, materials.Apply(res, spec.Copies, reg))
	}
	return rec
}

// eachQualifies decides which files an Each quantity applies to. USB/CD
// quantities follow the files copied to the medium; sleeves, dividers and
// binders follow printed documents of a supported type. Suppressed files
// never qualify.
func eachQualifies(kind materials.Kind, category classify.Category, pages pageResult, spec printspec.PrintSpec) bool {
	if spec.Suppressed {
		return false
	}
	if kind == materials.StorageMedia {
		return category == classify.SkipStorageMedia
	}
	return category.IsPrint() && pages.note != NoteUnsupported
}

func materialLevels(file materials.Level, levels []hierarchy.Level) []materials.Level {
	out := make([]materials.Level, 0, 1+len(levels))
	out = append(out, file)
	for _, l := range levels {
		out = append(out, materials.Level{Scope: l.Folder, Text: l.Text})
	}
	return out
}

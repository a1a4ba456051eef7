// Package export renders an estimate report for the print shop. Korean
// display labels live here and nowhere else.
package export

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/classify"
	"github.com/dmitrijs2005/printquote/internal/materials"
)

// Exporter turns a report into a file.
type Exporter interface {
	Format() string
	Export(r *aggregate.Report) ([]byte, error)
}

// Registry looks exporters up by format name ("csv", "xlsx").
type Registry struct {
	byFormat map[string]Exporter
}

func NewRegistry(exporters ...Exporter) *Registry {
	r := &Registry{byFormat: make(map[string]Exporter)}
	for _, e := range exporters {
		r.Register(e)
	}
	return r
}

// Default has every built-in exporter registered.
func Default() *Registry {
	return NewRegistry(NewCSV(), NewXLSX())
}

func (r *Registry) Register(e Exporter) {
	r.byFormat[e.Format()] = e
}

func (r *Registry) Get(format string) (Exporter, bool) {
	e, ok := r.byFormat[format]
	return e, ok
}

// Export renders r with the exporter registered for format.
func (r *Registry) Export(format string, rep *aggregate.Report) ([]byte, error) {
	e, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("unknown report format %q", format)
	}
	return e.Export(rep)
}

// Formats lists the registered formats in sorted order.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// TotalLabel names the archive-wide row of the summary table.
const TotalLabel = "합계"

var categoryLabels = map[classify.Category]string{
	classify.MonochromePrint:  "흑백",
	classify.ColorPrint:       "컬러",
	classify.BinderPart:       "표지/측면",
	classify.TableOfContents:  "목차",
	classify.SkipStorageMedia: "USB/CD 제외",
}

// CategoryLabel is the display name of a category.
func CategoryLabel(c classify.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return c.String()
}

// SummaryHeader is the header row of the per-folder table.
func SummaryHeader() []string {
	h := []string{"폴더", "흑백", "컬러"}
	for _, k := range materials.Kinds {
		h = append(h, k.Label())
	}
	return append(h, "파일수")
}

// SummaryRows returns one row per folder followed by the total row.
func SummaryRows(r *aggregate.Report) [][]string {
	folders := r.Folders()
	rows := make([][]string, 0, len(folders)+1)
	for _, f := range folders {
		rows = append(rows, summaryRow(f.Folder, f))
	}
	return append(rows, summaryRow(TotalLabel, r.Totals()))
}

func summaryRow(name string, f aggregate.FolderSummary) []string {
	row := []string{name, strconv.Itoa(f.MonoSheets), strconv.Itoa(f.ColorSheets)}
	for _, k := range materials.Kinds {
		row = append(row, strconv.Itoa(f.Materials.Get(k)))
	}
	return append(row, strconv.Itoa(f.Files))
}

// AuditHeader is the header row of the per-file table.
func AuditHeader() []string {
	return []string{"폴더", "경로", "파일명", "분류", "인쇄설정", "원본페이지", "최종매수", "계산식", "자재", "비고"}
}

func AuditRows(r *aggregate.Report) [][]string {
	audit := r.Audit()
	rows := make([][]string, 0, len(audit))
	for _, a := range audit {
		rows = append(rows, []string{
			a.Folder,
			a.Path,
			a.Filename,
			CategoryLabel(a.Category),
			a.Spec.String(),
			strconv.Itoa(a.RawCount),
			strconv.Itoa(a.FinalCount),
			a.Formula,
			MaterialsLabel(a.Materials),
			a.Note,
		})
	}
	return rows
}

// MaterialsLabel renders a tally with display labels, e.g. "비닐 2, 목차 3".
func MaterialsLabel(t materials.Tally) string {
	s := ""
	for _, k := range materials.Kinds {
		n := t.Get(k)
		if n == 0 {
			continue
		}
		if s != "" {
			s += ", "
		}
		s += k.Label() + " " + strconv.Itoa(n)
	}
	return s
}

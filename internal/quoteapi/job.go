// Package quoteapi maps estimate results to and from the protobuf messages
// exchanged by the printquote CLI and the quote server.
package quoteapi

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/classify"
	"github.com/dmitrijs2005/printquote/internal/materials"
	"github.com/dmitrijs2005/printquote/internal/printspec"
	pb "github.com/dmitrijs2005/printquote/internal/proto"
)

// Job is one finished estimate as stored by the server. ReportURL is a
// time-limited download link and may be empty when the report upload failed.
type Job struct {
	ID          string
	Client      string
	ArchiveName string
	Fingerprint string
	CreatedAt   time.Time
	Folders     []aggregate.FolderSummary
	Audit       []aggregate.AuditRecord
	ReportURL   string
}

// Report rebuilds the aggregate report so a received job renders exactly
// like a local estimate.
func (j *Job) Report() *aggregate.Report {
	return aggregate.Restore(j.Folders, j.Audit)
}

// EncodeJob converts a job to its wire form.
func EncodeJob(j *Job) *pb.Job {
	if j == nil {
		return nil
	}
	out := &pb.Job{
		Id:          j.ID,
		Client:      j.Client,
		ArchiveName: j.ArchiveName,
		Fingerprint: j.Fingerprint,
		ReportUrl:   j.ReportURL,
	}
	if !j.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(j.CreatedAt)
	}
	for _, f := range j.Folders {
		out.Folders = append(out.Folders, &pb.FolderSummary{
			Folder:      f.Folder,
			MonoSheets:  int32(f.MonoSheets),
			ColorSheets: int32(f.ColorSheets),
			Materials:   encodeTally(f.Materials),
			Files:       int32(f.Files),
		})
	}
	for _, r := range j.Audit {
		out.Audit = append(out.Audit, &pb.AuditRecord{
			Folder:   r.Folder,
			Path:     r.Path,
			Filename: r.Filename,
			Category: r.Category.String(),
			Spec: &pb.PrintSpec{
				LayoutDivisor: int32(r.Spec.LayoutDivisor),
				Copies:        int32(r.Spec.Copies),
				Color:         r.Spec.Color,
				Duplex:        r.Spec.Duplex,
				Suppressed:    r.Spec.Suppressed,
			},
			RawCount:   int32(r.RawCount),
			FinalCount: int32(r.FinalCount),
			Formula:    r.Formula,
			Materials:  encodeTally(r.Materials),
			Note:       r.Note,
		})
	}
	return out
}

// DecodeJob converts a received job back. Unknown category or material
// names are an error rather than a silently wrong quote.
func DecodeJob(in *pb.Job) (*Job, error) {
	if in == nil {
		return nil, errors.New("empty job")
	}
	j := &Job{
		ID:          in.GetId(),
		Client:      in.GetClient(),
		ArchiveName: in.GetArchiveName(),
		Fingerprint: in.GetFingerprint(),
		ReportURL:   in.GetReportUrl(),
	}
	if in.GetCreatedAt() != nil {
		j.CreatedAt = in.GetCreatedAt().AsTime()
	}
	for _, f := range in.GetFolders() {
		t, err := decodeTally(f.GetMaterials())
		if err != nil {
			return nil, fmt.Errorf("folder %s: %w", f.GetFolder(), err)
		}
		j.Folders = append(j.Folders, aggregate.FolderSummary{
			Folder:      f.GetFolder(),
			MonoSheets:  int(f.GetMonoSheets()),
			ColorSheets: int(f.GetColorSheets()),
			Materials:   t,
			Files:       int(f.GetFiles()),
		})
	}
	for _, r := range in.GetAudit() {
		cat, ok := classify.ParseCategory(r.GetCategory())
		if !ok {
			return nil, fmt.Errorf("%s: unknown category %q", r.GetPath(), r.GetCategory())
		}
		t, err := decodeTally(r.GetMaterials())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.GetPath(), err)
		}
		spec := r.GetSpec()
		j.Audit = append(j.Audit, aggregate.AuditRecord{
			Folder:   r.GetFolder(),
			Path:     r.GetPath(),
			Filename: r.GetFilename(),
			Category: cat,
			Spec: printspec.PrintSpec{
				LayoutDivisor: int(spec.GetLayoutDivisor()),
				Copies:        int(spec.GetCopies()),
				Color:         spec.GetColor(),
				Duplex:        spec.GetDuplex(),
				Suppressed:    spec.GetSuppressed(),
			},
			RawCount:   int(r.GetRawCount()),
			FinalCount: int(r.GetFinalCount()),
			Formula:    r.GetFormula(),
			Materials:  t,
			Note:       r.GetNote(),
		})
	}
	return j, nil
}

func encodeTally(t materials.Tally) []*pb.MaterialCount {
	var out []*pb.MaterialCount
	for _, k := range materials.Kinds {
		if n := t.Get(k); n > 0 {
			out = append(out, &pb.MaterialCount{Kind: k.String(), Count: int32(n)})
		}
	}
	return out
}

func decodeTally(in []*pb.MaterialCount) (materials.Tally, error) {
	var t materials.Tally
	for _, c := range in {
		k, ok := materials.ParseKind(c.GetKind())
		if !ok {
			return t, fmt.Errorf("unknown material kind %q", c.GetKind())
		}
		t.Add(k, int(c.GetCount()))
	}
	return t, nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/archive"
	"github.com/dmitrijs2005/printquote/internal/client/models"
	"github.com/dmitrijs2005/printquote/internal/common"
	"github.com/dmitrijs2005/printquote/internal/estimator"
	"github.com/dmitrijs2005/printquote/internal/filex"
	"github.com/dmitrijs2005/printquote/internal/quoteapi"
)

var errNoServer = errors.New("fetching a job needs a quote server address (-a)")

// Archives above this size go to the object store instead of inline.
var inlineArchiveBytes = 32 << 20

func (a *App) estimate(ctx context.Context) error {
	data, err := os.ReadFile(a.config.Archive)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrArchiveOpen, err)
	}
	name := filepath.Base(a.config.Archive)
	fp := archive.Fingerprint(data)

	a.warnIfSeen(ctx, fp)

	entry := &models.HistoryEntry{ArchiveName: name, Fingerprint: fp, Mode: models.ModeLocal}

	var (
		rep       *aggregate.Report
		reportURL string
	)
	if a.quotes != nil {
		job, err := a.estimateRemote(ctx, name, data)
		if err != nil {
			return err
		}
		rep = job.Report()
		reportURL = job.ReportURL
		entry.Mode = models.ModeRemote
		entry.JobID = job.ID
	} else {
		rep, err = a.estimateLocal(ctx, data)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(a.out, "%s (%s, %d files)\n", name, humanize.Bytes(uint64(len(data))), rep.Totals().Files)
	a.printSummary(rep)
	if reportURL != "" {
		fmt.Fprintf(a.out, "report: %s\n", reportURL)
	}

	entry.ReportPath, err = a.writeReport(rep)
	if err != nil {
		return err
	}

	a.record(ctx, entry, rep)
	return nil
}

func (a *App) estimateLocal(ctx context.Context, data []byte) (*aggregate.Report, error) {
	arc, err := archive.OpenBytes(data, archive.Options{MaxEntryBytes: a.config.MaxEntryBytes})
	if err != nil {
		return nil, err
	}
	defer arc.Close()

	policy := estimator.DefaultPolicy()
	policy.SiblingStorageNames = a.config.SiblingStorage

	svc := estimator.NewService(a.pages, a.logger,
		estimator.WithWorkers(a.config.Workers),
		estimator.WithPolicy(policy),
	)
	return svc.Estimate(ctx, arc)
}

func (a *App) estimateRemote(ctx context.Context, name string, data []byte) (*quoteapi.Job, error) {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if len(data) <= inlineArchiveBytes {
		job, err := a.quotes.Estimate(ctx, name, data, a.config.SiblingStorage)
		if err != nil {
			return nil, fmt.Errorf("remote estimate: %w", err)
		}
		return job, nil
	}

	key, err := a.quotes.Upload(ctx, data)
	if err != nil {
		return nil, err
	}
	a.logger.Debug(ctx, "archive uploaded", "key", key, "bytes", len(data))

	job, err := a.quotes.EstimateObject(ctx, name, key, a.config.SiblingStorage)
	if err != nil {
		return nil, fmt.Errorf("remote estimate: %w", err)
	}
	return job, nil
}

func (a *App) fetchJob(ctx context.Context) error {
	if a.quotes == nil {
		return errNoServer
	}

	rctx, cancel := a.requestContext(ctx)
	defer cancel()

	job, err := a.quotes.GetJob(rctx, a.config.JobID)
	if err != nil {
		return fmt.Errorf("get job %s: %w", a.config.JobID, err)
	}

	rep := job.Report()
	fmt.Fprintf(a.out, "%s (job %s, %s)\n", job.ArchiveName, job.ID, humanize.Time(job.CreatedAt))
	a.printSummary(rep)
	if job.ReportURL != "" {
		fmt.Fprintf(a.out, "report: %s\n", job.ReportURL)
	}

	_, err = a.writeReport(rep)
	return err
}

func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

// writeReport exports rep to the configured output path. The extension picks
// the format. It returns the absolute path written, or "" without -o.
func (a *App) writeReport(rep *aggregate.Report) (string, error) {
	if a.config.Output == "" {
		return "", nil
	}

	b, err := a.exporters.Export(filex.Ext(a.config.Output), rep)
	if err != nil {
		return "", err
	}
	if err := filex.WriteFileAtomic(a.config.Output, b); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	p, err := filepath.Abs(a.config.Output)
	if err != nil {
		p = a.config.Output
	}
	fmt.Fprintf(a.out, "saved %s (%s)\n", p, humanize.Bytes(uint64(len(b))))
	return p, nil
}

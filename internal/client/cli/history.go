package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/client/models"
	"github.com/dmitrijs2005/printquote/internal/export"
)

// warnIfSeen logs when the same archive bytes were estimated before.
func (a *App) warnIfSeen(ctx context.Context, fingerprint string) {
	prev, err := a.history.LastByFingerprint(ctx, fingerprint)
	if err != nil {
		a.logger.Warn(ctx, "history lookup failed", "error", err)
		return
	}
	if prev == nil {
		return
	}
	a.logger.Warn(ctx, "archive was estimated before",
		"archive", prev.ArchiveName,
		"when", prev.CreatedAt.Format(time.RFC3339),
		"mode", string(prev.Mode),
		"job_id", prev.JobID,
	)
}

// record stores the archive totals. A failure here does not fail the estimate.
func (a *App) record(ctx context.Context, e *models.HistoryEntry, rep *aggregate.Report) {
	t := rep.Totals()
	e.MonoSheets = t.MonoSheets
	e.ColorSheets = t.ColorSheets
	e.Materials = t.Materials
	e.Files = t.Files
	e.CreatedAt = a.now().UTC()

	if err := a.history.Add(ctx, e); err != nil {
		a.logger.Warn(ctx, "history not recorded", "error", err)
	}
}

func historyHeader() []string {
	return []string{"#", "when", "archive", "mode", "mono", "color", "materials", "files", "job"}
}

func (a *App) listHistory(ctx context.Context) error {
	entries, err := a.history.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		when := e.CreatedAt.Format(time.RFC3339)
		if a.styled {
			when = humanize.Time(e.CreatedAt)
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			when,
			e.ArchiveName,
			string(e.Mode),
			strconv.Itoa(e.MonoSheets),
			strconv.Itoa(e.ColorSheets),
			export.MaterialsLabel(e.Materials),
			strconv.Itoa(e.Files),
			e.JobID,
		})
	}

	a.printTable(historyHeader(), rows)
	return nil
}

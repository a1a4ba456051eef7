// Package services holds the quote server's business logic: estimating an
// uploaded archive, persisting the job and publishing its report.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/archive"
	"github.com/dmitrijs2005/printquote/internal/common"
	"github.com/dmitrijs2005/printquote/internal/dbx"
	"github.com/dmitrijs2005/printquote/internal/estimator"
	"github.com/dmitrijs2005/printquote/internal/export"
	"github.com/dmitrijs2005/printquote/internal/logging"
	sc "github.com/dmitrijs2005/printquote/internal/server/config"
	"github.com/dmitrijs2005/printquote/internal/server/models"
	"github.com/dmitrijs2005/printquote/internal/server/repositories/repomanager"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	// ArchiveContentType must be sent with uploads to a presigned URL.
	ArchiveContentType = "application/zip"
	uploadPrefix       = "uploads/"
)

// ObjectStore is the part of storage.S3Store the service uses.
type ObjectStore interface {
	Get(ctx context.Context, key string, maxBytes int64) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (string, error)
}

// Upload is a slot in the object store the client may PUT an archive into.
type Upload struct {
	ObjectKey string
	URL       string
}

// EstimateInput is one estimate request. Exactly one of Archive and
// ObjectKey should be set.
type EstimateInput struct {
	Client         string
	ArchiveName    string
	Archive        []byte
	ObjectKey      string
	SiblingStorage bool
}

// Quote is a persisted job plus a fresh report link. ReportURL is empty when
// the report could not be published.
type Quote struct {
	Job       *models.Job
	ReportURL string
}

var newJobID = func() string { return uuid.NewString() }

type QuoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       ObjectStore
	pages       estimator.PageCounter
	report      export.Exporter
	config      *sc.Config
	logger      logging.Logger
}

// NewQuoteService wires the service. store may be nil, in which case only
// inline archives are accepted and no report links are produced.
func NewQuoteService(db *sql.DB, rm repomanager.RepositoryManager, store ObjectStore, pages estimator.PageCounter,
	config *sc.Config, l logging.Logger) *QuoteService {
	return &QuoteService{
		db:          db,
		repomanager: rm,
		store:       store,
		pages:       pages,
		report:      export.NewXLSX(),
		config:      config,
		logger:      l.With("module", "quote_service"),
	}
}

// Estimate runs the pipeline over the archive and stores the result. Only a
// missing, oversized or unreadable archive and database failures are errors;
// per-file problems end up in the audit.
func (s *QuoteService) Estimate(ctx context.Context, in EstimateInput) (*Quote, error) {
	data, err := s.loadArchive(ctx, in)
	if err != nil {
		return nil, err
	}

	a, err := archive.OpenBytes(data, archive.Options{})
	if err != nil {
		return nil, err
	}
	defer a.Close()

	policy := estimator.DefaultPolicy()
	policy.SiblingStorageNames = in.SiblingStorage
	est := estimator.NewService(s.pages, s.logger,
		estimator.WithWorkers(s.config.Workers),
		estimator.WithPolicy(policy),
	)
	rep, err := est.Estimate(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	job := &models.Job{
		ID:          newJobID(),
		Client:      in.Client,
		ArchiveName: in.ArchiveName,
		Fingerprint: archive.Fingerprint(data),
		Folders:     rep.Folders(),
		Audit:       rep.Audit(),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Jobs(tx)
		if err := repo.Create(ctx, job); err != nil {
			return err
		}
		if err := repo.AddFolders(ctx, job.ID, job.Folders); err != nil {
			return err
		}
		return repo.AddAudit(ctx, job.ID, job.Audit)
	})
	if err != nil {
		return nil, fmt.Errorf("store job: %w", err)
	}

	s.logger.Info(ctx, "job stored", "job", job.ID, "client", job.Client, "archive", job.ArchiveName, "files", len(job.Audit))

	return &Quote{Job: job, ReportURL: s.publishReport(ctx, job, rep)}, nil
}

// GetJob reloads a stored job with its summaries and audit trail.
func (s *QuoteService) GetJob(ctx context.Context, jobID string) (*Quote, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, fmt.Errorf("job %q: %w", jobID, common.ErrorNotFound)
	}

	repo := s.repomanager.Jobs(s.db)

	job, err := repo.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Folders, err = repo.Folders(ctx, jobID); err != nil {
		return nil, err
	}
	if job.Audit, err = repo.Audit(ctx, jobID); err != nil {
		return nil, err
	}

	q := &Quote{Job: job}
	if job.ReportKey != "" && s.store != nil {
		url, err := s.store.PresignGet(ctx, job.ReportKey, s.config.ReportLinkValidityDuration)
		if err != nil {
			s.logger.Warn(ctx, "report link failed", "job", job.ID, "error", err)
		}
		q.ReportURL = url
	}
	return q, nil
}

// UploadURL hands out a fresh upload key and a presigned PUT URL for it, so
// archives too large for a request can go straight to the object store.
func (s *QuoteService) UploadURL(ctx context.Context) (*Upload, error) {
	if s.store == nil {
		return nil, common.ErrNoObjectStore
	}

	d := time.Now().UTC()
	key := fmt.Sprintf("%s%d/%02d/%02d/%s.zip", uploadPrefix, d.Year(), d.Month(), d.Day(), newJobID())

	url, err := s.store.PresignPut(ctx, key, ArchiveContentType, s.config.ReportLinkValidityDuration)
	if err != nil {
		return nil, err
	}
	return &Upload{ObjectKey: key, URL: url}, nil
}

func (s *QuoteService) loadArchive(ctx context.Context, in EstimateInput) ([]byte, error) {
	switch {
	case len(in.Archive) > 0:
		if int64(len(in.Archive)) > s.config.MaxArchiveBytes {
			return nil, common.ErrArchiveTooLarge
		}
		return in.Archive, nil
	case in.ObjectKey != "":
		if s.store == nil {
			return nil, fmt.Errorf("%w: %w", common.ErrNoObjectStore, common.ErrNoArchive)
		}
		if !strings.HasPrefix(in.ObjectKey, uploadPrefix) {
			return nil, fmt.Errorf("object key %q: %w", in.ObjectKey, common.ErrNoArchive)
		}
		return s.store.Get(ctx, in.ObjectKey, s.config.MaxArchiveBytes)
	default:
		return nil, common.ErrNoArchive
	}
}

// publishReport uploads the XLSX report and returns a download link. Any
// failure is logged and yields "": the estimate itself is already stored.
func (s *QuoteService) publishReport(ctx context.Context, job *models.Job, rep *aggregate.Report) string {
	if s.store == nil {
		return ""
	}

	data, err := s.report.Export(rep)
	if err != nil {
		s.logger.Warn(ctx, "report export failed", "job", job.ID, "error", err)
		return ""
	}

	key := reportKey(job)
	if err := s.store.Put(ctx, key, data, xlsxContentType); err != nil {
		s.logger.Warn(ctx, "report upload failed", "job", job.ID, "error", err)
		return ""
	}
	if err := s.repomanager.Jobs(s.db).SetReportKey(ctx, job.ID, key); err != nil {
		s.logger.Warn(ctx, "report key not saved", "job", job.ID, "error", err)
		return ""
	}
	job.ReportKey = key

	url, err := s.store.PresignGet(ctx, key, s.config.ReportLinkValidityDuration)
	if err != nil {
		s.logger.Warn(ctx, "report link failed", "job", job.ID, "error", err)
		return ""
	}
	return url
}

func reportKey(job *models.Job) string {
	d := job.CreatedAt
	if d.IsZero() {
		d = time.Now()
	}
	return fmt.Sprintf("reports/%d/%02d/%02d/%s.xlsx", d.Year(), d.Month(), d.Day(), job.ID)
}

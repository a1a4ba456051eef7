// Package jobs persists finished estimates: the job row, its per-folder
// summaries and its per-file audit trail.
package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/printquote/internal/aggregate"
	"github.com/dmitrijs2005/printquote/internal/common"
	"github.com/dmitrijs2005/printquote/internal/dbx"
	"github.com/dmitrijs2005/printquote/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the job row and fills job.CreatedAt from the database clock.
func (r *PostgresRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (id, client, archive_name, fingerprint, report_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, job.ID, job.Client, job.ArchiveName, job.Fingerprint, job.ReportKey).
		Scan(&job.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// AddFolders stores the summaries in report order.
func (r *PostgresRepository) AddFolders(ctx context.Context, jobID string, folders []aggregate.FolderSummary) error {
	query := `
		INSERT INTO job_folders (job_id, position, folder, mono_sheets, color_sheets, materials, files)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, f := range folders {
		mat, err := json.Marshal(f.Materials)
		if err != nil {
			return fmt.Errorf("encode materials: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, jobID, i, f.Folder, f.MonoSheets, f.ColorSheets, mat, f.Files); err != nil {
			return fmt.Errorf("insert folder %q: %w", f.Folder, err)
		}
	}
	return nil
}

// AddAudit stores the audit records in processing order.
func (r *PostgresRepository) AddAudit(ctx context.Context, jobID string, audit []aggregate.AuditRecord) error {
	query := `
		INSERT INTO job_audit (job_id, position, folder, path, filename, category, spec,
			raw_count, final_count, formula, materials, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	for i, a := range audit {
		spec, err := json.Marshal(a.Spec)
		if err != nil {
			return fmt.Errorf("encode spec: %w", err)
		}
		mat, err := json.Marshal(a.Materials)
		if err != nil {
			return fmt.Errorf("encode materials: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, jobID, i, a.Folder, a.Path, a.Filename, a.Category.String(), spec,
			a.RawCount, a.FinalCount, a.Formula, mat, a.Note); err != nil {
			return fmt.Errorf("insert audit %q: %w", a.Path, err)
		}
	}
	return nil
}

func (r *PostgresRepository) SetReportKey(ctx context.Context, jobID, key string) error {
	return dbx.ExecOne(ctx, r.db, `UPDATE jobs SET report_key = $2 WHERE id = $1`, jobID, key)
}

// Get loads the job row only; Folders and Audit stay nil.
func (r *PostgresRepository) Get(ctx context.Context, jobID string) (*models.Job, error) {
	query := `SELECT id, client, archive_name, fingerprint, report_key, created_at FROM jobs WHERE id = $1`

	var j models.Job
	err := r.db.QueryRowContext(ctx, query, jobID).
		Scan(&j.ID, &j.Client, &j.ArchiveName, &j.Fingerprint, &j.ReportKey, &j.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select job: %w", err)
	}
	return &j, nil
}

func (r *PostgresRepository) Folders(ctx context.Context, jobID string) ([]aggregate.FolderSummary, error) {
	query := `
		SELECT folder, mono_sheets, color_sheets, materials, files
		FROM job_folders WHERE job_id = $1 ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("select folders: %w", err)
	}
	defer rows.Close()

	var result []aggregate.FolderSummary
	for rows.Next() {
		var (
			f   aggregate.FolderSummary
			mat []byte
		)
		if err := rows.Scan(&f.Folder, &f.MonoSheets, &f.ColorSheets, &mat, &f.Files); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(mat, &f.Materials); err != nil {
			return nil, fmt.Errorf("decode materials of %q: %w", f.Folder, err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Audit(ctx context.Context, jobID string) ([]aggregate.AuditRecord, error) {
	query := `
		SELECT folder, path, filename, category, spec, raw_count, final_count, formula, materials, note
		FROM job_audit WHERE job_id = $1 ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("select audit: %w", err)
	}
	defer rows.Close()

	var result []aggregate.AuditRecord
	for rows.Next() {
		var (
			a         aggregate.AuditRecord
			category  string
			spec, mat []byte
		)
		if err := rows.Scan(&a.Folder, &a.Path, &a.Filename, &category, &spec,
			&a.RawCount, &a.FinalCount, &a.Formula, &mat, &a.Note); err != nil {
			return nil, err
		}
		if err := a.Category.UnmarshalText([]byte(category)); err != nil {
			return nil, fmt.Errorf("decode audit %q: %w", a.Path, err)
		}
		if err := json.Unmarshal(spec, &a.Spec); err != nil {
			return nil, fmt.Errorf("decode spec of %q: %w", a.Path, err)
		}
		if err := json.Unmarshal(mat, &a.Materials); err != nil {
			return nil, fmt.Errorf("decode materials of %q: %w", a.Path, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

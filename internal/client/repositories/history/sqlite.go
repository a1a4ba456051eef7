// Package history stores past estimates in the CLI's SQLite database.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/printquote/internal/client/models"
	"github.com/dmitrijs2005/printquote/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const columns = `id, archive_name, fingerprint, mode, job_id, mono_sheets, color_sheets, materials, files, report_path, created_at`

// Add inserts e and sets e.ID.
func (r *SQLiteRepository) Add(ctx context.Context, e *models.HistoryEntry) error {
	mat, err := json.Marshal(e.Materials)
	if err != nil {
		return fmt.Errorf("failed to encode materials: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO history (archive_name, fingerprint, mode, job_id, mono_sheets, color_sheets, materials, files, report_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ArchiveName, e.Fingerprint, string(e.Mode), e.JobID, e.MonoSheets, e.ColorSheets, string(mat), e.Files, e.ReportPath, e.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert history: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get history id: %w", err)
	}
	e.ID = id
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM history ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var result []models.HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history rows: %w", err)
	}
	return result, nil
}

// LastByFingerprint returns the newest estimate of the same archive contents,
// or (nil, nil) when there is none.
func (r *SQLiteRepository) LastByFingerprint(ctx context.Context, fingerprint string) (*models.HistoryEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM history WHERE fingerprint = ? ORDER BY created_at DESC, id DESC LIMIT 1`, fingerprint)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.HistoryEntry, error) {
	var (
		e    models.HistoryEntry
		mode string
		mat  string
	)
	if err := s.Scan(&e.ID, &e.ArchiveName, &e.Fingerprint, &mode, &e.JobID, &e.MonoSheets, &e.ColorSheets,
		&mat, &e.Files, &e.ReportPath, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan history row: %w", err)
	}
	e.Mode = models.Mode(mode)
	if err := json.Unmarshal([]byte(mat), &e.Materials); err != nil {
		return nil, fmt.Errorf("failed to decode materials of history %d: %w", e.ID, err)
	}
	return &e, nil
}

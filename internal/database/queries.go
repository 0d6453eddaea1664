package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zapponejosh/calendrical/internal/geometry"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if no format matches.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// MarshalCodes encodes a code sequence the way it is stored and matched.
func MarshalCodes(codes []int) (string, error) {
	if codes == nil {
		codes = []int{}
	}
	b, err := json.Marshal(codes)
	if err != nil {
		return "", fmt.Errorf("marshal codes: %w", err)
	}
	return string(b), nil
}

// UnmarshalCodes decodes a stored code sequence.
func UnmarshalCodes(s string) ([]int, error) {
	var codes []int
	if err := json.Unmarshal([]byte(s), &codes); err != nil {
		return nil, fmt.Errorf("unmarshal codes: %w", err)
	}
	return codes, nil
}

const analysisColumns = `
	id, codes, successful, form_a, form_b, form_r,
	steps, terminal, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (*Analysis, error) {
	var (
		rec                    Analysis
		codes, steps, terminal string
		createdAt, updatedAt   string
		formA, formB, formR    sql.NullInt64
	)

	if err := row.Scan(
		&rec.ID, &codes, &rec.Successful, &formA, &formB, &formR,
		&steps, &terminal, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if rec.Codes, err = UnmarshalCodes(codes); err != nil {
		return nil, err
	}
	if rec.Terminal, err = UnmarshalCodes(terminal); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(steps), &rec.Steps); err != nil {
		return nil, fmt.Errorf("unmarshal steps: %w", err)
	}
	if formA.Valid && formB.Valid && formR.Valid {
		rec.Form = &Form{A: int(formA.Int64), B: int(formB.Int64), R: int(formR.Int64)}
	}
	rec.CreatedAt = parseTimestamp(createdAt)
	rec.UpdatedAt = parseTimestamp(updatedAt)

	return &rec, nil
}

// =============================================================================
// Analysis Queries
// =============================================================================

// SaveAnalysis stores rec, replacing any analysis of the same codes, and sets
// rec.ID. created reports whether a new row was inserted.
func (db *DB) SaveAnalysis(ctx context.Context, rec *Analysis) (created bool, err error) {
	err = db.WithTx(ctx, func(tx *Tx) error {
		created, err = tx.SaveAnalysis(ctx, rec)
		return err
	})
	if err != nil {
		return false, err
	}

	db.logger.Debug("analysis saved",
		"id", rec.ID,
		"created", created,
		"successful", rec.Successful,
	)
	return created, nil
}

// SaveAnalysis is DB.SaveAnalysis within the transaction.
func (tx *Tx) SaveAnalysis(ctx context.Context, rec *Analysis) (created bool, err error) {
	return saveAnalysis(ctx, tx, rec)
}

func saveAnalysis(ctx context.Context, q querier, rec *Analysis) (bool, error) {
	codes, err := MarshalCodes(rec.Codes)
	if err != nil {
		return false, err
	}
	terminal, err := MarshalCodes(rec.Terminal)
	if err != nil {
		return false, err
	}
	steps := rec.Steps
	if steps == nil {
		steps = []geometry.TroeschMap{}
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return false, fmt.Errorf("marshal steps: %w", err)
	}

	var formA, formB, formR sql.NullInt64
	if rec.Form != nil {
		formA = sql.NullInt64{Int64: int64(rec.Form.A), Valid: true}
		formB = sql.NullInt64{Int64: int64(rec.Form.B), Valid: true}
		formR = sql.NullInt64{Int64: int64(rec.Form.R), Valid: true}
	}

	var existing int64
	err = q.QueryRowContext(ctx, "SELECT id FROM analyses WHERE codes = ?", codes).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := q.ExecContext(ctx, `
			INSERT INTO analyses (codes, successful, form_a, form_b, form_r, steps, terminal)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, codes, rec.Successful, formA, formB, formR, string(stepsJSON), terminal)
		if err != nil {
			return false, fmt.Errorf("insert analysis: %w", err)
		}
		if rec.ID, err = res.LastInsertId(); err != nil {
			return false, fmt.Errorf("get analysis id: %w", err)
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("query analysis by codes: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		UPDATE analyses
		SET successful = ?, form_a = ?, form_b = ?, form_r = ?,
		    steps = ?, terminal = ?, updated_at = datetime('now')
		WHERE id = ?
	`, rec.Successful, formA, formB, formR, string(stepsJSON), terminal, existing)
	if err != nil {
		return false, fmt.Errorf("update analysis %d: %w", existing, err)
	}
	rec.ID = existing
	return false, nil
}

// GetAnalysis retrieves an analysis by id.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) GetAnalysis(ctx context.Context, id int64) (*Analysis, error) {
	row := db.QueryRowContext(ctx, "SELECT"+analysisColumns+" FROM analyses WHERE id = ?", id)
	rec, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query analysis %d: %w", id, err)
	}
	return rec, nil
}

// GetAnalysisByCodes retrieves the analysis of codes.
// Returns ErrNotFound if the sequence was never analysed.
func (db *DB) GetAnalysisByCodes(ctx context.Context, codes []int) (*Analysis, error) {
	key, err := MarshalCodes(codes)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, "SELECT"+analysisColumns+" FROM analyses WHERE codes = ?", key)
	rec, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query analysis by codes: %w", err)
	}
	return rec, nil
}

// ListAnalyses returns analyses newest first. Returns an empty slice when
// there are none.
func (db *DB) ListAnalyses(ctx context.Context, limit, offset int) ([]Analysis, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT"+analysisColumns+" FROM analyses ORDER BY id DESC LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []Analysis{}
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		analyses = append(analyses, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}

	return analyses, nil
}

// CountAnalyses returns the number of stored analyses.
func (db *DB) CountAnalyses(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM analyses").Scan(&n); err != nil {
		return 0, fmt.Errorf("count analyses: %w", err)
	}
	return n, nil
}

// DeleteAnalysis removes an analysis.
// Returns ErrNotFound if it doesn't exist.
func (db *DB) DeleteAnalysis(ctx context.Context, id int64) error {
	res, err := db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete analysis %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	db.logger.Debug("analysis deleted", "id", id)
	return nil
}

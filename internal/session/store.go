package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"splice/internal/config"
	"splice/internal/transcript"
)

// createdAtLayout is fixed-width so the TEXT column sorts chronologically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNoResult indicates the store holds no merge result yet.
var ErrNoResult = errors.New("no merged transcription available")

// ErrLocked indicates another process holds the session store lock.
var ErrLocked = errors.New("session store is in use by another splice process")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS merge_results (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    format TEXT NOT NULL,
    file_count INTEGER NOT NULL,
    segment_count INTEGER NOT NULL,
    content TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_merge_results_created_at
    ON merge_results (created_at DESC);
`

// Result is one stored merge outcome.
type Result struct {
	ID           string
	CreatedAt    time.Time
	Format       transcript.Format
	FileCount    int
	SegmentCount int
	Content      string
}

// Store manages merge result persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the session database under the data
// directory. The accompanying file lock is held until Close; a second
// process opening the store concurrently fails fast instead of racing.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "session.db")
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("session store at %s: %w", dbPath, ErrLocked)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, lock: lock, path: dbPath}, nil
}

// Close releases the database connection and the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Save records a merge result and returns the stored row.
func (s *Store) Save(ctx context.Context, format transcript.Format, fileCount, segmentCount int, content string) (*Result, error) {
	result := &Result{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Format:       format,
		FileCount:    fileCount,
		SegmentCount: segmentCount,
		Content:      content,
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO merge_results (id, created_at, format, file_count, segment_count, content)
         VALUES (?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.CreatedAt.Format(createdAtLayout),
		string(result.Format),
		result.FileCount,
		result.SegmentCount,
		result.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("insert merge result: %w", err)
	}
	return result, nil
}

// Latest returns the most recently stored merge result, or ErrNoResult
// when nothing has been merged yet.
func (s *Store) Latest(ctx context.Context) (*Result, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, created_at, format, file_count, segment_count, content
         FROM merge_results ORDER BY created_at DESC LIMIT 1`,
	)
	result, err := scanResult(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoResult
	}
	if err != nil {
		return nil, fmt.Errorf("load latest merge result: %w", err)
	}
	return result, nil
}

// History returns stored merge results, newest first, up to limit rows.
// A non-positive limit returns everything.
func (s *Store) History(ctx context.Context, limit int) ([]*Result, error) {
	query := `SELECT id, created_at, format, file_count, segment_count, content
              FROM merge_results ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query merge history: %w", err)
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		result, err := scanResult(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan merge result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate merge history: %w", err)
	}
	return results, nil
}

func scanResult(scan func(dest ...any) error) (*Result, error) {
	var (
		result    Result
		createdAt string
		format    string
	)
	if err := scan(&result.ID, &createdAt, &format, &result.FileCount, &result.SegmentCount, &result.Content); err != nil {
		return nil, err
	}

	parsed, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	result.CreatedAt = parsed
	result.Format = transcript.Format(format)
	return &result, nil
}

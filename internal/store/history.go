package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry records one pipeline run and the artifacts it produced.
type Entry struct {
	ID             uuid.UUID
	AudioPath      string
	TranscriptPath string
	SummaryPath    string
	WordCount      int
	SpeakerCount   int
	CreatedAt      time.Time
}

// History is a SQLite-backed index of pipeline runs, surfaced by the
// "history" command.
type History struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the history database at path.
func Open(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		audio_path TEXT NOT NULL,
		transcript_path TEXT NOT NULL,
		summary_path TEXT,
		word_count INTEGER NOT NULL,
		speaker_count INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the underlying database.
func (h *History) Close() error {
	return h.db.Close()
}

// Add inserts a run. A zero ID or CreatedAt is filled in.
func (h *History) Add(e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := h.db.Exec(`
	INSERT INTO runs (id, audio_path, transcript_path, summary_path, word_count, speaker_count, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.AudioPath, e.TranscriptPath, e.SummaryPath,
		e.WordCount, e.SpeakerCount, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving history entry: %w", err)
	}
	return nil
}

// List returns up to limit runs, newest first.
func (h *History) List(limit int) ([]Entry, error) {
	rows, err := h.db.Query(`
	SELECT id, audio_path, transcript_path, summary_path, word_count, speaker_count, created_at
	FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Get returns the run with the given id.
func (h *History) Get(id uuid.UUID) (*Entry, error) {
	row := h.db.QueryRow(`
	SELECT id, audio_path, transcript_path, summary_path, word_count, speaker_count, created_at
	FROM runs WHERE id = ?`, id.String())
	return scanEntry(row.Scan)
}

func scanEntry(scan func(dest ...any) error) (*Entry, error) {
	var (
		e       Entry
		idStr   string
		summary sql.NullString
	)
	if err := scan(&idStr, &e.AudioPath, &e.TranscriptPath, &summary,
		&e.WordCount, &e.SpeakerCount, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("reading history entry: %w", err)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("reading history entry: %w", err)
	}
	e.ID = id
	e.SummaryPath = summary.String
	return &e, nil
}

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/capworks/captrack/internal/models"
	"github.com/capworks/captrack/internal/normalize"
)

// SQLiteStore keeps each weekly entry as a JSON payload row. Entries are
// documents with nested matters and leave grids; the relational part of the
// schema is just the key and the update stamp, which is all the queries need.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	employee_name TEXT NOT NULL,
	week_date     TEXT NOT NULL,
	payload       TEXT NOT NULL,
	last_updated  TEXT NOT NULL,
	PRIMARY KEY (employee_name, week_date)
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed settings and sample entries if this is a fresh database.
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
		for _, entry := range SeedEntries() {
			if err := s.writeEntry(entry); err != nil {
				return fmt.Errorf("failed to seed entries: %w", err)
			}
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'captrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = 'team'").Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return Settings{}, fmt.Errorf("settings not found")
		}
		return Settings{}, err
	}

	var settings Settings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO settings (key, value) VALUES ('team', ?)",
		string(value),
	)
	return err
}

func (s *SQLiteStore) UpsertEntry(entry models.WeeklyEntry) error {
	if entry.EmployeeName == "" || entry.WeekDate == "" {
		return fmt.Errorf("entry needs an employee name and a week date")
	}

	entry.LastUpdated = time.Now()
	entry = normalize.Entry(entry)
	return s.writeEntry(entry)
}

func (s *SQLiteStore) writeEntry(entry models.WeeklyEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to serialize entry: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO entries (employee_name, week_date, payload, last_updated)
		VALUES (?, ?, ?, ?)`,
		entry.EmployeeName, entry.WeekDate, string(payload),
		entry.LastUpdated.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) GetEntry(key string) (models.WeeklyEntry, error) {
	entries, err := s.GetAllEntries()
	if err != nil {
		return models.WeeklyEntry{}, err
	}
	entry, ok := entries[key]
	if !ok {
		return models.WeeklyEntry{}, fmt.Errorf("entry not found: %s", key)
	}
	return entry, nil
}

func (s *SQLiteStore) GetAllEntries() (map[string]models.WeeklyEntry, error) {
	rows, err := s.db.Query("SELECT payload FROM entries")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make(map[string]models.WeeklyEntry)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		var entry models.WeeklyEntry
		if err := json.Unmarshal([]byte(payload), &entry); err != nil {
			// A single corrupt row is dropped rather than failing the
			// whole load.
			continue
		}
		entry = normalize.Entry(entry)
		entries[entry.Key()] = entry
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

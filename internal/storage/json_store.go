package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/capworks/captrack/internal/models"
	"github.com/capworks/captrack/internal/normalize"
)

type Store struct {
	Version  int                           `json:"version"`
	Settings Settings                      `json:"settings"`
	Entries  map[string]models.WeeklyEntry `json:"entries"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Entries:  SeedEntries(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'captrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// An unreadable file falls back to the seed dataset rather than
		// locking everyone out. The broken payload stays on disk until the
		// next save.
		s.store = &Store{
			Version:  1,
			Settings: DefaultSettings(),
			Entries:  SeedEntries(),
		}
		return nil
	}

	if s.store.Entries == nil {
		s.store.Entries = make(map[string]models.WeeklyEntry)
	}
	// Old payloads are brought up to canonical shape on every load.
	s.store.Entries = normalize.DB(s.store.Entries)

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings.Clone(), nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) UpsertEntry(entry models.WeeklyEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if entry.EmployeeName == "" || entry.WeekDate == "" {
		return fmt.Errorf("entry needs an employee name and a week date")
	}

	entry.LastUpdated = time.Now()
	entry = normalize.Entry(entry)
	s.store.Entries[entry.Key()] = entry.Clone()
	return s.save()
}

func (s *JSONStore) GetEntry(key string) (models.WeeklyEntry, error) {
	if s.store == nil {
		return models.WeeklyEntry{}, fmt.Errorf("storage not loaded")
	}

	entry, ok := s.store.Entries[key]
	if !ok {
		return models.WeeklyEntry{}, fmt.Errorf("entry not found: %s", key)
	}

	return entry.Clone(), nil
}

func (s *JSONStore) GetAllEntries() (map[string]models.WeeklyEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	// Clones, not aliases: callers edit these entries freely (the TUI prefills
	// next week's form from the previous week) and must not write through to
	// the stored copies.
	entries := make(map[string]models.WeeklyEntry, len(s.store.Entries))
	for key, entry := range s.store.Entries {
		entries[key] = entry.Clone()
	}

	return entries, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

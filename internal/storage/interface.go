package storage

import "github.com/capworks/captrack/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Weekly entries
	UpsertEntry(models.WeeklyEntry) error
	GetEntry(key string) (models.WeeklyEntry, error)
	GetAllEntries() (map[string]models.WeeklyEntry, error)

	// Utils
	GetConfigPath() string
}

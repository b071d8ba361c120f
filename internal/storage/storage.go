package storage

import (
	"path/filepath"
	"strings"
)

// ForPath picks the backend from the storage file's extension: .db and
// .sqlite open the SQLite store, everything else uses the JSON store.
//
// Concurrency note:
//   - Providers are not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple captrack processes that share the same storage path
//     at the same time is not supported and may lead to data loss.
func ForPath(path string) Provider {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return NewSQLiteStore(path)
	default:
		return NewJSONStore(path)
	}
}

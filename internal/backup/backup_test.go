package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupSQLiteStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "captrack.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		employee_name TEXT NOT NULL,
		week_date     TEXT NOT NULL,
		payload       TEXT NOT NULL,
		last_updated  TEXT NOT NULL,
		PRIMARY KEY (employee_name, week_date)
	)`)
	if err != nil {
		t.Fatalf("failed to create entries table: %v", err)
	}
	_, err = db.Exec(
		"INSERT INTO entries VALUES (?, ?, ?, ?)",
		"Employee A", "2026-02-02", "{}", "2026-02-02T09:00:00Z",
	)
	if err != nil {
		t.Fatalf("failed to insert entry: %v", err)
	}

	return path
}

func TestCreateBackup_SQLite(t *testing.T) {
	storePath := setupSQLiteStore(t)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Fatalf("backup file was not created: %s", backupPath)
	}
	if !strings.HasSuffix(backupPath, ".db") {
		t.Errorf("backup should keep the source extension: %s", backupPath)
	}

	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		t.Fatalf("failed to open backup database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		t.Fatalf("failed to query backup database: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row in backup, got %d", count)
	}
}

func TestCreateBackup_JSON(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "captrack.json")
	if err := os.WriteFile(storePath, []byte(`{"version":1,"entries":{}}`), 0600); err != nil {
		t.Fatal(err)
	}

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup should keep the source extension: %s", backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1,"entries":{}}` {
		t.Errorf("backup content differs from source: %s", data)
	}
}

func TestCreateBackup_MissingSource(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("backup of a missing storage file should fail")
	}
}

func TestBackupRotation(t *testing.T) {
	storePath := setupSQLiteStore(t)

	mgr := NewManager(storePath)

	numBackups := MaxBackups + 5
	for i := 0; i < numBackups; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		// Sleep briefly to ensure unique timestamps
		time.Sleep(10 * time.Millisecond)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}

	if len(backups) != MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}

	// Verify backups are sorted newest first
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted correctly: backup %d is newer than backup %d", i, i-1)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	storePath := setupSQLiteStore(t)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Change the live database after the backup.
	db, err := sql.Open("sqlite", storePath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("DELETE FROM entries"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	db, err = sql.Open("sqlite", storePath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("restore did not bring the entry back, count = %d", count)
	}

	// The pre-restore state was itself backed up.
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a pre-restore backup, have %d backups", len(backups))
	}
}

func TestRestoreBackup_RejectsCorruptBackup(t *testing.T) {
	storePath := setupSQLiteStore(t)
	mgr := NewManager(storePath)

	bad := filepath.Join(t.TempDir(), "captrack-20260202-0900.db")
	if err := os.WriteFile(bad, []byte("garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.RestoreBackup(bad); err == nil {
		t.Error("restoring a corrupt backup should fail")
	}
}

func TestRestoreBackup_RejectsInvalidJSON(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "captrack.json")
	if err := os.WriteFile(storePath, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}
	mgr := NewManager(storePath)

	bad := filepath.Join(t.TempDir(), "captrack-20260202-0900.json")
	if err := os.WriteFile(bad, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := mgr.RestoreBackup(bad); err == nil {
		t.Error("restoring an invalid JSON backup should fail")
	}
}

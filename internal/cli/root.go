package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/capworks/captrack/internal/auth"
	"github.com/capworks/captrack/internal/backup"
	"github.com/capworks/captrack/internal/engine"
	"github.com/capworks/captrack/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// PerformAutomaticBackup backs up the storage file on startup. Failures are
// warnings; losing a backup must not block using the app.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// confirm prompts with a [y/N] question on stdin.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// requireIT gates settings mutations behind the IT master password.
func requireIT(ctx *Context, password string) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	return auth.CheckIT(settings.ITPassword, password)
}

func formatLoad(load int) string {
	return fmt.Sprintf("%d%%", load)
}

package bootstrap

import (
	"log/slog"

	"github.com/boolean-maybe/mycounter/config"
	"github.com/boolean-maybe/mycounter/store"
)

// InitBackStackStore opens the file that carries the navigation stack across restarts.
// Nothing is read or written here; the restore mode decides that later.
func InitBackStackStore(mode config.RestoreMode) store.BackStackStore {
	backStack := store.NewFileStore(config.GetBackStackFile())
	slog.Debug("back stack store", "file", backStack.Path(), "restore", string(mode))
	return backStack
}

package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/boolean-maybe/mycounter/config"
	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/store"
)

// ConfirmFunc asks whether a saved stack should be reopened.
// screens describes the saved stack, bottom first.
type ConfirmFunc func(screens []string) (bool, error)

// InitNavigation seeds the navigation stack. The saved stack is reopened when
// the restore mode allows it; otherwise, or when restoring fails, the stack
// starts at Home. Returns whether a saved stack was restored.
func InitNavigation(
	nav *controller.NavigationController,
	backStack store.BackStackStore,
	mode config.RestoreMode,
	confirm ConfirmFunc,
) (bool, error) {
	if mode != config.RestoreNever {
		restored, err := restoreSession(nav, backStack, mode, confirm)
		if err != nil {
			slog.Warn("previous session not restored", "error", err)
		}
		if restored {
			return true, nil
		}
	}

	if err := nav.PushView(model.HomeScreen{}); err != nil {
		return false, fmt.Errorf("open home screen: %w", err)
	}
	return false, nil
}

func restoreSession(
	nav *controller.NavigationController,
	backStack store.BackStackStore,
	mode config.RestoreMode,
	confirm ConfirmFunc,
) (bool, error) {
	records, err := backStack.Load()
	if errors.Is(err, store.ErrNoSavedStack) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if mode == config.RestoreAsk {
		if confirm == nil {
			return false, nil
		}
		ok, err := confirm(describeRecords(records))
		if err != nil {
			return false, fmt.Errorf("restore prompt: %w", err)
		}
		if !ok {
			slog.Info("user declined to restore previous session")
			return false, nil
		}
	}

	if err := nav.Restore(records); err != nil {
		return false, err
	}
	slog.Info("restored previous session", "depth", nav.Depth())
	return true, nil
}

// SaveNavigation persists the stack on exit when the restore mode keeps sessions.
// A stack that is back at Home leaves nothing to restore, so the file is removed.
func SaveNavigation(
	nav *controller.NavigationController,
	backStack store.BackStackStore,
	mode config.RestoreMode,
) error {
	if mode == config.RestoreNever {
		return nil
	}
	if !nav.CanGoBack() {
		if err := backStack.Clear(); err != nil {
			return fmt.Errorf("clear saved session: %w", err)
		}
		return nil
	}

	records, err := nav.Snapshot()
	if err != nil {
		return err
	}
	if err := backStack.Save(records); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	slog.Debug("saved session", "depth", len(records))
	return nil
}

func describeRecords(records []model.ScreenRecord) []string {
	names := make([]string, 0, len(records))
	for _, rec := range records {
		screen, err := model.DecodeScreen(rec)
		if err != nil {
			names = append(names, string(rec.Kind))
			continue
		}
		names = append(names, model.ScreenName(screen))
	}
	return names
}

package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// PromptForRestore presents a Huh confirm asking whether to reopen the saved
// navigation stack. screens describes the saved stack, top last.
// Returns (restore, error); an aborted prompt counts as "no".
func PromptForRestore(screens []string) (bool, error) {
	restore := true

	description := "The previous session was closed on a nested screen."
	if n := len(screens); n > 0 {
		description = fmt.Sprintf("%d screens saved, last one was %s.", n, screens[n-1])
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Restore previous session?").
				Description(description).
				Affirmative("Restore").
				Negative("Start fresh").
				Value(&restore),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("form error: %w", err)
	}

	return restore, nil
}

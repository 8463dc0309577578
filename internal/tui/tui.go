// SPDX-License-Identifier: MPL-2.0

// Package tui provides the interactive form components used by the CLI,
// wrapping charmbracelet/huh so commands can prompt for item fields without
// dealing with form construction themselves.
package tui

import (
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to a terminal. Commands
// fall back to flag-only operation when it is not (pipes, CI).
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// accessible enables huh's accessible mode for screen readers and dumb
// terminals via the conventional ACCESSIBLE environment variable.
func accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// Confirm prompts for a yes/no decision.
func Confirm(title, description string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).WithAccessible(accessible())
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// Input prompts for a single line of text.
func Input(title, placeholder string, value *string) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(title).
			Placeholder(placeholder).
			Value(value),
	)).WithAccessible(accessible())
	return form.Run()
}

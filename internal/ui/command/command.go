// Package command defines the abstract input vocabulary of the shell and the
// key bindings that produce it.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/tabshell/internal/ui/state"
)

// Command is an action derived from a raw key press.
type Command int

const (
	None Command = iota
	Quit
	Deselect
	Next
	Previous
	First
	Last
	ShowHome
	ShowList
	ShowAbout
	NextView
	PreviousView
)

// ErrUnknownCommand is returned when a command name cannot be resolved.
var ErrUnknownCommand = errors.New("unknown command")

var commandNames = map[Command]string{
	None:         "none",
	Quit:         "quit",
	Deselect:     "deselect",
	Next:         "next",
	Previous:     "previous",
	First:        "first",
	Last:         "last",
	ShowHome:     "home",
	ShowList:     "list",
	ShowAbout:    "about",
	NextView:     "next_view",
	PreviousView: "previous_view",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Parse resolves a command by the name used in configuration files.
func Parse(name string) (Command, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	trimmed = strings.ReplaceAll(trimmed, "-", "_")
	for c, n := range commandNames {
		if c != None && n == trimmed {
			return c, nil
		}
	}
	return None, fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

// View returns the view a switch command targets.
func (c Command) View() (state.View, bool) {
	switch c {
	case ShowHome:
		return state.ViewHome, true
	case ShowList:
		return state.ViewList, true
	case ShowAbout:
		return state.ViewAbout, true
	default:
		return state.ViewHome, false
	}
}

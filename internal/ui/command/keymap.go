package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

var (
	// ErrQuitUnbound is returned when an override leaves quit without keys.
	ErrQuitUnbound = errors.New("quit has no key binding")
	// ErrKeyConflict is returned when one key is bound to two commands.
	ErrKeyConflict = errors.New("key bound to more than one command")
)

// Keymap binds key names, as reported by tea.KeyMsg.String, to commands.
type Keymap struct {
	Quit         key.Binding
	Deselect     key.Binding
	Next         key.Binding
	Previous     key.Binding
	First        key.Binding
	Last         key.Binding
	ShowHome     key.Binding
	ShowList     key.Binding
	ShowAbout    key.Binding
	NextView     key.Binding
	PreviousView key.Binding
}

// DefaultKeymap returns the stock bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("left", "h", "esc"),
			key.WithHelp("←/h", "deselect"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		ShowHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		ShowList: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "list"),
		),
		ShowAbout: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "about"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PreviousView: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
	}
}

func (k *Keymap) binding(c Command) *key.Binding {
	switch c {
	case Quit:
		return &k.Quit
	case Deselect:
		return &k.Deselect
	case Next:
		return &k.Next
	case Previous:
		return &k.Previous
	case First:
		return &k.First
	case Last:
		return &k.Last
	case ShowHome:
		return &k.ShowHome
	case ShowList:
		return &k.ShowList
	case ShowAbout:
		return &k.ShowAbout
	case NextView:
		return &k.NextView
	case PreviousView:
		return &k.PreviousView
	default:
		return nil
	}
}

// resolveOrder is the order bindings are searched in.
var resolveOrder = []Command{
	Quit, Deselect, Next, Previous, First, Last,
	ShowHome, ShowList, ShowAbout, NextView, PreviousView,
}

// Resolve returns the command bound to keyName, or None.
func (k Keymap) Resolve(keyName string) Command {
	for _, c := range resolveOrder {
		b := k.binding(c)
		if !b.Enabled() {
			continue
		}
		for _, bound := range b.Keys() {
			if bound == keyName {
				return c
			}
		}
	}
	return None
}

// Override rebinds commands by name. The help label follows the first key.
// An empty key list disables the command. Quit must keep at least one key
// and no key may end up bound to two enabled commands.
func (k *Keymap) Override(bindings map[string][]string) error {
	for name, keys := range bindings {
		c, err := Parse(name)
		if err != nil {
			return fmt.Errorf("key binding: %w", err)
		}
		b := k.binding(c)
		help := b.Help()
		if len(keys) == 0 {
			b.SetEnabled(false)
			continue
		}
		b.SetKeys(keys...)
		b.SetHelp(strings.Join(keys, "/"), help.Desc)
		b.SetEnabled(true)
	}
	return k.check()
}

func (k *Keymap) check() error {
	if !k.Quit.Enabled() {
		return fmt.Errorf("key binding: %w", ErrQuitUnbound)
	}
	owners := make(map[string]Command)
	for _, c := range resolveOrder {
		b := k.binding(c)
		if !b.Enabled() {
			continue
		}
		for _, name := range b.Keys() {
			if prev, ok := owners[name]; ok && prev != c {
				return fmt.Errorf("key binding: %w: %q is bound to %s and %s", ErrKeyConflict, name, prev, c)
			}
			owners[name] = c
		}
	}
	return nil
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Deselect, k.NextView, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.First, k.Last, k.Deselect},
		{k.ShowHome, k.ShowList, k.ShowAbout, k.NextView, k.PreviousView},
		{k.Quit},
	}
}

package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// View identifies one of the mutually exclusive screens of the shell.
type View int

const (
	ViewHome View = iota
	ViewList
	ViewAbout

	viewCount
)

// ErrUnknownView is returned when a view name cannot be resolved.
var ErrUnknownView = errors.New("unknown view")

var viewNames = [viewCount]string{
	ViewHome:  "home",
	ViewList:  "list",
	ViewAbout: "about",
}

// Views returns every view in display order.
func Views() []View {
	out := make([]View, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		out = append(out, v)
	}
	return out
}

// Valid reports whether v is a member of the enumeration.
func (v View) Valid() bool {
	return v >= 0 && v < viewCount
}

func (v View) String() string {
	if !v.Valid() {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// Title is the capitalised label shown in the tab bar.
func (v View) Title() string {
	name := v.String()
	if !v.Valid() || name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseView resolves a view by name or by its 1-based position.
func ParseView(s string) (View, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	for v, name := range viewNames {
		if trimmed == name {
			return View(v), nil
		}
	}
	if n, err := strconv.Atoi(trimmed); err == nil && n >= 1 && n <= int(viewCount) {
		return View(n - 1), nil
	}
	return ViewHome, fmt.Errorf("%w %q", ErrUnknownView, s)
}

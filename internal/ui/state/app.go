package state

import (
	"fmt"

	"github.com/atomicstack/tabshell/internal/logging/events"
)

// AppState owns the active view and the list the shell navigates. It is
// exclusively owned by the event loop; renderers borrow it for one frame.
type AppState struct {
	view View
	list *List[string]
}

// DefaultItems returns the item set used when none is configured.
func DefaultItems() []string {
	items := make([]string, 10)
	for i := range items {
		items[i] = fmt.Sprintf("Item%d", i)
	}
	return items
}

// NewAppState starts on the home view with nothing selected.
func NewAppState(items []string) *AppState {
	return &AppState{view: ViewHome, list: NewList(items)}
}

// View returns the active view.
func (s *AppState) View() View {
	return s.view
}

// List exposes the navigable list.
func (s *AppState) List() *List[string] {
	return s.list
}

// SwitchView makes v the active view. The list selection is left untouched.
func (s *AppState) SwitchView(v View) {
	if !v.Valid() {
		panic(fmt.Sprintf("state: switch to invalid view %d", int(v)))
	}
	if v == s.view {
		return
	}
	events.View.Switch(s.view.String(), v.String())
	s.view = v
}

// NextView cycles forward through the views.
func (s *AppState) NextView() {
	s.SwitchView((s.view + 1) % viewCount)
}

// PreviousView cycles backward through the views.
func (s *AppState) PreviousView() {
	s.SwitchView((s.view + viewCount - 1) % viewCount)
}

package ui

import (
	"github.com/atomicstack/tabshell/internal/logging/events"
	"github.com/atomicstack/tabshell/internal/ui/command"
)

func (l *Loop) apply(cmd command.Command) {
	list := l.state.List()
	switch cmd {
	case command.Deselect:
		list.Unselect()
	case command.Next:
		list.Next()
	case command.Previous:
		list.Previous()
	case command.First:
		list.First()
	case command.Last:
		list.Last()
	case command.NextView:
		l.state.NextView()
		return
	case command.PreviousView:
		l.state.PreviousView()
		return
	default:
		if v, ok := cmd.View(); ok {
			l.state.SwitchView(v)
		}
		return
	}
	l.traceCursor()
}

func (l *Loop) traceCursor() {
	idx, ok := l.state.List().Selected()
	if !ok {
		idx = -1
	}
	events.List.Cursor(idx)
}

package ui

import (
	"fmt"

	"github.com/atomicstack/tabshell/internal/logging/events"
	"github.com/atomicstack/tabshell/internal/ui/command"
	"github.com/atomicstack/tabshell/internal/ui/render"
	"github.com/atomicstack/tabshell/internal/ui/state"
)

// EventType distinguishes key input from everything else a terminal reports.
type EventType int

const (
	EventKey EventType = iota
	EventOther
)

// KeyKind tells presses apart from the release and repeat reports some
// platforms emit for the same physical key.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

func (k KeyKind) String() string {
	switch k {
	case KeyPress:
		return "press"
	case KeyRepeat:
		return "repeat"
	case KeyRelease:
		return "release"
	default:
		return fmt.Sprintf("KeyKind(%d)", int(k))
	}
}

// Event is one input report. Key holds the symbolic key name in the
// tea.KeyMsg.String format, e.g. "down", "q" or "shift+tab".
type Event struct {
	Type EventType
	Key  string
	Kind KeyKind
}

// KeyEvent returns a key press event.
func KeyEvent(key string) Event {
	return Event{Type: EventKey, Key: key, Kind: KeyPress}
}

// EventSource blocks until the next input event is available.
type EventSource interface {
	Next() (Event, error)
}

// Drawer commits one frame drawn by fn.
type Drawer interface {
	Draw(fn func(render.Frame)) error
}

// Status is the lifecycle state of a Loop.
type Status int

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Loop binds input to state mutations and state to frames. It owns the
// AppState exclusively; renderers borrow it only while a frame is drawn.
type Loop struct {
	state    *state.AppState
	keymap   command.Keymap
	dispatch *render.Dispatcher
	status   Status
}

// NewLoop returns a running loop.
func NewLoop(s *state.AppState, km command.Keymap, d *render.Dispatcher) *Loop {
	return &Loop{state: s, keymap: km, dispatch: d, status: Running}
}

// AppState exposes the owned state for inspection.
func (l *Loop) AppState() *state.AppState {
	return l.state
}

// Status reports whether the loop is still running.
func (l *Loop) Status() Status {
	return l.status
}

// Handle applies one event and reports whether a redraw is due. Only
// recognised key presses mutate state; quit terminates without a redraw.
func (l *Loop) Handle(ev Event) bool {
	if l.status == Terminated {
		return false
	}
	if ev.Type != EventKey {
		return false
	}
	if ev.Kind != KeyPress {
		events.Loop.Ignored(ev.Key, ev.Kind.String())
		return false
	}
	cmd := l.keymap.Resolve(ev.Key)
	if cmd == command.None {
		events.Loop.Ignored(ev.Key, "unbound")
		return false
	}
	events.Loop.Key(ev.Key, cmd.String())
	if cmd == command.Quit {
		l.status = Terminated
		events.Loop.Terminate(l.state.View().String())
		return false
	}
	l.apply(cmd)
	return true
}

// Render draws the current state into f.
func (l *Loop) Render(f render.Frame) {
	l.dispatch.Render(f, l.state)
}

// Run draws the initial frame, then processes events until quit. Errors
// from either capability end the loop immediately.
func (l *Loop) Run(src EventSource, out Drawer) error {
	if err := out.Draw(l.Render); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	for l.status == Running {
		ev, err := src.Next()
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}
		if !l.Handle(ev) {
			continue
		}
		if err := out.Draw(l.Render); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
	}
	return nil
}

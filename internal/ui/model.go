package ui

import (
	"reflect"

	"github.com/atomicstack/tabshell/internal/ui/render"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Model adapts a Loop to Bubble Tea. Bubble Tea owns the terminal session:
// it reads keys, paints the string returned by View, and restores the
// terminal however the program ends.
type Model struct {
	loop        *Loop
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps loop. Positive width or height pin the frame size and
// ignore terminal resizes along that axis.
func NewModel(loop *Loop, width, height int) *Model {
	m := &Model{loop: loop}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Loop returns the wrapped loop.
func (m *Model) Loop() *Loop {
	return m.loop
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// View implements tea.Model by drawing one frame onto a fresh canvas.
// bubbletea calls it after every Update, including keys the loop ignored;
// its renderer skips writing a frame identical to the previous one.
func (m *Model) View() string {
	if m.loop.Status() == Terminated {
		return ""
	}
	canvas := render.NewCanvas(m.width, m.height)
	m.loop.Render(canvas)
	return canvas.Commit()
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// handleKeyMsg forwards the key to the loop. Bubble Tea only reports
// presses, so every KeyMsg becomes a press event.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.loop.Handle(KeyEvent(keyMsg.String()))
	if m.loop.Status() == Terminated {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

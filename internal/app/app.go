package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/tabshell/internal/logging/events"
	"github.com/atomicstack/tabshell/internal/ui"
	"github.com/atomicstack/tabshell/internal/ui/command"
	"github.com/atomicstack/tabshell/internal/ui/render"
	"github.com/atomicstack/tabshell/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const (
	replayWidth  = 80
	replayHeight = 24
)

// Config describes user-provided application options.
type Config struct {
	View       state.View
	Items      []string
	Keys       map[string][]string
	Width      int
	Height     int
	ShowFooter bool
	// Script replays key events from a file instead of the terminal. "-"
	// reads standard input.
	Script string
}

// Run builds the shell and drives it until the quit command or a terminal
// failure. Without a script, an interactive terminal on stdin selects the
// Bubble Tea session; anything else is replayed and printed to stdout.
func Run(cfg Config) error {
	loop, err := NewLoop(cfg)
	if err != nil {
		return err
	}
	if cfg.Script == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		err = runInteractive(loop, cfg)
		events.App.Exit("interactive", err)
		return err
	}
	in, closeIn, err := openScript(cfg.Script)
	if err != nil {
		return err
	}
	defer closeIn()
	err = Replay(loop, in, os.Stdout, cfg)
	events.App.Exit("replay", err)
	return err
}

// NewLoop assembles state, key bindings and renderers from cfg.
func NewLoop(cfg Config) (*ui.Loop, error) {
	km := command.DefaultKeymap()
	if err := km.Override(cfg.Keys); err != nil {
		return nil, err
	}
	dispatcher, err := render.NewDispatcher(render.DefaultRenderers(render.Options{
		Keymap:     km,
		ShowFooter: cfg.ShowFooter,
	}))
	if err != nil {
		return nil, err
	}
	items := cfg.Items
	if items == nil {
		items = state.DefaultItems()
	}
	s := state.NewAppState(items)
	s.SwitchView(cfg.View)
	return ui.NewLoop(s, km, dispatcher), nil
}

// Replay runs loop against a script, printing every frame to out.
func Replay(loop *ui.Loop, in io.Reader, out io.Writer, cfg Config) error {
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = replayWidth
	}
	if height <= 0 {
		height = replayHeight
	}
	return loop.Run(ui.NewScriptSource(in), ui.NewFramePrinter(out, width, height))
}

func runInteractive(loop *ui.Loop, cfg Config) error {
	model := ui.NewModel(loop, cfg.Width, cfg.Height)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func openScript(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { f.Close() }, nil
}

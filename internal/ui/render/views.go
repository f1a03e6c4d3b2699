package render

import (
	"fmt"

	"github.com/atomicstack/tabshell/internal/format/table"
	"github.com/atomicstack/tabshell/internal/ui/command"
	"github.com/atomicstack/tabshell/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Options tune the stock renderers.
type Options struct {
	Keymap     command.Keymap
	ShowFooter bool
}

// DefaultRenderers returns the tab bar chrome and one renderer per view.
func DefaultRenderers(opts Options) Renderers {
	return Renderers{
		Chrome: chrome(opts),
		Home:   renderHome,
		List:   renderList,
		About:  aboutRenderer(opts.Keymap),
	}
}

func chrome(opts Options) Renderer {
	return func(f Frame, s *state.AppState) {
		views := state.Views()
		titles := make([]string, len(views))
		for i, v := range views {
			titles[i] = fmt.Sprintf("%d %s", i+1, v.Title())
		}
		f.Tabs(titles, int(s.View()))
		if opts.ShowFooter {
			h := help.New()
			h.Width, _ = f.Size()
			f.Footer(h.ShortHelpView(opts.Keymap.ShortHelp()))
		}
	}
}

func renderHome(f Frame, s *state.AppState) {
	l := s.List()
	selection := "nothing selected"
	if item, ok := l.SelectedItem(); ok {
		idx, _ := l.Selected()
		selection = fmt.Sprintf("%s (%d of %d)", item, idx+1, l.Len())
	}
	lines := []string{"Welcome to tabshell.", ""}
	lines = append(lines, table.Format([][]string{
		{"View", s.View().Title()},
		{"Items", fmt.Sprint(l.Len())},
		{"Selection", selection},
	}, nil)...)
	lines = append(lines, "", "Switch to the list view to move the cursor.")
	f.Text("Home", lines)
}

func renderList(f Frame, s *state.AppState) {
	l := s.List()
	if rows := f.Remaining(); rows >= 0 {
		l.EnsureVisible(rows - 2)
	}
	selected := -1
	if idx, ok := l.Selected(); ok {
		selected = idx
	}
	f.List("List", l.Items(), selected, l.Offset())
}

func aboutRenderer(km command.Keymap) Renderer {
	return func(f Frame, _ *state.AppState) {
		f.Text("About", keyTable(km.FullHelp()))
	}
}

// keyTable lays enabled bindings out as aligned "keys  description" rows.
func keyTable(groups [][]key.Binding) []string {
	var rows [][]string
	for i, group := range groups {
		if i > 0 && len(rows) > 0 {
			rows = append(rows, nil)
		}
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			rows = append(rows, []string{h.Key, h.Desc})
		}
	}
	return table.Format(rows, nil)
}

package render

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tabshell/internal/logging/events"
	"github.com/atomicstack/tabshell/internal/ui/state"
)

// ErrMissingRenderer reports a view without a renderer.
var ErrMissingRenderer = errors.New("missing renderer")

// Renderer draws one view. The state is borrowed for the duration of the
// call and must not be retained.
type Renderer func(f Frame, s *state.AppState)

// Renderers names the renderer for each view, plus optional chrome drawn
// before every view.
type Renderers struct {
	Chrome Renderer
	Home   Renderer
	List   Renderer
	About  Renderer
}

// Dispatcher selects the renderer for the active view.
type Dispatcher struct {
	r Renderers
}

// NewDispatcher validates that every view has a renderer.
func NewDispatcher(r Renderers) (*Dispatcher, error) {
	d := &Dispatcher{r: r}
	for _, v := range state.Views() {
		if d.rendererFor(v) == nil {
			return nil, fmt.Errorf("%w for view %s", ErrMissingRenderer, v)
		}
	}
	return d, nil
}

// Render draws one frame of the active view.
func (d *Dispatcher) Render(f Frame, s *state.AppState) {
	v := s.View()
	r := d.rendererFor(v)
	if r == nil {
		panic(fmt.Sprintf("render: %v for view %s", ErrMissingRenderer, v))
	}
	w, h := f.Size()
	events.Render.Frame(v.String(), w, h)
	if d.r.Chrome != nil {
		d.r.Chrome(f, s)
	}
	r(f, s)
}

func (d *Dispatcher) rendererFor(v state.View) Renderer {
	switch v {
	case state.ViewHome:
		return d.r.Home
	case state.ViewList:
		return d.r.List
	case state.ViewAbout:
		return d.r.About
	default:
		return nil
	}
}

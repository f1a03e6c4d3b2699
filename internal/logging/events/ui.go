package events

import "github.com/atomicstack/tabshell/internal/logging"

type LoopTracer struct{}

type ViewTracer struct{}

type ListTracer struct{}

type RenderTracer struct{}

var (
	Loop   = LoopTracer{}
	View   = ViewTracer{}
	List   = ListTracer{}
	Render = RenderTracer{}
)

func (LoopTracer) Key(key, command string) {
	logging.Trace("loop.key", map[string]interface{}{"key": key, "command": command})
}

func (LoopTracer) Ignored(key, reason string) {
	logging.Trace("loop.ignored", map[string]interface{}{"key": key, "reason": reason})
}

func (LoopTracer) Terminate(view string) {
	logging.Trace("loop.terminate", map[string]interface{}{"view": view})
}

func (ViewTracer) Switch(from, to string) {
	logging.Trace("view.switch", map[string]interface{}{"from": from, "to": to})
}

// Cursor records the list cursor; index is -1 when nothing is selected.
func (ListTracer) Cursor(index int) {
	logging.Trace("list.cursor", map[string]interface{}{"cursor": index})
}

func (RenderTracer) Frame(view string, width, height int) {
	logging.Trace("render.frame", map[string]interface{}{"view": view, "width": width, "height": height})
}

package events

import "github.com/atomicstack/tabshell/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Exit records how the run ended. err is nil on a normal quit.
func (AppTracer) Exit(mode string, err error) {
	payload := map[string]interface{}{"mode": mode}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

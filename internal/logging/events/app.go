package events

import "github.com/visualleap/gamelauncher/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Show() {
	logging.Trace("app.show", nil)
}

func (AppTracer) Hide(reason string) {
	logging.Trace("app.hide", map[string]interface{}{"reason": reason})
}

func (AppTracer) SecondInstance() {
	logging.Trace("app.second-instance", nil)
}

func (AppTracer) Shutdown() {
	logging.Trace("app.shutdown", nil)
}

package events

import "github.com/visualleap/gamelauncher/internal/logging"

type InputTracer struct{}

var Input = InputTracer{}

func (InputTracer) ControllerConnected(device string) {
	logging.Trace("input.controller-connected", map[string]interface{}{"device": device})
}

func (InputTracer) ControllerLost(device string, err error) {
	payload := map[string]interface{}{"device": device}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("input.controller-lost", payload)
}

func (InputTracer) Button(name string) {
	logging.Trace("input.button", map[string]interface{}{"button": name})
}

func (InputTracer) Direction(source string, dx, dy int) {
	logging.Trace("input.direction", map[string]interface{}{
		"source": source, "dx": dx, "dy": dy,
	})
}

package events

import "github.com/visualleap/gamelauncher/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Attempt(name, target string) {
	logging.Trace("launch.attempt", map[string]interface{}{"name": name, "target": target})
}

func (LaunchTracer) Success(name string, pid int) {
	logging.Trace("launch.success", map[string]interface{}{"name": name, "pid": pid})
}

func (LaunchTracer) Failure(name string, err error) {
	logging.Trace("launch.failure", map[string]interface{}{"name": name, "error": err.Error()})
}

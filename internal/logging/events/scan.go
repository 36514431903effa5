package events

import "github.com/visualleap/gamelauncher/internal/logging"

type ScanTracer struct{}

var Scan = ScanTracer{}

func (ScanTracer) Start(root string) {
	logging.Trace("scan.start", map[string]interface{}{"root": root})
}

func (ScanTracer) Drop(path, reason string) {
	logging.Trace("scan.drop", map[string]interface{}{"path": path, "reason": reason})
}

func (ScanTracer) Done(tabs, entries int) {
	logging.Trace("scan.done", map[string]interface{}{"tabs": tabs, "entries": entries})
}

func (ScanTracer) Watch(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("scan.watch", payload)
}

package events

import "github.com/visualleap/gamelauncher/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Select(tab string, index int, mode string) {
	logging.Trace("ui.select", map[string]interface{}{
		"tab":   tab,
		"index": index,
		"mode":  mode,
	})
}

func (UITracer) Scroll(tab string, offset int) {
	logging.Trace("ui.scroll", map[string]interface{}{"tab": tab, "offset": offset})
}

func (UITracer) TabSwitch(tab string) {
	logging.Trace("ui.tab", map[string]interface{}{"tab": tab})
}

func (UITracer) Resize(cols, rows, frameW, frameH int) {
	logging.Trace("ui.resize", map[string]interface{}{
		"cols": cols, "rows": rows, "frameW": frameW, "frameH": frameH,
	})
}

func (FilterTracer) Append(tab, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"tab": tab, "filter": filter})
}

func (FilterTracer) Backspace(tab, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"tab": tab, "filter": filter})
}

func (FilterTracer) Cleared(tab string) {
	logging.Trace("filter.clear", map[string]interface{}{"tab": tab})
}

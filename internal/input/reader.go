package input

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"os"
	"sync"
	"time"

	"github.com/visualleap/gamelauncher/internal/logging/events"
)

// DefaultDevice is the first joystick node the kernel exposes.
const DefaultDevice = "/dev/input/js0"

const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80

	jsRecordSize = 8

	reopenDelay = 2 * time.Second
)

// jsRecord mirrors the kernel's struct js_event wire layout.
type jsRecord struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

// Reader owns the joystick device. A goroutine started by Run keeps a
// PadState snapshot current; Snapshot hands it to the poll loop. A missing
// or vanished device is not an error: the reader keeps retrying so a
// controller can be plugged in at any time.
type Reader struct {
	device string

	mu        sync.Mutex
	state     PadState
	connected bool
}

func NewReader(device string) *Reader {
	if device == "" {
		device = DefaultDevice
	}
	return &Reader{device: device}
}

// Snapshot returns the current pad state and whether a device is attached.
func (r *Reader) Snapshot() (PadState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.connected
}

// Run blocks, reading device records until the context is cancelled.
func (r *Reader) Run(ctx context.Context) {
	for ctx.Err() == nil {
		f, err := os.Open(r.device)
		if err != nil {
			sleepCtx(ctx, reopenDelay)
			continue
		}
		events.Input.ControllerConnected(r.device)
		r.setConnected(true)
		err = r.consume(ctx, f)
		f.Close()
		r.setConnected(false)
		if ctx.Err() != nil {
			return
		}
		events.Input.ControllerLost(r.device, err)
		sleepCtx(ctx, reopenDelay)
	}
}

// consume reads js_event records until the device errors or the context
// ends. Reads run in a helper goroutine so cancellation is not stuck
// behind a blocking read.
func (r *Reader) consume(ctx context.Context, f *os.File) error {
	type chunk struct {
		buf []byte
		err error
	}
	records := make(chan chunk)
	go func() {
		defer close(records)
		for {
			buf := make([]byte, jsRecordSize)
			if _, err := io.ReadFull(f, buf); err != nil {
				records <- chunk{err: err}
				return
			}
			select {
			case records <- chunk{buf: buf}:
			case <-ctx.Done():
				return
			}
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-records:
			if !ok {
				return nil
			}
			if c.err != nil {
				return c.err
			}
			r.apply(decodeRecord(c.buf))
		}
	}
}

func decodeRecord(buf []byte) jsRecord {
	var rec jsRecord
	_ = binary.Read(bytes.NewReader(buf), binary.LittleEndian, &rec)
	return rec
}

func (r *Reader) apply(rec jsRecord) {
	kind := rec.Type &^ jsEventInit
	r.mu.Lock()
	defer r.mu.Unlock()
	switch kind {
	case jsEventButton:
		if rec.Number >= 32 {
			return
		}
		if rec.Value != 0 {
			r.state.Buttons |= 1 << uint(rec.Number)
		} else {
			r.state.Buttons &^= 1 << uint(rec.Number)
		}
	case jsEventAxis:
		if int(rec.Number) < axisCount {
			r.state.Axes[rec.Number] = rec.Value
		}
	}
}

func (r *Reader) setConnected(v bool) {
	r.mu.Lock()
	r.connected = v
	if !v {
		r.state = PadState{}
	}
	r.mu.Unlock()
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

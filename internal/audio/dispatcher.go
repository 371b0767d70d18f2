package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// Dispatcher routes simulation events to a Sink. It remembers the requested
// ambient track so unmuting can bring it back, and it swallows every sink
// failure after logging it.
type Dispatcher struct {
	mu      sync.Mutex
	sink    Sink
	logger  *log.Logger
	muted   bool
	ambient string // Last requested track, "" when stopped
}

// NewDispatcher wraps sink. A nil sink behaves like Null and a nil logger
// discards.
func NewDispatcher(sink Sink, logger *log.Logger) *Dispatcher {
	if sink == nil {
		sink = Null{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{sink: sink, logger: logger}
}

// Handle plays the cues for one tick of events.
func (d *Dispatcher) Handle(events []core.Event) {
	if len(events) == 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, e := range events {
		switch e.Kind {
		case core.EventAmbient:
			d.ambient = e.Text
			if !d.muted {
				d.call("set ambient", func() error { return d.sink.SetAmbient(e.Text) })
			}
		case core.EventAmbientStop:
			d.ambient = ""
			if !d.muted {
				d.call("stop ambient", func() error { d.sink.StopAmbient(); return nil })
			}
		default:
			cue, ok := CueFor(e)
			if !ok || d.muted {
				continue
			}
			d.call("play", func() error { return d.sink.Play(cue) })
		}
	}
}

// SetMuted silences or restores audio. Unmuting resumes the ambient track
// that was last requested.
func (d *Dispatcher) SetMuted(muted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.muted == muted {
		return
	}
	d.muted = muted
	if muted {
		d.call("stop ambient", func() error { d.sink.StopAmbient(); return nil })
		return
	}
	if d.ambient != "" {
		track := d.ambient
		d.call("set ambient", func() error { return d.sink.SetAmbient(track) })
	}
}

// ToggleMute flips the mute state and returns the new value.
func (d *Dispatcher) ToggleMute() bool {
	d.SetMuted(!d.Muted())
	return d.Muted()
}

// Muted reports whether audio is silenced.
func (d *Dispatcher) Muted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.muted
}

// Ambient returns the last requested ambient track.
func (d *Dispatcher) Ambient() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ambient
}

// Close stops the ambient track and releases the sink.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.call("stop ambient", func() error { d.sink.StopAmbient(); return nil })
	d.call("close", d.sink.Close)
}

// call runs one sink operation; errors and panics are logged and dropped.
func (d *Dispatcher) call(op string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Debug("audio sink panicked", "op", op, "err", fmt.Sprint(r))
		}
	}()
	if err := fn(); err != nil {
		d.logger.Debug("audio request failed", "op", op, "err", err)
	}
}

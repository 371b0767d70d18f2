package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Synth is a Sink that synthesizes every sound on the fly and plays it
// through the system speaker. Effects are mixed on top of one ambient drone.
type Synth struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	ambient *beep.Ctrl
	track   string
	volume  float64
	closed  bool
}

// NewSynth opens the speaker. It fails when no output device is available;
// callers fall back to Null.
func NewSynth(volume float64) (*Synth, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Synth{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play mixes in a new instance of the cue.
func (s *Synth) Play(c Cue) error {
	st := cueStreamer(c, sampleRate)
	if st == nil {
		return fmt.Errorf("play %v: %w", c, ErrUnknownCue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	speaker.Lock()
	s.mixer.Add(withVolume(st, s.volume))
	speaker.Unlock()
	return nil
}

// SetAmbient replaces the ambient drone. Requesting the current track is a
// no-op.
func (s *Synth) SetAmbient(track string) error {
	prof, ok := droneProfiles[track]
	if !ok {
		return fmt.Errorf("ambient %q: %w", track, ErrUnknownTrack)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || (s.track == track && s.ambient != nil) {
		return nil
	}

	ctrl := &beep.Ctrl{Streamer: withVolume(newDrone(sampleRate, prof), s.volume)}
	speaker.Lock()
	if s.ambient != nil {
		// A Ctrl without a streamer reports drained and leaves the mixer
		s.ambient.Streamer = nil
	}
	s.mixer.Add(ctrl)
	speaker.Unlock()

	s.ambient = ctrl
	s.track = track
	return nil
}

// StopAmbient silences the drone.
func (s *Synth) StopAmbient() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopAmbientLocked()
}

func (s *Synth) stopAmbientLocked() {
	if s.ambient == nil {
		return
	}
	speaker.Lock()
	s.ambient.Streamer = nil
	speaker.Unlock()
	s.ambient = nil
	s.track = ""
}

// Close stops all sound and releases the speaker.
func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.stopAmbientLocked()
	speaker.Clear()
	speaker.Close()
	s.closed = true
	return nil
}

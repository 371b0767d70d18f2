// Package audio turns simulation events into sound. The game only records
// events; a Dispatcher maps them to cues and ambient tracks and hands them
// to a Sink. Playback failures never reach the simulation.
package audio

import (
	"errors"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// Cue is a short sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueScore
	CuePop
	CueBoom
	CueLoseLife
	CueGameOver
	CueKey
	CueLevelUp
	CueShieldUp
	CueShieldDown
	CueAbsorb
	CueGust
)

// ErrUnknownCue is returned by sinks asked to play a cue they cannot build.
var ErrUnknownCue = errors.New("unknown cue")

// ErrUnknownTrack is returned by sinks asked for an ambient track they lack.
var ErrUnknownTrack = errors.New("unknown ambient track")

func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueScore:
		return "score"
	case CuePop:
		return "pop"
	case CueBoom:
		return "boom"
	case CueLoseLife:
		return "lose_life"
	case CueGameOver:
		return "game_over"
	case CueKey:
		return "key"
	case CueLevelUp:
		return "level_up"
	case CueShieldUp:
		return "shield_up"
	case CueShieldDown:
		return "shield_down"
	case CueAbsorb:
		return "absorb"
	case CueGust:
		return "gust"
	default:
		return "unknown"
	}
}

// CueFor maps a simulation event to its sound effect. Ambient events and
// calm wind have no cue.
func CueFor(e core.Event) (Cue, bool) {
	switch e.Kind {
	case core.EventScore:
		return CueScore, true
	case core.EventPop:
		return CuePop, true
	case core.EventExplosion:
		return CueBoom, true
	case core.EventLifeLost:
		return CueLoseLife, true
	case core.EventGameOver:
		return CueGameOver, true
	case core.EventKeyCollected:
		return CueKey, true
	case core.EventLevelAdvanced:
		return CueLevelUp, true
	case core.EventShieldUp:
		return CueShieldUp, true
	case core.EventShieldDown:
		return CueShieldDown, true
	case core.EventShieldAbsorb:
		return CueAbsorb, true
	case core.EventWind:
		if e.Value != 0 {
			return CueGust, true
		}
	}
	return CueNone, false
}

// Sink plays cues and ambient tracks. Implementations must not block the
// caller for longer than it takes to queue the sound.
type Sink interface {
	Play(Cue) error
	SetAmbient(track string) error
	StopAmbient()
	Close() error
}

// Null is a Sink that discards everything. It is used when audio is muted
// from the command line, over SSH, or when no output device is available.
type Null struct{}

func (Null) Play(Cue) error { return nil }

func (Null) SetAmbient(string) error { return nil }

func (Null) StopAmbient() {}

func (Null) Close() error { return nil }

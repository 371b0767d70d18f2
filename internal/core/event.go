package core

// EventKind identifies something that happened during a simulation tick.
type EventKind int

const (
	EventScore         EventKind = iota // obstacle passed, score +1
	EventPop                            // small burst effect spawned
	EventExplosion                      // large burst effect spawned
	EventLifeLost                       // Value = lives remaining
	EventGameOver                       // Value = final score
	EventKeyCollected                   // Value = keys collected this level
	EventLevelAdvanced                  // Value = new level index
	EventShieldUp                       // Value = shield duration in ticks
	EventShieldDown                     // shield expired
	EventShieldAbsorb                   // Value = bonus awarded
	EventAmbient                        // Text = ambient track to play
	EventAmbientStop                    // ambient track should stop
	EventWind                           // Value = direction, 0 when calm
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "score"
	case EventPop:
		return "pop"
	case EventExplosion:
		return "explosion"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventKeyCollected:
		return "key_collected"
	case EventLevelAdvanced:
		return "level_advanced"
	case EventShieldUp:
		return "shield_up"
	case EventShieldDown:
		return "shield_down"
	case EventShieldAbsorb:
		return "shield_absorb"
	case EventAmbient:
		return "ambient"
	case EventAmbientStop:
		return "ambient_stop"
	case EventWind:
		return "wind"
	default:
		return "unknown"
	}
}

// Event is a semantic notification emitted by a game.
// Games only record events; the platform decides what to do with them
// (play sounds, change music, report scores).
type Event struct {
	Kind  EventKind
	Value int
	Text  string
}

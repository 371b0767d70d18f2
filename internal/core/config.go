package core

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig describes the surface a game runs on. Screen sizes are in
// terminal cells; the world is CellW x CellH pixels per cell.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Ticks per second
	Seed     int64 // 0 picks a seed from the clock
}

// DefaultConfig returns an 80x24 surface at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Rate returns TickRate, or DefaultTickRate when it is not positive.
func (c RuntimeConfig) Rate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// GameState is the summary a front end needs after each tick.
type GameState struct {
	Score    int
	Lives    int
	Level    int // Zero-based level index
	GameOver bool
	Paused   bool
}

// StepResult is what Step reports: the state after the tick and the events
// recorded during it, in order.
type StepResult struct {
	State  GameState
	Events []Event
}

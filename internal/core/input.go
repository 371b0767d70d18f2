package core

// Action is a player intent. Front ends translate keys, mouse drags and
// menu choices into actions so the simulation never sees raw input.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionStopX // Horizontal steering released
	ActionStopY // Vertical steering released
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause // Toggles pause
	ActionResume
	ActionMute
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionStopX:   "StopX",
	ActionStopY:   "StopY",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionResume:  "Resume",
	ActionMute:    "Mute",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Pointer is a drag position delivered by a mouse or touch device.
type Pointer struct {
	Active bool
	X      float64 // World pixels
}

// InputFrame collects the intents of one tick. Copies share the action set,
// so a front end may hand the frame around by value and still clear it
// once after the tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set records an action for this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetPointer records a drag position for this tick.
func (f *InputFrame) SetPointer(x float64) {
	f.Pointer = Pointer{Active: true, X: x}
}

// Has reports whether a was recorded this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = Pointer{}
}

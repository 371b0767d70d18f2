package seasons

// Shield is the gift power-up: inactive, or active with a countdown.
type Shield struct {
	remaining int
	fade      int
}

// Activate (re)starts the shield with a full duration.
func (s *Shield) Activate(duration, fade int) {
	s.remaining = duration
	s.fade = fade
}

// Active reports whether hits are currently absorbed.
func (s *Shield) Active() bool { return s.remaining > 0 }

// Remaining returns the ticks left.
func (s *Shield) Remaining() int { return s.remaining }

// tick counts down one frame and returns true on the frame it expires.
func (s *Shield) tick() bool {
	if s.remaining <= 0 {
		return false
	}
	s.remaining--
	return s.remaining == 0
}

// Alpha is 1 until the final fade window, then falls linearly to 0.
func (s *Shield) Alpha() float64 {
	if s.remaining <= 0 {
		return 0
	}
	if s.fade > 0 && s.remaining < s.fade {
		return float64(s.remaining) / float64(s.fade)
	}
	return 1
}

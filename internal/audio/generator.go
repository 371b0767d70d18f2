package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

func wave(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// sweep is a finite tone gliding from one frequency to another with a short
// attack and a linear release.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	wave     WaveType
	amp      float64
	total    int
	attack   int
	pos      int
	phase    float64
}

// newSweep builds a tone of duration d. A constant tone has from == to.
func newSweep(rate beep.SampleRate, from, to float64, d time.Duration, w WaveType, amp float64) *sweep {
	total := rate.N(d)
	return &sweep{
		rate:   rate,
		from:   from,
		to:     to,
		wave:   w,
		amp:    amp,
		total:  total,
		attack: min(rate.N(5*time.Millisecond), total/4),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		env := 1 - progress
		if s.pos < s.attack {
			env = float64(s.pos) / float64(s.attack)
		}

		v := s.amp * env * wave(s.wave, s.phase)
		samples[i][0], samples[i][1] = v, v

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// burst is exponentially decaying noise mixed with a low rumble.
type burst struct {
	rate   beep.SampleRate
	total  int
	decay  float64
	rumble float64
	amp    float64
	pos    int
	seed   uint32
}

func newBurst(rate beep.SampleRate, d time.Duration, decay, rumble, amp float64) *burst {
	return &burst{rate: rate, total: rate.N(d), decay: decay, rumble: rumble, amp: amp, seed: 0x2545f491}
}

func (b *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.rate)
		b.seed = b.seed*1664525 + 1013904223
		noise := float64(b.seed)/float64(math.MaxUint32)*2 - 1

		v := b.amp * math.Exp(-t*b.decay) * (0.6*noise + 0.4*math.Sin(2*math.Pi*b.rumble*t))
		samples[i][0], samples[i][1] = v, v
		b.pos++
	}
	return len(samples), true
}

func (b *burst) Err() error { return nil }

// drone is an endless ambient pad: a chord whose level breathes with a slow
// LFO, optionally with soft noise for wind and rain.
type drone struct {
	rate   beep.SampleRate
	freqs  []float64
	lfo    float64
	noise  float64
	amp    float64
	phases []float64
	pos    int
	seed   uint32
}

func newDrone(rate beep.SampleRate, p droneProfile) *drone {
	return &drone{
		rate:   rate,
		freqs:  p.freqs,
		lfo:    p.lfo,
		noise:  p.noise,
		amp:    p.amp,
		phases: make([]float64, len(p.freqs)),
		seed:   0x9e3779b9,
	}
}

func (d *drone) Stream(samples [][2]float64) (n int, ok bool) {
	voices := float64(max(len(d.freqs), 1))
	for i := range samples {
		t := float64(d.pos) / float64(d.rate)
		breath := 0.6 + 0.4*math.Sin(2*math.Pi*d.lfo*t)

		v := 0.0
		for j, f := range d.freqs {
			v += math.Sin(2 * math.Pi * d.phases[j])
			d.phases[j] += f / float64(d.rate)
			d.phases[j] -= math.Floor(d.phases[j])
		}
		v /= voices

		if d.noise > 0 {
			d.seed = d.seed*1664525 + 1013904223
			v += d.noise * (float64(d.seed)/float64(math.MaxUint32)*2 - 1)
		}

		v *= d.amp * breath
		samples[i][0], samples[i][1] = v, v
		d.pos++
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }

type droneProfile struct {
	freqs []float64
	lfo   float64 // Hz
	noise float64
	amp   float64
}

// droneProfiles holds one pad per ambient track name.
var droneProfiles = map[string]droneProfile{
	"spring-forest":  {freqs: []float64{261.63, 329.63, 392.00}, lfo: 0.15, amp: 0.08},
	"beach-waves":    {freqs: []float64{220.00, 277.18}, lfo: 0.08, noise: 0.05, amp: 0.09},
	"calm-wind":      {freqs: []float64{196.00, 246.94}, lfo: 0.1, noise: 0.04, amp: 0.07},
	"winter-night":   {freqs: []float64{146.83, 220.00, 293.66}, lfo: 0.05, amp: 0.06},
	"rainy-ambience": {freqs: []float64{130.81}, lfo: 0.2, noise: 0.08, amp: 0.08},
	"thunderstorm":   {freqs: []float64{65.41, 98.00}, lfo: 0.07, noise: 0.1, amp: 0.1},
	"night-forest":   {freqs: []float64{174.61, 220.00, 261.63}, lfo: 0.12, amp: 0.06},
	"happy-morning":  {freqs: []float64{293.66, 369.99, 440.00}, lfo: 0.25, amp: 0.08},
}

// cueStreamer builds a fresh streamer for a cue, or nil for unknown cues.
func cueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	switch c {
	case CueScore:
		return newSweep(rate, 880, 990, ms(60), WaveSine, 0.25)
	case CuePop:
		return newSweep(rate, 660, 440, ms(80), WaveSquare, 0.15)
	case CueBoom:
		return beep.Mix(
			newBurst(rate, ms(600), 6, 60, 0.5),
			newSweep(rate, 120, 40, ms(500), WaveSine, 0.3),
		)
	case CueLoseLife:
		return newSweep(rate, 330, 110, ms(400), WaveSaw, 0.2)
	case CueGameOver:
		return newSweep(rate, 440, 80, ms(1200), WaveTriangle, 0.3)
	case CueKey:
		return beep.Seq(
			newSweep(rate, 1320, 1320, ms(70), WaveSine, 0.25),
			newSweep(rate, 1760, 1760, ms(90), WaveSine, 0.25),
		)
	case CueLevelUp:
		return beep.Seq(
			newSweep(rate, 523.25, 523.25, ms(120), WaveTriangle, 0.3),
			newSweep(rate, 659.25, 659.25, ms(120), WaveTriangle, 0.3),
			newSweep(rate, 783.99, 783.99, ms(200), WaveTriangle, 0.3),
		)
	case CueShieldUp:
		return newSweep(rate, 220, 660, ms(300), WaveSine, 0.25)
	case CueShieldDown:
		return newSweep(rate, 660, 220, ms(300), WaveSine, 0.2)
	case CueAbsorb:
		return beep.Mix(
			newSweep(rate, 990, 990, ms(90), WaveSquare, 0.12),
			newSweep(rate, 1480, 1480, ms(120), WaveSine, 0.15),
		)
	case CueGust:
		return newBurst(rate, ms(500), 3, 0, 0.12)
	default:
		return nil
	}
}

// withVolume scales a streamer by a linear gain in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// pad voicing: G2, Bb2, D3, F3, A3
var padFreqs = []float64{98.00, 116.54, 146.83, 174.61, 220.00}

const (
	tickFreq    = 1760.0
	tickDecay   = 0.03 // seconds
	tickPerHit  = 0.015
	maxTick     = 0.5
	volume      = 0.25
	delaySecs   = 0.6
	minCutoff   = 300.0
	cutoffRange = 900.0
)

// Synth turns the world into sound: an ambient pad whose low-pass opens with
// the mean body speed, and a short tick for every collision. Update is called
// from the frame loop and Render from the audio callback.
type Synth struct {
	mu      sync.Mutex
	speed   float64
	pending int

	speedSmooth float64
	tick        float64
	time        float64
	filter      [2]float64
	delay       [2][]float64
	head        int

	// smoothed band levels, guarded by mu
	bass, mid, high float64
	spectrum        []float64
}

func NewSynth() *Synth {
	n := int(SampleRate * delaySecs)
	return &Synth{
		delay:    [2][]float64{make([]float64, n), make([]float64, n)},
		spectrum: make([]float64, BufferSize),
	}
}

// Update records this frame's mean speed and adds its collisions to the
// ticks waiting to be played.
func (s *Synth) Update(meanSpeed float64, collisions int) {
	s.mu.Lock()
	s.speed = meanSpeed
	s.pending += collisions
	s.mu.Unlock()
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// lpf is a one-pole low-pass filter.
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Render fills a stereo buffer. Its signature matches an output-only
// portaudio callback.
func (s *Synth) Render(out [][]float32) {
	s.mu.Lock()
	target := s.speed
	hits := s.pending
	s.pending = 0
	s.mu.Unlock()

	s.tick = math.Min(s.tick+float64(hits)*tickPerHit, maxTick)

	dt := 1.0 / float64(SampleRate)
	decay := math.Exp(-dt / tickDecay)

	for i := range out[0] {
		s.speedSmooth = s.speedSmooth*0.9995 + target*0.0005
		cutoff := minCutoff + math.Min(s.speedSmooth*300.0, cutoffRange)

		var left, right float64
		g := 1.0 / float64(len(padFreqs))
		for j, f := range padFreqs {
			lfo := math.Sin(s.time*0.2 + float64(j))
			left += triangle(s.time*f*0.999) * g * (0.7 + 0.3*lfo)
			right += triangle(s.time*f*1.001) * g * (0.7 + 0.3*lfo)
		}

		s.filter[0] = lpf(left, cutoff, dt, s.filter[0])
		s.filter[1] = lpf(right, cutoff, dt, s.filter[1])

		tick := s.tick * math.Sin(2*math.Pi*tickFreq*s.time)
		s.tick *= decay

		dl := s.delay[0][s.head]
		dr := s.delay[1][s.head]
		mixL := s.filter[0] + tick + dl*0.3 + dr*0.1
		mixR := s.filter[1] + tick + dr*0.3 + dl*0.1
		s.delay[0][s.head] = mixL * 0.7
		s.delay[1][s.head] = mixR * 0.7
		s.head = (s.head + 1) % len(s.delay[0])

		out[0][i] = float32(clamp(mixL * volume))
		if len(out) > 1 {
			out[1][i] = float32(clamp(mixR * volume))
		}

		s.time += dt
	}

	s.analyse(out[0])
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// analyse splits a windowed spectrum of buf into bass, mid and high bands
// for the level meter.
func (s *Synth) analyse(buf []float32) {
	bass, mid, high := Bands(buf, s.spectrum)
	s.mu.Lock()
	s.bass = s.bass*0.9 + math.Min(bass, 1)*0.1
	s.mid = s.mid*0.9 + math.Min(mid, 1)*0.1
	s.high = s.high*0.9 + math.Min(high, 1)*0.1
	s.mu.Unlock()
}

// Bands returns the mean magnitude of buf's spectrum below ~215 Hz, below
// ~2 kHz and above, using a Hann window. scratch is reused when it is
// large enough.
func Bands(buf []float32, scratch []float64) (bass, mid, high float64) {
	n := len(buf)
	if n < 2 {
		return 0, 0, 0
	}
	if cap(scratch) < n {
		scratch = make([]float64, n)
	}
	scratch = scratch[:n]
	for i, v := range buf {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		scratch[i] = float64(v) * w
	}

	spectrum := fft.FFTReal(scratch)
	binHz := float64(SampleRate) / float64(n)
	var nb, nm, nh int
	for i := 1; i < n/2; i++ {
		mag := cmplx.Abs(spectrum[i]) / float64(n)
		switch hz := float64(i) * binHz; {
		case hz < 215:
			bass += mag
			nb++
		case hz < 2000:
			mid += mag
			nm++
		default:
			high += mag
			nh++
		}
	}
	if nb > 0 {
		bass /= float64(nb)
	}
	if nm > 0 {
		mid /= float64(nm)
	}
	if nh > 0 {
		high /= float64(nh)
	}
	return bass, mid, high
}

// Levels returns the smoothed bass, mid and high levels of recent output.
func (s *Synth) Levels() (bass, mid, high float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bass, s.mid, s.high
}

// Level is the mean of the three band levels.
func (s *Synth) Level() float64 {
	b, m, h := s.Levels()
	return (b + m + h) / 3
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveShape selects the oscillator waveform
type WaveShape int

const (
	ShapeSine WaveShape = iota
	ShapeSquare
	ShapeSaw
	ShapeNoise
)

// tone is a fixed-length oscillator with an optional linear pitch sweep
type tone struct {
	rate     beep.SampleRate
	from, to float64
	shape    WaveShape
	phase    float64
	pos      int
	length   int
	noise    uint32
}

// NewTone returns a streamer that sweeps from one frequency to another over d
func NewTone(rate beep.SampleRate, from, to float64, d time.Duration, shape WaveShape) beep.Streamer {
	return &tone{
		rate:   rate,
		from:   from,
		to:     to,
		shape:  shape,
		length: rate.N(d),
		noise:  0x9e3779b9,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}

		var v float64
		switch t.shape {
		case ShapeSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case ShapeSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case ShapeSaw:
			v = 2 * (t.phase - 0.5)
		case ShapeNoise:
			// xorshift keeps generated buffers reproducible
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 17
			t.noise ^= t.noise << 5
			v = float64(t.noise)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(t.pos) / float64(t.length)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a finite stream with linear attack and release ramps
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, rate beep.SampleRate, total, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales linearly, zero is silent since log2(0) is -Inf
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

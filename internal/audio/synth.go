package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// note is one step of a synthesized sound. A zero freq is a rest.
type note struct {
	freq float64
	dur  time.Duration
	wave waveform
}

type waveform int

const (
	waveSine waveform = iota
	waveSaw
	waveNoise
)

// scores describes every sound as a short note sequence.
var scores = map[Sound][]note{
	SoundGameOver: {
		{440, 180 * time.Millisecond, waveSine},
		{330, 180 * time.Millisecond, waveSine},
		{220, 360 * time.Millisecond, waveSine},
	},
	SoundPowerupSpawn: {
		{660, 80 * time.Millisecond, waveSine},
		{880, 80 * time.Millisecond, waveSine},
	},
	SoundPowerupCollect: {
		{523, 70 * time.Millisecond, waveSine},
		{659, 70 * time.Millisecond, waveSine},
		{784, 140 * time.Millisecond, waveSine},
	},
	SoundCoinLow: {
		{988, 60 * time.Millisecond, waveSine},
		{1319, 120 * time.Millisecond, waveSine},
	},
	SoundCoinHigh: {
		{1319, 60 * time.Millisecond, waveSine},
		{1568, 100 * time.Millisecond, waveSine},
	},
	SoundThrust: {
		{1, 400 * time.Millisecond, waveNoise},
	},
	SoundRunning: {
		{120, 60 * time.Millisecond, waveSaw},
		{0, 90 * time.Millisecond, waveSine},
		{110, 60 * time.Millisecond, waveSaw},
		{0, 90 * time.Millisecond, waveSine},
	},
	SoundLaser: {
		{220, 150 * time.Millisecond, waveSaw},
		{233, 150 * time.Millisecond, waveSaw},
	},
	SoundMusic: {
		{262, 150 * time.Millisecond, waveSine},
		{330, 150 * time.Millisecond, waveSine},
		{392, 150 * time.Millisecond, waveSine},
		{523, 150 * time.Millisecond, waveSine},
		{392, 150 * time.Millisecond, waveSine},
		{330, 150 * time.Millisecond, waveSine},
		{294, 150 * time.Millisecond, waveSine},
		{247, 150 * time.Millisecond, waveSine},
	},
}

// render synthesizes s into a buffer so it can be replayed and looped.
func render(s Sound, sr beep.SampleRate) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	parts := make([]beep.Streamer, 0, len(scores[s]))
	for _, n := range scores[s] {
		parts = append(parts, fadeOut(voiceFor(n, sr), sr.N(n.dur)))
	}
	buf.Append(beep.Seq(parts...))
	return buf
}

// voiceFor returns a streamer that plays n for exactly its duration.
func voiceFor(n note, sr beep.SampleRate) beep.Streamer {
	samples := sr.N(n.dur)
	if n.freq == 0 {
		return beep.Silence(samples)
	}
	switch n.wave {
	case waveSaw:
		return beep.Take(samples, &oscillator{freq: n.freq, rate: sr, wave: waveSaw})
	case waveNoise:
		return beep.Take(samples, &oscillator{rate: sr, wave: waveNoise, rng: rand.New(rand.NewSource(1))})
	default:
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return beep.Silence(samples)
		}
		return beep.Take(samples, tone)
	}
}

// oscillator generates waves the generators package does not provide.
type oscillator struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
	wave  waveform
	rng   *rand.Rand
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val * 0.5
		samples[i][1] = val * 0.5

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fadeOut ramps the last fifth of a total-sample streamer down to silence
// to avoid clicks between notes.
func fadeOut(s beep.Streamer, total int) beep.Streamer {
	return &envelope{streamer: s, total: total, release: total / 5}
}

type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	release  int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	start := e.total - e.release
	for i := range n {
		if e.pos >= start && e.release > 0 {
			gain := float64(e.total-e.pos) / float64(e.release)
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

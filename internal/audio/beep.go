package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Options configures a BeepDevice.
type Options struct {
	SampleRate  int
	MusicVolume float64
}

// BeepDevice mixes every channel into one beep.Mixer. Sounds are synthesized
// once per device and replayed from memory.
//
// Until Open is called the mixer is not attached to a speaker, which lets
// callers pull samples through Streamer.
type BeepDevice struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	mixer    *beep.Mixer
	channels [NumChannels]voice
	music    voice
	sounds   map[Sound]*beep.Buffer
	open     bool
}

type voice struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	level  float64
	done   *atomic.Bool
}

var _ Device = (*BeepDevice)(nil)

// NewBeepDevice creates a device with every channel at full volume.
func NewBeepDevice(opts Options) *BeepDevice {
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	d := &BeepDevice{
		rate:   beep.SampleRate(opts.SampleRate),
		mixer:  &beep.Mixer{},
		sounds: make(map[Sound]*beep.Buffer),
	}
	for i := range d.channels {
		d.channels[i].level = 1
	}
	d.music.level = opts.MusicVolume
	return d
}

// Open attaches the mixer to the system speaker.
func (d *BeepDevice) Open() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open {
		return nil
	}
	if err := speaker.Init(d.rate, d.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(d.mixer)
	d.open = true
	return nil
}

// Streamer exposes the mixed output of every channel.
func (d *BeepDevice) Streamer() beep.Streamer {
	return d.mixer
}

// PlayOnChannel starts s on ch, replacing whatever ch was playing.
func (d *BeepDevice) PlayOnChannel(ch Channel, s Sound, loop bool) {
	if ch < 0 || int(ch) >= NumChannels {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.start(&d.channels[ch], s, loop)
}

// PlayMusic starts the background track.
func (d *BeepDevice) PlayMusic(s Sound, loopForever bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.start(&d.music, s, loopForever)
}

// StopChannel silences ch.
func (d *BeepDevice) StopChannel(ch Channel) {
	if ch < 0 || int(ch) >= NumChannels {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.withSpeaker(func() { d.channels[ch].stop() })
}

// SetVolume sets the level of ch.
func (d *BeepDevice) SetVolume(ch Channel, level float64) {
	if ch < 0 || int(ch) >= NumChannels {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	v := &d.channels[ch]
	v.level = level
	if v.volume != nil {
		d.withSpeaker(func() { applyLevel(v.volume, level) })
	}
}

// Volume returns the level last set on ch.
func (d *BeepDevice) Volume(ch Channel) float64 {
	if ch < 0 || int(ch) >= NumChannels {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.channels[ch].level
}

// Playing reports whether ch has an unfinished sound.
func (d *BeepDevice) Playing(ch Channel) bool {
	if ch < 0 || int(ch) >= NumChannels {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	v := &d.channels[ch]
	return v.ctrl != nil && !v.done.Load()
}

// Close stops every sound and releases the speaker if it was opened.
func (d *BeepDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.withSpeaker(func() {
		for i := range d.channels {
			d.channels[i].stop()
		}
		d.music.stop()
		d.mixer.Clear()
	})
	if d.open {
		speaker.Close()
		d.open = false
	}
	return nil
}

// start must be called with d.mu held.
func (d *BeepDevice) start(v *voice, s Sound, loop bool) {
	buf := d.buffer(s)

	var src beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		src = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	done := new(atomic.Bool)
	ctrl := &beep.Ctrl{Streamer: beep.Seq(src, beep.Callback(func() { done.Store(true) }))}
	vol := &effects.Volume{Streamer: ctrl, Base: 2}
	applyLevel(vol, v.level)

	d.withSpeaker(func() {
		v.stop()
		v.ctrl, v.volume, v.done = ctrl, vol, done
		d.mixer.Add(vol)
	})
}

func (d *BeepDevice) buffer(s Sound) *beep.Buffer {
	if b, ok := d.sounds[s]; ok {
		return b
	}
	b := render(s, d.rate)
	d.sounds[s] = b
	return b
}

// withSpeaker runs fn while the speaker goroutine is paused, if there is one.
func (d *BeepDevice) withSpeaker(fn func()) {
	if d.open {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// stop detaches the voice's streamer; the mixer drops it on the next pull.
func (v *voice) stop() {
	if v.ctrl == nil {
		return
	}
	v.ctrl.Streamer = nil
	v.done.Store(true)
	v.ctrl, v.volume = nil, nil
}

func applyLevel(vol *effects.Volume, level float64) {
	if level <= 0 {
		vol.Volume, vol.Silent = 0, true
		return
	}
	vol.Volume, vol.Silent = math.Log2(level), false
}

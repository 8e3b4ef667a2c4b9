// Package audio plays the game's sound effects on a fixed set of channels.
//
// Each channel holds at most one sound at a time; starting a sound on a busy
// channel replaces what was playing. Music has its own stream outside the
// channels. Playback never blocks the caller.
package audio

// Channel identifies one of the fixed playback channels.
type Channel int

const (
	ChannelSFX Channel = iota
	ChannelCoin
	ChannelThrust
	ChannelRunning
	ChannelPowerup
	ChannelLaser
)

// NumChannels is the number of fixed channels.
const NumChannels = 6

// String returns a human-readable channel name.
func (c Channel) String() string {
	switch c {
	case ChannelSFX:
		return "sfx"
	case ChannelCoin:
		return "coin"
	case ChannelThrust:
		return "thrust"
	case ChannelRunning:
		return "running"
	case ChannelPowerup:
		return "powerup"
	case ChannelLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// Sound identifies a sound effect or music track.
type Sound int

const (
	SoundGameOver Sound = iota
	SoundPowerupSpawn
	SoundPowerupCollect
	SoundCoinLow
	SoundCoinHigh
	SoundThrust
	SoundRunning
	SoundLaser
	SoundMusic
)

// Device is the sound output used by the game.
type Device interface {
	// PlayOnChannel starts s on ch, replacing whatever ch was playing.
	PlayOnChannel(ch Channel, s Sound, loop bool)
	// StopChannel silences ch. Stopping an idle channel is a no-op.
	StopChannel(ch Channel)
	// SetVolume sets the level of ch in [0, 1]. It applies to the current
	// sound and to later ones.
	SetVolume(ch Channel, level float64)
	// Playing reports whether ch has a sound that has not finished.
	Playing(ch Channel) bool
	// PlayMusic starts the background track, replacing any previous one.
	PlayMusic(s Sound, loopForever bool)
	// Close releases the output device.
	Close() error
}

// Nop is a Device that plays nothing. Playing always reports false.
type Nop struct{}

var _ Device = Nop{}

func (Nop) PlayOnChannel(Channel, Sound, bool) {}
func (Nop) StopChannel(Channel)                {}
func (Nop) SetVolume(Channel, float64)         {}
func (Nop) Playing(Channel) bool               { return false }
func (Nop) PlayMusic(Sound, bool)              {}
func (Nop) Close() error                       { return nil }

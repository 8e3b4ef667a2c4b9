package runner

import "github.com/vovakirdan/byte-runner/internal/audio"

// loopState tracks which looping channels the game has started.
type loopState struct {
	thrust  bool
	running bool
	laser   bool
}

// updateMovementSounds keeps the thrust and running loops in step with the
// character.
func (g *Game) updateMovementSounds() {
	g.setLoop(&g.loops.thrust, g.thrusting, audio.ChannelThrust, audio.SoundThrust)
	g.setLoop(&g.loops.running, !g.thrusting && g.onGround(), audio.ChannelRunning, audio.SoundRunning)
}

// updateLaserSound stops the laser hum once no laser is left.
func (g *Game) updateLaserSound() {
	if g.loops.laser && g.countLasers() == 0 {
		g.audio.StopChannel(audio.ChannelLaser)
		g.loops.laser = false
	}
}

func (g *Game) setLoop(on *bool, want bool, ch audio.Channel, s audio.Sound) {
	switch {
	case want && !*on:
		g.audio.PlayOnChannel(ch, s, true)
	case !want && *on:
		g.audio.StopChannel(ch)
	}
	*on = want
}

// stopLoops silences every looping channel.
func (g *Game) stopLoops() {
	g.audio.StopChannel(audio.ChannelThrust)
	g.audio.StopChannel(audio.ChannelRunning)
	g.audio.StopChannel(audio.ChannelLaser)
	g.loops = loopState{}
}

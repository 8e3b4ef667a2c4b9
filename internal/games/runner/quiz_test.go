package runner

import (
	"testing"

	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// startQuiz puts g into a quiz with p pending.
func startQuiz(g *Game, p Power) {
	g.powers.pending = p
	g.powers.hasPending = true
	g.enterQuiz()
}

func answerFrame(option int) core.InputFrame {
	in := core.NewInputFrame()
	in.Answer(option)
	return in
}

func TestQuestionBank(t *testing.T) {
	for _, q := range Questions {
		if n := len(q.Options); n < 3 || n > 4 {
			t.Errorf("%q has %d options, expected 3 or 4", q.Text, n)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			t.Errorf("%q has correct index %d out of range", q.Text, q.Correct)
		}
		if q.Font == "" {
			t.Errorf("%q has no font", q.Text)
		}
	}
}

func TestPowerupPickupBindsPending(t *testing.T) {
	g := newTestGame(t)

	// Two power-ups touch the character in the same dispatch. Only the
	// first may start a quiz.
	place(g, scene.KindPowerup, core.V(150, 100), 60, 60)
	place(g, scene.KindPowerup, core.V(155, 100), 60, 60)

	res := g.Step(core.NewInputFrame())
	if res.State.Mode != core.ModeQuiz {
		t.Fatalf("mode = %v, expected quiz after pickup", res.State.Mode)
	}
	pending, ok := g.Pending()
	if !ok {
		t.Fatal("pickup should record a pending power")
	}
	if n := g.scene.CountKind(scene.KindPowerup); n != 1 {
		t.Errorf("power-ups left = %d, expected the second one untouched", n)
	}
	started, ok := hasEvent(res.Events, core.EventQuizStarted)
	if !ok || started.Power != pending.String() {
		t.Errorf("quiz started event = %+v, expected power %s", started, pending)
	}

	q, _, _ := g.Quiz()
	res = g.Step(answerFrame(q.Correct + 1))

	applied := 0
	for _, ev := range res.Events {
		if ev.Kind == core.EventPowerApplied {
			applied++
			if ev.Power != pending.String() {
				t.Errorf("applied %s, expected the pending %s", ev.Power, pending)
			}
		}
	}
	if applied != 1 {
		t.Errorf("power applied %d times, expected once", applied)
	}
}

func TestWrongAnswerAppliesNothing(t *testing.T) {
	g := newTestGame(t)
	startQuiz(g, PowerShield)

	q, _, _ := g.Quiz()
	wrong := (q.Correct+1)%len(q.Options) + 1
	res := g.Step(answerFrame(wrong))

	if res.State.Mode != core.ModePlaying {
		t.Fatalf("mode = %v, expected playing after an answer", res.State.Mode)
	}
	ans, ok := hasEvent(res.Events, core.EventQuizAnswered)
	if !ok || ans.Correct {
		t.Errorf("answered event = %+v, expected an incorrect answer", ans)
	}
	if _, ok := hasEvent(res.Events, core.EventPowerApplied); ok {
		t.Error("wrong answer must not apply the power")
	}
	if g.powers.shield != 0 {
		t.Error("shield should not be active")
	}
	if _, ok := g.Pending(); ok {
		t.Error("pending power should be cleared on exit")
	}
}

func TestOutOfRangeAnswerIgnored(t *testing.T) {
	g := newTestGame(t)
	startQuiz(g, PowerDistance)
	q, _, _ := g.Quiz()

	for _, opt := range []int{0, -1, len(q.Options) + 1, 9} {
		g.Step(answerFrame(opt))
		if g.mode != core.ModeQuiz {
			t.Fatalf("option %d left the quiz", opt)
		}
	}
}

func TestQuizExpires(t *testing.T) {
	g := newTestGame(t)
	startQuiz(g, PowerDistance)

	res := g.Advance(12.5, core.NewInputFrame())
	if res.State.Mode != core.ModePlaying {
		t.Fatalf("mode = %v, expected playing after the countdown", res.State.Mode)
	}
	if _, ok := hasEvent(res.Events, core.EventQuizExpired); !ok {
		t.Error("expected a quiz expired event")
	}
	if g.distance != 0 {
		t.Errorf("distance = %v, expiry must not grant the bonus", g.distance)
	}
	if g.scene.CountKind(scene.KindUI) != 3 {
		t.Errorf("UI bodies = %d, expected only the HUD after the quiz", g.scene.CountKind(scene.KindUI))
	}
}

func TestQuizFreezesWorld(t *testing.T) {
	g := newTestGame(t)
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	startQuiz(g, PowerSlowdown)

	timers := g.timers
	count := g.scene.Count()
	elapsed := g.elapsed
	bg := g.mustBody(g.backgrounds[0], "background").Centroid()

	for range 120 {
		in := core.NewInputFrame()
		in.Press(core.ActionThrust)
		g.Step(in)
	}

	if g.mode != core.ModeQuiz {
		t.Fatalf("mode = %v, expected quiz for the whole countdown", g.mode)
	}
	if g.timers != timers {
		t.Error("spawn timers must not advance during a quiz")
	}
	if g.scene.Count() != count {
		t.Errorf("body count changed from %d to %d during the quiz", count, g.scene.Count())
	}
	if g.elapsed != elapsed {
		t.Error("run time must not advance during a quiz")
	}
	if g.mustBody(g.backgrounds[0], "background").Centroid() != bg {
		t.Error("scenery must not move during a quiz")
	}
	if _, remaining, _ := g.Quiz(); remaining > 10.1 || remaining < 9.9 {
		t.Errorf("remaining = %v, expected about 10s", remaining)
	}
}

func TestCorrectAnswerAppliesDistance(t *testing.T) {
	g := newTestGame(t)
	startQuiz(g, PowerDistance)
	q, _, _ := g.Quiz()

	g.Step(answerFrame(q.Correct + 1))
	if g.distance < 100 {
		t.Errorf("distance = %v, expected the 100m bonus", g.distance)
	}
}

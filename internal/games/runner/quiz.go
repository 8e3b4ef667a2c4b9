package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/byte-runner/internal/audio"
	"github.com/vovakirdan/byte-runner/internal/core"
	"github.com/vovakirdan/byte-runner/internal/scene"
)

// Question is a trivia question with one correct option.
type Question struct {
	Text    string
	Options []string
	Correct int // index into Options
	Font    string
}

// Questions is the fixed trivia bank.
var Questions = []Question{
	{"Which keyword starts a goroutine?", []string{"go", "async", "spawn", "thread"}, 0, fontQuiz},
	{"What does a nil map do on write?", []string{"grows", "panics", "ignores it"}, 1, fontQuiz},
	{"Which type is the zero value nil for?", []string{"int", "string", "slice", "struct"}, 2, fontQuiz},
	{"In what order do deferred calls run?", []string{"FIFO", "LIFO", "random"}, 1, fontQuiz},
	{"Which package formats strings?", []string{"strings", "fmt", "text", "io"}, 1, fontQuiz},
	{"What is len of \"héllo\" in bytes?", []string{"5", "6", "4"}, 1, fontQuiz},
	{"Where does iota reset to zero?", []string{"each const block", "each package", "each file"}, 0, fontQuiz},
	{"Which statement waits on channels?", []string{"switch", "select", "wait", "poll"}, 1, fontQuiz},
	{"What does close on a closed channel do?", []string{"nothing", "panics", "blocks"}, 1, fontQuiz},
	{"Which verb prints a Go-syntax value?", []string{"%v", "%+v", "%#v", "%s"}, 2, fontQuiz},
	{"Unbuffered send blocks until...", []string{"a receive", "timeout", "GC runs"}, 0, fontQuiz},
	{"Which tool formats Go code?", []string{"go vet", "gofmt", "golint", "go fix"}, 1, fontQuiz},
	{"Exported names start with...", []string{"an underscore", "a capital", "a dollar"}, 1, fontQuiz},
	{"What does recover return outside a panic?", []string{"nil", "an error", "it panics"}, 0, fontQuiz},
	{"Which interface do errors implement?", []string{"Stringer", "error", "Reader", "any"}, 1, fontQuiz},
	{"Where does a method's receiver go?", []string{"after func", "after the name", "in the body"}, 0, fontQuiz},
	{"Which is Go's only loop keyword?", []string{"while", "loop", "for", "do"}, 2, fontQuiz},
	{"What does append return?", []string{"nothing", "the new slice", "an error"}, 1, fontQuiz},
}

// quizState is the live quiz and the UI bodies that show it.
type quizState struct {
	question  Question
	remaining float64
	countdown scene.Handle
	bodies    []scene.Handle
}

// Quiz returns the question being asked and the seconds left to answer.
func (g *Game) Quiz() (Question, float64, bool) {
	if g.quiz == nil {
		return Question{}, 0, false
	}
	return g.quiz.question, g.quiz.remaining, true
}

// enterQuiz stops play and asks a random question. The pending power must
// already be set.
func (g *Game) enterQuiz() {
	g.mode = core.ModeQuiz
	g.thrusting = false
	g.stopLoops()
	g.audio.PlayOnChannel(audio.ChannelPowerup, audio.SoundPowerupCollect, false)

	q := Questions[g.rng.Intn(len(Questions))]
	g.quiz = &quizState{question: q, remaining: g.cfg.Quiz.TimeLimit}
	g.showQuiz()

	g.emit(core.Event{Kind: core.EventQuizStarted, Power: g.powers.pending.String()})
}

// showQuiz adds the overlay panel, question, options and countdown.
func (g *Game) showQuiz() {
	w := g.cfg.World
	q := g.quiz.question
	add := func(h scene.Handle) { g.quiz.bodies = append(g.quiz.bodies, h) }

	panelW, panelH := w.Width*0.8, w.Height*0.7
	centre := core.V(w.Width/2, w.Height/2)
	add(g.spawnBody(scene.NewBox(centre, panelW, panelH, core.ColorWhite, scene.KindUI), texPanel))

	top := centre.Y() + panelH/2 - 50
	add(g.spawnText(core.V(centre.X(), top), panelW-40, 30, q.Text, q.Font, core.ColorCyan))
	for i, opt := range q.Options {
		y := top - 60 - float64(i)*40
		add(g.spawnText(core.V(centre.X(), y), panelW-80, 30, fmt.Sprintf("%d) %s", i+1, opt), q.Font, core.ColorWhite))
	}

	g.quiz.countdown = g.spawnText(core.V(centre.X(), centre.Y()-panelH/2+30), 200, 30, "", fontHUD, core.ColorOrange)
	add(g.quiz.countdown)
	g.updateCountdown()
}

func (g *Game) updateCountdown() {
	g.setText(g.quiz.countdown, fmt.Sprintf("%.0fs", math.Ceil(g.quiz.remaining)))
}

// updateQuiz runs the countdown. Nothing else moves during a quiz.
func (g *Game) updateQuiz(dt float64) {
	g.quiz.remaining -= dt
	if g.quiz.remaining <= 0 {
		g.emit(core.Event{Kind: core.EventQuizExpired, Power: g.powers.pending.String()})
		g.exitQuiz(false)
		return
	}
	g.updateCountdown()
}

// answer handles a 1-based option key. Options outside the question are
// ignored.
func (g *Game) answer(option int) {
	if g.quiz == nil || option < 1 || option > len(g.quiz.question.Options) {
		return
	}
	correct := option-1 == g.quiz.question.Correct
	g.emit(core.Event{Kind: core.EventQuizAnswered, Power: g.powers.pending.String(), Correct: correct})
	g.exitQuiz(correct)
}

// exitQuiz returns to Playing, applying the pending power only when the
// answer was correct.
func (g *Game) exitQuiz(correct bool) {
	for _, h := range g.quiz.bodies {
		g.scene.RemoveHandle(h)
	}
	if correct && g.powers.hasPending {
		g.apply(g.powers.pending)
	}
	g.powers.hasPending = false
	g.quiz = nil
	g.mode = core.ModePlaying
}

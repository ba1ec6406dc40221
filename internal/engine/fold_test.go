package engine

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestFold(policy Policy, apples ...snake.Cell) *Fold {
	if len(apples) == 0 {
		apples = []snake.Cell{{X: 0, Y: 0}}
	}
	return NewFold(20, policy, snake.NewFixedSpawner(apples...))
}

func TestFoldStartsNotStarted(t *testing.T) {
	f := newTestFold(PolicyImmediate)
	w := f.World()
	if w.Status != snake.StatusNotStarted {
		t.Fatalf("status = %v, want NotStarted", w.Status)
	}
	if f.Direction() != snake.DirLeft {
		t.Fatalf("direction = %v, want Left", f.Direction())
	}
	if w.Points != 0 || len(w.Snake) != 5 {
		t.Fatalf("unexpected initial world %+v", w)
	}
}

func TestFoldIgnoresDirectionUnlessPlaying(t *testing.T) {
	f := newTestFold(PolicyImmediate)
	if f.Handle(core.ActionUp) {
		t.Fatal("direction accepted before start")
	}
	f.Toggle()
	f.Toggle()
	if f.World().Status != snake.StatusPaused {
		t.Fatalf("status = %v, want Paused", f.World().Status)
	}
	if f.Handle(core.ActionDown) {
		t.Fatal("direction accepted while paused")
	}
	if f.Direction() != snake.DirLeft {
		t.Fatalf("direction = %v, want Left", f.Direction())
	}
}

func TestFoldTickIgnoredUnlessPlaying(t *testing.T) {
	f := newTestFold(PolicyImmediate)
	before := f.World()
	f.Tick()
	if f.World().Head() != before.Head() {
		t.Fatal("tick moved the snake before start")
	}
}

func TestFoldOppositeIgnoredOnNextTick(t *testing.T) {
	for _, policy := range []Policy{PolicyImmediate, PolicyBuffered} {
		t.Run(policy.String(), func(t *testing.T) {
			f := newTestFold(policy)
			f.Toggle()
			if f.Steer(snake.DirRight) {
				t.Fatal("reversal accepted")
			}
			f.Tick()
			if got, want := f.World().Head(), (snake.Cell{X: 8, Y: 10}); got != want {
				t.Fatalf("head = %v, want %v", got, want)
			}
		})
	}
}

func TestFoldImmediateAllowsTwoTurnsBetweenTicks(t *testing.T) {
	f := newTestFold(PolicyImmediate)
	f.Toggle()
	if !f.Steer(snake.DirUp) {
		t.Fatal("up rejected")
	}
	// Right is judged against Up, so it is accepted and folds the snake
	// back onto its neck.
	if !f.Steer(snake.DirRight) {
		t.Fatal("right rejected")
	}
	f.Tick()
	w := f.World()
	if w.Status != snake.StatusGameOver {
		t.Fatalf("status = %v, want GameOver", w.Status)
	}
	if got, want := w.Head(), (snake.Cell{X: 9, Y: 10}); got != want {
		t.Fatalf("head = %v, want %v (move discarded)", got, want)
	}
}

func TestFoldBufferedLastValidKeyWins(t *testing.T) {
	f := newTestFold(PolicyBuffered)
	f.Toggle()
	f.Steer(snake.DirUp)
	if f.Steer(snake.DirRight) {
		t.Fatal("right accepted against last moved direction Left")
	}
	f.Steer(snake.DirDown)
	f.Tick()
	if got, want := f.World().Head(), (snake.Cell{X: 9, Y: 11}); got != want {
		t.Fatalf("head = %v, want %v", got, want)
	}
	// Reference is now Down.
	if f.Steer(snake.DirUp) {
		t.Fatal("up accepted while heading Down")
	}
	if !f.Steer(snake.DirRight) {
		t.Fatal("right rejected while heading Down")
	}
}

func TestFoldEatGrowsAndScores(t *testing.T) {
	f := newTestFold(PolicyImmediate, snake.Cell{X: 8, Y: 10}, snake.Cell{X: 3, Y: 3})
	f.Toggle()
	f.Tick()
	w := f.World()
	if w.Points != 1 || len(w.Snake) != 6 {
		t.Fatalf("points=%d len=%d, want 1 and 6", w.Points, len(w.Snake))
	}
	if w.Apple != (snake.Cell{X: 3, Y: 3}) {
		t.Fatalf("apple = %v, want (3,3)", w.Apple)
	}
}

func TestFoldRestartAfterGameOver(t *testing.T) {
	f := newTestFold(PolicyImmediate, snake.Cell{X: 8, Y: 10}, snake.Cell{X: 0, Y: 0}, snake.Cell{X: 5, Y: 5})
	f.Toggle()
	f.Tick() // eat
	f.Steer(snake.DirUp)
	for i := 0; i < 20 && !f.Over(); i++ {
		f.Tick()
	}
	if !f.Over() {
		t.Fatal("expected wall collision")
	}
	if f.World().Points != 1 {
		t.Fatalf("points at game over = %d, want 1", f.World().Points)
	}

	if !f.Toggle() {
		t.Fatal("toggle after GameOver did not restart")
	}
	w := f.World()
	if w.Status != snake.StatusPlaying {
		t.Fatalf("status = %v, want Playing", w.Status)
	}
	if w.Points != 0 {
		t.Fatalf("points = %d, want 0", w.Points)
	}
	if w.Apple != (snake.Cell{X: 5, Y: 5}) {
		t.Fatalf("apple = %v, want freshly spawned (5,5)", w.Apple)
	}
	if f.Direction() != snake.DirLeft {
		t.Fatalf("direction = %v, want Left", f.Direction())
	}
	if got, want := w.Head(), (snake.Cell{X: 9, Y: 10}); got != want {
		t.Fatalf("head = %v, want %v", got, want)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"", PolicyImmediate, false},
		{"immediate", PolicyImmediate, false},
		{"buffered", PolicyBuffered, false},
		{"queued", PolicyImmediate, true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

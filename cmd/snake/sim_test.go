package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestParseEvents(t *testing.T) {
	got, err := parseEvents(" space, tick ,ArrowUp,,TICK ")
	if err != nil {
		t.Fatalf("parseEvents: %v", err)
	}
	want := []string{core.KeySpace, "tick", core.KeyArrowUp, "tick"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("parseEvents = %q, want %q", got, want)
	}

	if _, err := parseEvents(" , "); err == nil {
		t.Fatal("expected error for an empty event list")
	}
}

func TestParseCells(t *testing.T) {
	got, err := parseCells("8,10; 3, 3")
	if err != nil {
		t.Fatalf("parseCells: %v", err)
	}
	if len(got) != 2 || got[0] != (snake.Cell{X: 8, Y: 10}) || got[1] != (snake.Cell{X: 3, Y: 3}) {
		t.Fatalf("parseCells = %v", got)
	}
	for _, bad := range []string{"8", "a,1", "1,b"} {
		if _, err := parseCells(bad); err == nil {
			t.Errorf("parseCells(%q) accepted", bad)
		}
	}
}

func TestSimulate(t *testing.T) {
	fold := engine.NewFold(20, engine.PolicyImmediate, snake.NewFixedSpawner(snake.Cell{X: 8, Y: 10}, snake.Cell{X: 3, Y: 3}))
	steps, err := parseEvents("space,tick,ArrowUp,tick,x")
	if err != nil {
		t.Fatalf("parseEvents: %v", err)
	}

	var out bytes.Buffer
	simulate(&out, fold, steps, log.New(io.Discard))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// Header plus one line per recognized step; the unknown key is skipped.
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out.String())
	}
	checks := []struct {
		line int
		want string
	}{
		{0, "status=not_started"},
		{1, "status=playing"},
		{2, "points=1 length=6 head=(8,10) apple=(3,3)"},
		{4, "head=(8,9)"},
	}
	for _, c := range checks {
		if !strings.Contains(lines[c.line], c.want) {
			t.Errorf("line %d = %q, want it to contain %q", c.line, lines[c.line], c.want)
		}
	}
}

func TestDrawBoard(t *testing.T) {
	w := snake.NewWorld(20, snake.NewFixedSpawner(snake.Cell{X: 0, Y: 0}))
	w.Status = snake.StatusPlaying

	var out bytes.Buffer
	drawBoard(&out, w, 20)
	board := out.String()
	for _, want := range []string{"O", "oooo", "*", "Points: 0"} {
		if !strings.Contains(board, want) {
			t.Errorf("board missing %q:\n%s", want, board)
		}
	}
}

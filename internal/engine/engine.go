package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultQueueSize is the input queue capacity used when Options leaves it zero.
const DefaultQueueSize = 32

var (
	// ErrAlreadyRunning is returned by Run when the loop is already active.
	ErrAlreadyRunning = errors.New("engine: already running")
	// ErrInvalidOptions wraps every validation failure from New.
	ErrInvalidOptions = errors.New("engine: invalid options")
)

// Options configures an Engine. Zero values pick defaults where one exists.
type Options struct {
	BoardSize int
	Pacing    snake.Pacing
	Policy    Policy
	Spawner   snake.Spawner // Uniform over the board, seeded from the clock, when nil
	Clock     Clock         // SystemClock when nil
	Logger    *log.Logger   // Discards when nil
	Metrics   *Metrics      // Records nothing when nil
	QueueSize int
}

// Engine owns a World on a single goroutine and drives it from keyboard
// actions and clock ticks.
type Engine struct {
	opts    Options
	logger  *log.Logger
	metrics *Metrics

	inputs  chan core.Action
	updates chan snake.World
	current atomic.Pointer[snake.World]
	running atomic.Bool

	// Loop-owned state.
	fold     *Fold
	runID    string
	ticker   Ticker
	clockKey clockKey
}

// clockKey is what the live ticker was derived from.
type clockKey struct {
	playing bool
	points  int
}

// New validates opts and returns an engine positioned at a fresh
// NotStarted world.
func New(opts Options) (*Engine, error) {
	if opts.BoardSize < snake.MinBoardSize {
		return nil, fmt.Errorf("%w: board size %d is below %d", ErrInvalidOptions, opts.BoardSize, snake.MinBoardSize)
	}
	if err := opts.Pacing.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if opts.QueueSize < 0 {
		return nil, fmt.Errorf("%w: negative queue size", ErrInvalidOptions)
	}
	if opts.QueueSize == 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.Spawner == nil {
		opts.Spawner = snake.UniformSpawner{Rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		opts:    opts,
		logger:  logger,
		metrics: opts.Metrics,
		inputs:  make(chan core.Action, opts.QueueSize),
		updates: make(chan snake.World, 1),
		fold:    NewFold(opts.BoardSize, opts.Policy, opts.Spawner),
	}
	e.beginRun()
	w := e.fold.World()
	e.current.Store(&w)
	return e, nil
}

// BoardSize returns the configured board edge length.
func (e *Engine) BoardSize() int {
	return e.opts.BoardSize
}

// Current returns the latest committed world. Safe for concurrent use.
func (e *Engine) Current() snake.World {
	return *e.current.Load()
}

// Updates delivers every committed world. When the reader lags only the
// newest world is kept.
func (e *Engine) Updates() <-chan snake.World {
	return e.updates
}

// Send queues an action without blocking. It reports false when the
// action is ActionNone or the queue is full.
func (e *Engine) Send(a core.Action) bool {
	if a == core.ActionNone {
		return false
	}
	select {
	case e.inputs <- a:
		return true
	default:
		e.metrics.inputDropped()
		e.logger.Warn("input queue full, dropping action", "action", a)
		return false
	}
}

// SendKey maps a raw key name to an action and queues it. Unknown keys are
// ignored.
func (e *Engine) SendKey(key string) bool {
	return e.Send(core.ActionForKey(key))
}

// Run processes events until ctx is done. It returns ctx.Err() on
// cancellation, or an error wrapping the invariant that a transition
// violated.
func (e *Engine) Run(ctx context.Context) (err error) {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)
	defer e.stopClock()
	defer func() {
		if r := recover(); r != nil {
			err = e.aborted(r)
		}
	}()

	e.publish()
	for {
		if err := e.play(ctx); err != nil {
			return err
		}
		w := e.fold.World()
		e.logger.Info("run completed", "run", e.runID, "points", w.Points, "length", len(w.Snake))
		if err := e.awaitRestart(ctx); err != nil {
			return err
		}
	}
}

// play consumes events until the current run reaches GameOver.
//
// When a tick wins the select, every queued input is applied before the
// tick, including keys that were queued after the ticker fired. Inputs keep
// their order among themselves; a tick never sees a key queued ahead of it
// left unapplied.
func (e *Engine) play(ctx context.Context) error {
	for !e.fold.Over() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a := <-e.inputs:
			e.apply(a)
		case <-e.tickC():
			// Keys queued before this tick was picked steer it.
			e.drainInputs()
			e.tick()
		}
	}
	return nil
}

// awaitRestart idles after GameOver until a toggle starts the next run.
// Direction keys are discarded.
func (e *Engine) awaitRestart(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a := <-e.inputs:
			if a != core.ActionToggle {
				continue
			}
			prev := e.fold.World()
			if e.fold.Toggle() {
				e.beginRun()
			}
			e.commit(prev)
			return nil
		}
	}
}

func (e *Engine) drainInputs() {
	for {
		select {
		case a := <-e.inputs:
			e.apply(a)
		default:
			return
		}
	}
}

func (e *Engine) apply(a core.Action) {
	prev := e.fold.World()
	if !e.fold.Handle(a) {
		return
	}
	if a.IsDirection() {
		e.logger.Debug("direction accepted", "run", e.runID, "direction", e.fold.Direction())
		return
	}
	e.logger.Debug("status toggled", "run", e.runID, "from", prev.Status, "to", e.fold.World().Status)
	e.commit(prev)
}

func (e *Engine) tick() {
	prev := e.fold.World()
	if prev.Status != snake.StatusPlaying {
		return
	}
	e.fold.Tick()
	e.metrics.tick()
	e.commit(prev)
}

// commit records what changed between prev and the fold's world, re-derives
// the clock and publishes.
func (e *Engine) commit(prev snake.World) {
	w := e.fold.World()
	if w.Points > prev.Points {
		e.metrics.appleEaten()
		e.logger.Debug("apple eaten", "run", e.runID, "points", w.Points, "apple", w.Apple)
	}
	if w.Status == snake.StatusGameOver && prev.Status != snake.StatusGameOver {
		e.metrics.gameOver()
		e.logger.Info("game over", "run", e.runID, "points", w.Points, "head", w.Head())
	}
	e.metrics.setPoints(w.Points)
	e.reconcileClock()
	e.publish()
}

func (e *Engine) beginRun() {
	e.runID = uuid.NewString()
	e.metrics.runStarted()
	e.logger.Info("run started", "run", e.runID, "board", e.opts.BoardSize, "policy", e.opts.Policy)
}

// reconcileClock keeps exactly one ticker alive while Playing, recreated
// whenever the points it was derived from change.
func (e *Engine) reconcileClock() {
	w := e.fold.World()
	key := clockKey{playing: w.Status == snake.StatusPlaying, points: w.Points}
	if key == e.clockKey && (e.ticker != nil) == key.playing {
		return
	}
	e.stopClock()
	e.clockKey = key
	if !key.playing {
		e.metrics.setInterval(0)
		return
	}
	d := snake.Interval(w.Points, e.opts.Pacing)
	e.ticker = e.opts.Clock.NewTicker(d)
	e.metrics.setInterval(d)
	e.logger.Debug("clock restarted", "run", e.runID, "interval", d)
}

func (e *Engine) stopClock() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

// tickC returns nil when no ticker is live, which blocks its select case.
func (e *Engine) tickC() <-chan time.Time {
	if e.ticker == nil {
		return nil
	}
	return e.ticker.C()
}

func (e *Engine) publish() {
	w := e.fold.World()
	e.current.Store(&w)
	select {
	case e.updates <- w:
		return
	default:
	}
	// Drop the stale world the reader has not picked up yet.
	select {
	case <-e.updates:
	default:
	}
	select {
	case e.updates <- w:
	default:
	}
}

func (e *Engine) aborted(r any) error {
	var err error
	if cause, ok := r.(error); ok {
		err = fmt.Errorf("engine: transition aborted: %w", cause)
	} else {
		err = fmt.Errorf("engine: transition aborted: %v", r)
	}
	e.logger.Error("invariant violated", "run", e.runID, "error", err)
	return err
}

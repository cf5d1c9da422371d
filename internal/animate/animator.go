package animate

import (
	"sync"
)

// Frame is one emitted display update.
type Frame struct {
	// Value is what the view shows: floored for integral formats, the raw
	// accumulator otherwise, and exactly the target on the final frame.
	Value float64
	// Raw is the accumulator at this frame.
	Raw float64
	// Tick counts timer ticks since Start (0 for a synchronous final frame).
	Tick int
	// Final marks the last frame. Nothing is emitted after it.
	Final bool
}

// Animator runs one count-up toward a fixed target. It is not restartable;
// start a new one for a new target.
//
// emit runs without the state lock held, so it may read the animator
// (Frame, Done, Target) but must not Stop it: Stop waits for an in-flight
// emit to return.
type Animator struct {
	// emitMu serializes ticks and lets Stop wait out an emit in flight.
	emitMu sync.Mutex

	mu        sync.Mutex
	target    float64
	increment float64
	acc       float64
	steps     int
	ticks     int
	format    Format
	emit      func(Frame)
	cancel    CancelFunc
	last      Frame
	done      bool
}

// Start validates cfg and begins animating from zero toward target on s.
// A zero Duration emits the final frame before Start returns and schedules
// nothing.
func Start(s Scheduler, target float64, cfg Config, format Format, emit func(Frame)) (*Animator, error) {
	a, err := newAnimator(target, cfg, format, emit)
	if err != nil {
		return nil, err
	}
	a.begin(s, cfg)
	return a, nil
}

func newAnimator(target float64, cfg Config, format Format, emit func(Frame)) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if emit == nil {
		emit = func(Frame) {}
	}
	return &Animator{
		target:    target,
		increment: target / float64(cfg.Steps),
		steps:     cfg.Steps,
		format:    format,
		emit:      emit,
	}, nil
}

// begin schedules the ticks, or emits the final frame right away for a zero
// Duration.
func (a *Animator) begin(s Scheduler, cfg Config) {
	if cfg.Duration == 0 {
		a.emitMu.Lock()
		defer a.emitMu.Unlock()

		a.mu.Lock()
		if a.done {
			a.mu.Unlock()
			return
		}
		f := a.finishLocked()
		a.mu.Unlock()
		a.emit(f)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.done {
		a.cancel = s.Every(cfg.Period(), a.tick)
	}
}

func (a *Animator) tick() {
	a.emitMu.Lock()
	defer a.emitMu.Unlock()

	if f, ok := a.advance(); ok {
		a.emit(f)
	}
}

// advance moves the accumulator one step and returns the frame to emit.
func (a *Animator) advance() (Frame, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.done {
		return Frame{}, false
	}

	a.ticks++
	a.acc += a.increment

	// The step cap keeps floating-point drift from adding an extra tick.
	if a.acc >= a.target || a.ticks >= a.steps {
		return a.finishLocked(), true
	}

	a.last = Frame{
		Value: a.format.display(a.acc),
		Raw:   a.acc,
		Tick:  a.ticks,
	}
	return a.last, true
}

// finishLocked lands on the target, releases the timer and returns the final
// frame. Caller holds a.mu.
func (a *Animator) finishLocked() Frame {
	a.done = true
	a.acc = a.target
	a.releaseLocked()
	a.last = Frame{
		Value: a.target,
		Raw:   a.target,
		Tick:  a.ticks,
		Final: true,
	}
	return a.last
}

func (a *Animator) releaseLocked() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// Stop releases the timer. No frame is emitted once Stop returns.
// Stopping a finished animator does nothing. Stop must not be called from
// the animator's own emit.
func (a *Animator) Stop() {
	a.mu.Lock()
	a.done = true
	a.releaseLocked()
	a.mu.Unlock()

	a.emitMu.Lock()
	a.emitMu.Unlock() //nolint:staticcheck // waits for an emit in flight
}

// Frame returns the most recent frame, or the zero frame before the first tick.
func (a *Animator) Frame() Frame {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

// Done reports whether the animator has finished or been stopped.
func (a *Animator) Done() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

// Target returns the value the animation lands on.
func (a *Animator) Target() float64 {
	return a.target
}

package animate

import (
	"sync"

	"github.com/rileyhilliard/medstock/internal/errors"
)

// Metric is a view-owned animated value. Each target change stops the
// running animation and counts up again from zero; Close releases the timer
// for good.
type Metric struct {
	// opMu serializes SetTarget and Close. mu guards the fields below and
	// is never held while a frame is emitted.
	opMu sync.Mutex

	mu      sync.Mutex
	sched   Scheduler
	cfg     Config
	format  Format
	emit    func(Frame)
	anim    *Animator
	target  float64
	started bool
	closed  bool
}

// NewMetric validates cfg up front so a bad configuration surfaces when the
// view is built rather than on the first target.
//
// emit may read the metric (Frame, Text, Settled, Target) to render the
// value it was called for. It must not call SetTarget or Close.
func NewMetric(s Scheduler, cfg Config, format Format, emit func(Frame)) (*Metric, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Metric{
		sched:  s,
		cfg:    cfg,
		format: format,
		emit:   emit,
	}, nil
}

// SetTarget starts animating toward target. Setting the target the metric is
// already animating to does nothing.
func (m *Metric) SetTarget(target float64) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return errors.New(errors.ErrAnimation,
			"Metric is closed",
			"Create a new metric after the view is torn down")
	}
	if m.started && target == m.target {
		m.mu.Unlock()
		return nil
	}
	prev := m.anim
	m.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}

	anim, err := newAnimator(target, m.cfg, m.format, m.emit)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.anim = anim
	m.target = target
	m.started = true
	m.mu.Unlock()

	anim.begin(m.sched, m.cfg)
	return nil
}

// Close stops any running animation. It is safe to call more than once.
func (m *Metric) Close() {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	anim := m.anim
	m.closed = true
	m.mu.Unlock()

	if anim != nil {
		anim.Stop()
	}
}

// Frame returns the latest frame of the current animation.
func (m *Metric) Frame() Frame {
	m.mu.Lock()
	anim := m.anim
	m.mu.Unlock()

	if anim == nil {
		return Frame{}
	}
	return anim.Frame()
}

// Text renders the latest frame with the metric's format.
func (m *Metric) Text() string {
	return m.format.Render(m.Frame().Value)
}

// Settled reports whether the current animation has emitted its final frame.
// A metric with no target yet is not settled.
func (m *Metric) Settled() bool {
	return m.Frame().Final
}

// Target returns the most recent target, or zero before the first one.
func (m *Metric) Target() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.target
}

// Format returns the display format.
func (m *Metric) Format() Format {
	return m.format
}

package animate

import (
	"fmt"
	"sync"

	"github.com/rileyhilliard/medstock/internal/errors"
)

// Board is the set of animated metrics owned by one view. Frames from every
// metric are coalesced into a single Updates signal so a render loop can
// redraw at most once per wake-up without ever blocking a timer.
type Board struct {
	sched Scheduler
	cfg   Config

	mu      sync.Mutex
	metrics map[string]*Metric
	order   []string
	closed  bool

	updates   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewBoard validates cfg and returns an empty board.
func NewBoard(s Scheduler, cfg Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Board{
		sched:   s,
		cfg:     cfg,
		metrics: make(map[string]*Metric),
		updates: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}, nil
}

// Add registers a metric under key.
func (b *Board) Add(key string, format Format) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errors.New(errors.ErrAnimation, "Board is closed", "")
	}
	if _, ok := b.metrics[key]; ok {
		return errors.New(errors.ErrAnimation,
			fmt.Sprintf("Metric %q already exists", key),
			"Use a unique key per card")
	}

	m, err := NewMetric(b.sched, b.cfg, format, func(Frame) { b.notify() })
	if err != nil {
		return err
	}
	b.metrics[key] = m
	b.order = append(b.order, key)
	return nil
}

// notify never blocks: one pending signal is enough for any number of frames.
func (b *Board) notify() {
	select {
	case b.updates <- struct{}{}:
	default:
	}
}

func (b *Board) metric(key string) (*Metric, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, ok := b.metrics[key]
	if !ok {
		return nil, errors.New(errors.ErrAnimation,
			fmt.Sprintf("Unknown metric %q", key),
			"Add the metric to the board first")
	}
	return m, nil
}

// SetTarget retargets the metric under key.
func (b *Board) SetTarget(key string, target float64) error {
	m, err := b.metric(key)
	if err != nil {
		return err
	}
	return m.SetTarget(target)
}

// Frame returns the latest frame for key (zero frame for unknown keys).
func (b *Board) Frame(key string) Frame {
	m, err := b.metric(key)
	if err != nil {
		return Frame{}
	}
	return m.Frame()
}

// Text returns the rendered value for key.
func (b *Board) Text(key string) string {
	m, err := b.metric(key)
	if err != nil {
		return ""
	}
	return m.Text()
}

// Keys returns metric keys in the order they were added.
func (b *Board) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.order...)
}

// Settled reports whether every metric has reached its target.
func (b *Board) Settled() bool {
	b.mu.Lock()
	metrics := make([]*Metric, 0, len(b.order))
	for _, k := range b.order {
		metrics = append(metrics, b.metrics[k])
	}
	b.mu.Unlock()

	for _, m := range metrics {
		if !m.Settled() {
			return false
		}
	}
	return true
}

// Updates signals that at least one frame was emitted since the last receive.
func (b *Board) Updates() <-chan struct{} {
	return b.updates
}

// Done is closed by Close.
func (b *Board) Done() <-chan struct{} {
	return b.done
}

// Close tears down every metric. No frame is emitted after Close returns.
func (b *Board) Close() {
	b.mu.Lock()
	b.closed = true
	metrics := make([]*Metric, 0, len(b.metrics))
	for _, m := range b.metrics {
		metrics = append(metrics, m)
	}
	b.mu.Unlock()

	for _, m := range metrics {
		m.Close()
	}
	b.closeOnce.Do(func() { close(b.done) })
}

package animate

import (
	"sync"
	"testing"
	"time"

	"github.com/rileyhilliard/medstock/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{Duration: time.Second, Steps: 10}

func TestNewMetric_InvalidConfig(t *testing.T) {
	m, err := NewMetric(NewManualClock(), Config{Duration: time.Second}, Format{}, nil)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.True(t, errors.IsCode(err, errors.ErrAnimation))
}

func TestMetric_BeforeFirstTarget(t *testing.T) {
	m, err := NewMetric(NewManualClock(), testConfig, Format{Suffix: "%"}, nil)
	require.NoError(t, err)

	assert.Equal(t, Frame{}, m.Frame())
	assert.Equal(t, "0%", m.Text())
	assert.False(t, m.Settled())
	assert.Equal(t, 0.0, m.Target())
}

func TestMetric_RetargetRestartsFromZero(t *testing.T) {
	clock := NewManualClock()
	rec := &recorder{}
	m, err := NewMetric(clock, testConfig, Format{}, rec.emit)
	require.NoError(t, err)

	require.NoError(t, m.SetTarget(100))
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 50.0, m.Frame().Value)

	require.NoError(t, m.SetTarget(200))
	assert.Equal(t, 1, clock.Pending(), "old timer released, new one running")
	assert.Equal(t, Frame{}, m.Frame(), "new run starts from zero")

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 20.0, m.Frame().Value)

	clock.Advance(time.Second)
	assert.Equal(t, 200.0, m.Frame().Value)
	assert.True(t, m.Settled())
	assert.Equal(t, 200.0, m.Target())
	assert.Equal(t, 0, clock.Pending())
}

func TestMetric_SameTargetIsNoop(t *testing.T) {
	clock := NewManualClock()
	m, err := NewMetric(clock, testConfig, Format{}, nil)
	require.NoError(t, err)

	require.NoError(t, m.SetTarget(100))
	clock.Advance(300 * time.Millisecond)

	require.NoError(t, m.SetTarget(100))
	assert.Equal(t, 30.0, m.Frame().Value, "animation keeps running")
	assert.Equal(t, 1, clock.Pending())
}

func TestMetric_CloseReleasesTimer(t *testing.T) {
	clock := NewManualClock()
	rec := &recorder{}
	m, err := NewMetric(clock, testConfig, Format{}, rec.emit)
	require.NoError(t, err)

	require.NoError(t, m.SetTarget(100))
	clock.Advance(200 * time.Millisecond)
	m.Close()

	assert.Equal(t, 0, clock.Pending())
	clock.Advance(5 * time.Second)
	assert.Len(t, rec.frames, 2)

	err = m.SetTarget(5)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAnimation))

	// Closing twice is fine
	m.Close()
}

func TestMetric_CloseWithoutTarget(t *testing.T) {
	m, err := NewMetric(NewManualClock(), testConfig, Format{}, nil)
	require.NoError(t, err)
	m.Close()
	assert.Equal(t, Frame{}, m.Frame())
}

func TestMetric_Text(t *testing.T) {
	clock := NewManualClock()
	m, err := NewMetric(clock, testConfig, Format{Decimals: 2, Prefix: "$"}, nil)
	require.NoError(t, err)

	require.NoError(t, m.SetTarget(12480.5))
	clock.Advance(time.Second)

	assert.Equal(t, "$12,480.50", m.Text())
	assert.Equal(t, 2, m.Format().Decimals)
}

func TestMetric_EmitCanReadItsOwnValue(t *testing.T) {
	clock := NewManualClock()
	var m *Metric
	var texts []string
	m, err := NewMetric(clock, Config{Duration: time.Second, Steps: 4}, Format{}, func(Frame) {
		texts = append(texts, m.Text())
	})
	require.NoError(t, err)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		assert.NoError(t, m.SetTarget(8))
		clock.Advance(time.Second)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("emit reading Metric.Text never returned")
	}
	assert.Equal(t, []string{"2", "4", "6", "8"}, texts)
	assert.True(t, m.Settled())
}

func TestMetric_EmitReadsSynchronousFinalFrame(t *testing.T) {
	var m *Metric
	var got Frame
	m, err := NewMetric(NewManualClock(), Config{Duration: 0, Steps: 10}, Format{}, func(Frame) {
		got = m.Frame()
	})
	require.NoError(t, err)

	require.NoError(t, m.SetTarget(42))
	assert.Equal(t, Frame{Value: 42, Raw: 42, Final: true}, got, "emit sees the new run, not the old one")
}

func TestMetric_StopWaitsForEmitInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var emitted []Frame
	var mu sync.Mutex

	m, err := NewMetric(TickerScheduler{}, Config{Duration: 20 * time.Millisecond, Steps: 2}, Format{}, func(f Frame) {
		mu.Lock()
		first := len(emitted) == 0
		emitted = append(emitted, f)
		mu.Unlock()
		if first {
			close(entered)
			<-release
		}
	})
	require.NoError(t, err)
	require.NoError(t, m.SetTarget(10))
	<-entered

	closed := make(chan struct{})
	go func() {
		m.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while a frame was still being emitted")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)
	<-closed

	mu.Lock()
	n := len(emitted)
	mu.Unlock()
	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, emitted, n, "no frames after Close returns")
}

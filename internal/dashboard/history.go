package dashboard

import (
	"sync"

	"github.com/rileyhilliard/medstock/internal/inventory"
)

// DefaultHistorySize is the number of reseeds remembered per card.
const DefaultHistorySize = 30

// History remembers card targets across reseeds so the health card can show
// how stock health moved. Safe for concurrent use.
type History struct {
	mu     sync.RWMutex
	size   int
	series map[string]*ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history with the given buffer size per card.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:   size,
		series: make(map[string]*ringBuffer),
	}
}

// Push records the stock-dependent card values of one summary.
func (h *History) Push(sum inventory.Summary) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buffer(CardLowStock).push(float64(sum.LowStock))
	h.buffer(CardExpiring).push(float64(sum.ExpiringSoon))
	h.buffer(CardHealth).push(sum.StockHealth)
}

// Get returns up to count values for a card, oldest first.
func (h *History) Get(card string, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r, ok := h.series[card]
	if !ok {
		return nil
	}
	return r.getLast(count)
}

// Count returns how many values are stored for a card.
func (h *History) Count(card string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r, ok := h.series[card]
	if !ok {
		return 0
	}
	return r.count
}

// Clear drops all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.series = make(map[string]*ringBuffer)
}

func (h *History) buffer(card string) *ringBuffer {
	r, ok := h.series[card]
	if !ok {
		r = newRingBuffer(h.size)
		h.series[card] = r
	}
	return r
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)
	// head is the next write position, so the newest value sits at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}

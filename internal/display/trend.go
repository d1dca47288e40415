package display

import (
	"github.com/guptarohit/asciigraph"
)

// Trend keeps the most recent samples of one value for plotting
type Trend struct {
	samples  []float64
	capacity int
}

// NewTrend creates a trend holding at most capacity samples
func NewTrend(capacity int) *Trend {
	if capacity < 2 {
		capacity = 2
	}
	return &Trend{samples: make([]float64, 0, capacity), capacity: capacity}
}

// Add appends a sample, dropping the oldest one when full
func (t *Trend) Add(v float64) {
	if len(t.samples) == t.capacity {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:len(t.samples)-1]
	}
	t.samples = append(t.samples, v)
}

// Values returns a copy of the samples, oldest first
func (t *Trend) Values() []float64 {
	out := make([]float64, len(t.samples))
	copy(out, t.samples)
	return out
}

// Plot draws the samples as an ASCII chart; it returns an empty string until
// there are two samples to connect
func (t *Trend) Plot(width, height int, caption string) string {
	if len(t.samples) < 2 {
		return ""
	}
	return asciigraph.Plot(t.Values(),
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(caption))
}

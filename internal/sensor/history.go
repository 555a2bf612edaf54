package sensor

import "time"

// DefaultHistorySize is the number of readings seeded at startup. It is
// also the most a History will hold.
const DefaultHistorySize = 50

// DefaultHistorySpacing is the simulated time between seeded readings.
const DefaultHistorySpacing = 30 * time.Minute

// History is a bounded, ordered list of readings, oldest first.
type History struct {
	readings []Reading
	capacity int
}

// NewHistory creates an empty History holding at most capacity readings.
// Capacity is clamped to DefaultHistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 || capacity > DefaultHistorySize {
		capacity = DefaultHistorySize
	}
	return &History{
		readings: make([]Reading, 0, capacity),
		capacity: capacity,
	}
}

// SeedParams controls how a History is seeded.
type SeedParams struct {
	Now     time.Time
	Size    int
	Spacing time.Duration
	Layout  string
	Sampler *Sampler
}

// Seed builds a full History ending at Now. Reading n (1-based) is stamped
// Now - (Size-n)*Spacing, so the last reading carries Now exactly.
func Seed(p SeedParams) *History {
	h := NewHistory(p.Size)
	spacing := p.Spacing
	if spacing <= 0 {
		spacing = DefaultHistorySpacing
	}
	layout := p.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	for seq := 1; seq <= h.capacity; seq++ {
		ts := p.Now.Add(-time.Duration(h.capacity-seq) * spacing)
		live := p.Sampler.Live()
		h.readings = append(h.readings, Reading{
			Sequence:     seq,
			Time:         ts,
			Timestamp:    ts.Format(layout),
			TemperatureC: live.TemperatureC,
			HumidityPct:  live.HumidityPct,
		})
	}
	return h
}

// Len returns the number of stored readings.
func (h *History) Len() int {
	return len(h.readings)
}

// Cap returns the maximum number of readings.
func (h *History) Cap() int {
	return h.capacity
}

// Readings returns a copy of the stored readings, oldest first.
func (h *History) Readings() []Reading {
	out := make([]Reading, len(h.readings))
	copy(out, h.readings)
	return out
}

// Newest returns the most recent reading.
func (h *History) Newest() (Reading, bool) {
	if len(h.readings) == 0 {
		return Reading{}, false
	}
	return h.readings[len(h.readings)-1], true
}

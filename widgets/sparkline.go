package widgets

import (
	"math"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// Block characters for sparkline rendering (8 levels).
var sparkBlocks = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a 1-row graph of recent values using block characters.
//
// When Lo < Hi values are scaled against that fixed band, otherwise against
// the min/max of the stored values.
type Sparkline struct {
	Lo, Hi float64
	Color  vaxis.Color

	values []float64
	head   int
	count  int
}

// NewSparkline creates a Sparkline with the given ring buffer capacity.
func NewSparkline(capacity int) *Sparkline {
	return &Sparkline{
		values: make([]float64, capacity),
		Color:  vaxis.IndexColor(6), // cyan
	}
}

// Push adds a value to the ring buffer.
func (sl *Sparkline) Push(v float64) {
	sl.values[sl.head] = v
	sl.head = (sl.head + 1) % len(sl.values)
	if sl.count < len(sl.values) {
		sl.count++
	}
}

// Count returns the number of values currently stored.
func (sl *Sparkline) Count() int {
	return sl.count
}

// Values returns the stored values in chronological order.
func (sl *Sparkline) Values() []float64 {
	if sl.count == 0 {
		return nil
	}
	out := make([]float64, sl.count)
	start := (sl.head - sl.count + len(sl.values)) % len(sl.values)
	for i := 0; i < sl.count; i++ {
		out[i] = sl.values[(start+i)%len(sl.values)]
	}
	return out
}

// level maps v onto 0..7.
func level(v, lo, hi float64) int {
	if hi <= lo {
		if hi > 0 {
			return 4 // flat non-zero line
		}
		return 0
	}
	l := int(math.Round((v - lo) / (hi - lo) * 7))
	return max(0, min(l, 7))
}

// Draw renders the sparkline as a single row, newest value rightmost.
func (sl *Sparkline) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, 1, sl)

	vals := sl.Values()
	if len(vals) == 0 {
		return s, nil
	}

	// Limit to available width
	width := int(ctx.Max.Width)
	if len(vals) > width {
		vals = vals[len(vals)-width:]
	}

	lo, hi := sl.Lo, sl.Hi
	if lo >= hi {
		lo, hi = vals[0], vals[0]
		for _, v := range vals[1:] {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}

	for i, v := range vals {
		ch := sparkBlocks[level(v, lo, hi)]
		for _, c := range ctx.Characters(string(ch)) {
			s.WriteCell(uint16(i), 0, vaxis.Cell{
				Character: c,
				Style:     vaxis.Style{Foreground: sl.Color},
			})
		}
	}

	return s, nil
}

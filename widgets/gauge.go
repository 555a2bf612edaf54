package widgets

import (
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// Gauge is a horizontal bar showing where a value sits in [Min, Max].
//
//	TEMP [████████░░░░░░░░░░░░]  27.3°C
type Gauge struct {
	Label    string  // left column, e.g. "TEMP", "HUM"
	Value    float64 // clamped to [Min, Max] for the bar only
	Min, Max float64
	Unit     string      // appended to the value, e.g. "°C" or "%"
	BarWidth int         // character width of the bar (excluding brackets)
	Color    vaxis.Color // filled cells; zero means green
}

const (
	barFilled = '█' // U+2588
	barEmpty  = '░' // U+2591
)

// Fraction returns how much of the bar is filled, in [0, 1].
func (g *Gauge) Fraction() float64 {
	if g.Max <= g.Min {
		return 0
	}
	f := (g.Value - g.Min) / (g.Max - g.Min)
	return max(0, min(f, 1))
}

// Draw renders the gauge as a single row.
func (g *Gauge) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, 1, g)

	col := uint16(0)
	write := func(text string, style vaxis.Style) {
		for _, ch := range ctx.Characters(text) {
			s.WriteCell(col, 0, vaxis.Cell{Character: ch, Style: style})
			col += uint16(ch.Width)
		}
	}

	write(fmt.Sprintf("%-4s ", g.Label), vaxis.Style{Attribute: vaxis.AttrBold})
	write("[", vaxis.Style{})

	color := g.Color
	if color == 0 {
		color = vaxis.IndexColor(2)
	}
	filled := int(g.Fraction() * float64(g.BarWidth))
	for i := 0; i < g.BarWidth; i++ {
		if i < filled {
			write(string(barFilled), vaxis.Style{Foreground: color})
		} else {
			write(string(barEmpty), vaxis.Style{Foreground: vaxis.IndexColor(8)}) // dim for empty
		}
	}

	write("] ", vaxis.Style{})
	write(fmt.Sprintf("%5.1f%s", g.Value, g.Unit), vaxis.Style{Attribute: vaxis.AttrBold})

	return s, nil
}

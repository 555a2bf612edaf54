package widgets

import (
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// Sidebar is a vertical navigation widget, one item per row.
type Sidebar struct {
	labels []string
	active int
}

// NewSidebar creates a Sidebar with the given labels. Active defaults to 0.
func NewSidebar(labels []string) *Sidebar {
	return &Sidebar{labels: labels}
}

// Active returns the highlighted item, or -1 when none is.
func (sb *Sidebar) Active() int {
	return sb.active
}

// Len returns the number of items.
func (sb *Sidebar) Len() int {
	return len(sb.labels)
}

// SetActive highlights item i. -1 clears the highlight; other out-of-range
// values are ignored.
func (sb *Sidebar) SetActive(i int) {
	if i >= -1 && i < len(sb.labels) {
		sb.active = i
	}
}

// Next advances to the next item, wrapping around.
func (sb *Sidebar) Next() {
	sb.active = (sb.active + 1) % len(sb.labels)
}

// Prev moves to the previous item, wrapping around.
func (sb *Sidebar) Prev() {
	if sb.active < 0 {
		sb.active = 0
	}
	sb.active = (sb.active - 1 + len(sb.labels)) % len(sb.labels)
}

// Draw renders one row per item. The active item is rendered with reverse
// video across the full width.
func (sb *Sidebar) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	height := min(uint16(len(sb.labels)), ctx.Max.Height)
	s := vxfw.NewSurface(ctx.Max.Width, height, sb)

	for i, label := range sb.labels {
		if uint16(i) >= height {
			break
		}
		style := vaxis.Style{}
		marker := " "
		if i == sb.active {
			style.Attribute |= vaxis.AttrReverse | vaxis.AttrBold
			marker = "▸"
		}
		text := fmt.Sprintf(" %s %d %-*s", marker, i+1, max(int(ctx.Max.Width)-5, 0), label)
		col := uint16(0)
		for _, ch := range ctx.Characters(text) {
			if col >= ctx.Max.Width {
				break
			}
			s.WriteCell(col, uint16(i), vaxis.Cell{Character: ch, Style: style})
			col += uint16(ch.Width)
		}
	}

	return s, nil
}

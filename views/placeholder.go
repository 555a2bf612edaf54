package views

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/richtext"
)

// PlaceholderView is shown for tabs that have no content yet.
type PlaceholderView struct{}

// NewPlaceholderView creates a PlaceholderView.
func NewPlaceholderView() *PlaceholderView {
	return &PlaceholderView{}
}

// Draw renders a centred "Coming Soon" notice.
func (pv *PlaceholderView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	return drawCentered(ctx, pv, [][]vaxis.Segment{
		{{Text: "🚀"}},
		{},
		{{Text: "Coming Soon", Style: vaxis.Style{Attribute: vaxis.AttrBold}}},
		{{Text: "This feature is under development", Style: vaxis.Style{Attribute: vaxis.AttrDim}}},
	})
}

// drawCentered renders lines of rich text centred both ways in the view.
func drawCentered(ctx vxfw.DrawContext, owner vxfw.Widget, lines [][]vaxis.Segment) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, owner)

	top := 0
	if int(ctx.Max.Height) > len(lines) {
		top = (int(ctx.Max.Height) - len(lines)) / 2
	}
	for i, segs := range lines {
		row := top + i
		if row >= int(ctx.Max.Height) {
			break
		}
		if len(segs) == 0 {
			continue
		}
		width := 0
		for _, seg := range segs {
			for _, ch := range ctx.Characters(seg.Text) {
				width += ch.Width
			}
		}
		col := 0
		if int(ctx.Max.Width) > width {
			col = (int(ctx.Max.Width) - width) / 2
		}
		line := richtext.New(segs)
		lineSurf, err := line.Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width - uint16(col), Height: 1}))
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(col, row, lineSurf)
	}
	return s, nil
}

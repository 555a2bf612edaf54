package widgets

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// TableColumn defines a column in a Table.
type TableColumn struct {
	Width      int         // fixed character width
	AlignRight bool        // right-align text within the column
	Style      vaxis.Style // applied to all cells in this column
}

// Table renders rows of text with fixed-width columns using WriteCell.
// Each row is a []string matching the Columns slice.
//
// The header stays pinned to the first line while Offset scrolls the data
// rows underneath it.
type Table struct {
	Columns []TableColumn
	Rows    [][]string
	Header  []string // optional header row rendered with AttrDim
	Gap     int      // spaces between columns (default 1)
	Offset  int      // index of the first visible data row

	// Highlight, when set, selects rows drawn with HighlightStyle
	// instead of the column styles.
	Highlight      func(row int) bool
	HighlightStyle vaxis.Style
}

// writeText writes s into surf at (col, row) within maxWidth. If alignRight
// is set, text is padded on the left. Text wider than maxWidth is cut.
func writeText(surf *vxfw.Surface, col, row uint16, maxWidth int, s string, style vaxis.Style, alignRight bool) {
	chars := vaxis.Characters(s)

	// Calculate display width
	displayWidth := 0
	for _, ch := range chars {
		displayWidth += ch.Width
	}

	// Determine starting offset for right alignment
	offset := 0
	if alignRight && displayWidth < maxWidth {
		offset = maxWidth - displayWidth
	}

	pos := offset
	for _, ch := range chars {
		if pos+ch.Width > maxWidth {
			break
		}
		surf.WriteCell(col+uint16(pos), row, vaxis.Cell{
			Character: ch,
			Style:     style,
		})
		pos += ch.Width
	}
}

// fillRow paints the background of an entire row so highlighted rows
// read as a band rather than as coloured words.
func fillRow(surf *vxfw.Surface, row uint16, width uint16, style vaxis.Style) {
	for col := uint16(0); col < width; col++ {
		surf.WriteCell(col, row, vaxis.Cell{
			Character: vaxis.Character{Grapheme: " ", Width: 1},
			Style:     style,
		})
	}
}

// VisibleRows returns how many data rows fit into height.
func (t *Table) VisibleRows(height int) int {
	if t.Header != nil {
		height--
	}
	return max(height, 0)
}

// ClampOffset keeps Offset within the scrollable range for height.
func (t *Table) ClampOffset(height int) {
	maxOffset := max(len(t.Rows)-t.VisibleRows(height), 0)
	t.Offset = max(0, min(t.Offset, maxOffset))
}

// Draw renders the table header (if set) and the visible rows.
func (t *Table) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	gap := t.Gap
	if gap == 0 {
		gap = 1
	}

	t.ClampOffset(int(ctx.Max.Height))
	rows := t.Rows[t.Offset:]

	totalRows := len(rows)
	if t.Header != nil {
		totalRows++
	}

	height := uint16(totalRows)
	if height > ctx.Max.Height {
		height = ctx.Max.Height
	}

	s := vxfw.NewSurface(ctx.Max.Width, height, t)
	row := uint16(0)

	// Header
	if t.Header != nil && row < height {
		col := uint16(0)
		for i, c := range t.Columns {
			if int(col) >= int(ctx.Max.Width) {
				break
			}
			text := ""
			if i < len(t.Header) {
				text = t.Header[i]
			}
			style := vaxis.Style{Attribute: vaxis.AttrDim}
			writeText(&s, col, row, c.Width, text, style, c.AlignRight)
			col += uint16(c.Width + gap)
		}
		row++
	}

	// Data rows
	for r, cells := range rows {
		if row >= height {
			break
		}
		highlighted := t.Highlight != nil && t.Highlight(t.Offset+r)
		if highlighted {
			fillRow(&s, row, ctx.Max.Width, t.HighlightStyle)
		}
		col := uint16(0)
		for i, c := range t.Columns {
			if int(col) >= int(ctx.Max.Width) {
				break
			}
			text := ""
			if i < len(cells) {
				text = cells[i]
			}
			style := c.Style
			if highlighted {
				style = t.HighlightStyle
			}
			writeText(&s, col, row, c.Width, text, style, c.AlignRight)
			col += uint16(c.Width + gap)
		}
		row++
	}

	return s, nil
}

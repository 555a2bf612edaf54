package views

import (
	"fmt"
	"strconv"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/richtext"
	"github.com/deevus/sensordash/internal/sensor"
	"github.com/deevus/sensordash/widgets"
	"github.com/dustin/go-humanize"
)

// HomeSource provides the data shown on the home panel.
type HomeSource interface {
	Live() *sensor.LiveReading
	History() []sensor.Reading
	Ranges() (temperature, humidity sensor.Range)
}

// HomeViewParams holds configuration for creating a HomeView.
type HomeViewParams struct {
	Source HomeSource
	// SparkCapacity is the number of live samples kept per sparkline.
	SparkCapacity int
}

// HomeView shows the live summary gauges followed by the history table.
type HomeView struct {
	source    HomeSource
	tempSpark *widgets.Sparkline
	humSpark  *widgets.Sparkline
	table     widgets.Table
	lastLive  *sensor.LiveReading

	// tableHeight is the height the table was last drawn with; paging
	// keys scroll by this much.
	tableHeight int
}

// Layout of the summary block.
const (
	gaugeBarWidth = 20
	// "TEMP [bars] XXX.X°C" is label(5) + brackets and space(3) + value(8).
	gaugeWidth   = 5 + gaugeBarWidth + 3 + 8
	newestColour = 2 // green
)

// Column widths of the history table.
const (
	colSeqWidth  = 4
	colTimeWidth = 24
	colTempWidth = 16
	colHumWidth  = 12
	colGap       = 2
)

// NewHomeView creates a HomeView backed by the given params.
func NewHomeView(p HomeViewParams) *HomeView {
	capacity := p.SparkCapacity
	if capacity <= 0 {
		capacity = 60
	}
	temp, hum := p.Source.Ranges()

	hv := &HomeView{
		source:    p.Source,
		tempSpark: widgets.NewSparkline(capacity),
		humSpark:  widgets.NewSparkline(capacity),
	}
	hv.tempSpark.Lo, hv.tempSpark.Hi = temp.Min, temp.Max
	hv.tempSpark.Color = vaxis.IndexColor(3) // yellow
	hv.humSpark.Lo, hv.humSpark.Hi = hum.Min, hum.Max
	hv.humSpark.Color = vaxis.IndexColor(6) // cyan

	hv.table = widgets.Table{
		Columns: []widgets.TableColumn{
			{Width: colSeqWidth, AlignRight: true, Style: vaxis.Style{Attribute: vaxis.AttrDim}},
			{Width: colTimeWidth},
			{Width: colTempWidth, AlignRight: true, Style: vaxis.Style{Foreground: vaxis.IndexColor(3)}},
			{Width: colHumWidth, AlignRight: true, Style: vaxis.Style{Foreground: vaxis.IndexColor(6)}},
		},
		Header: []string{"#", "DATE & TIME", "TEMPERATURE (°C)", "HUMIDITY (%)"},
		Gap:    colGap,
		HighlightStyle: vaxis.Style{
			Foreground: vaxis.IndexColor(0),
			Background: vaxis.IndexColor(newestColour),
			Attribute:  vaxis.AttrBold,
		},
	}
	hv.Observe()
	return hv
}

// Observe records the source's live reading in the sparklines if it has
// changed since the last call.
func (hv *HomeView) Observe() {
	live := hv.source.Live()
	if live == nil || live == hv.lastLive {
		return
	}
	hv.lastLive = live
	hv.tempSpark.Push(live.TemperatureC)
	hv.humSpark.Push(live.HumidityPct)
}

// Samples returns how many live readings the sparklines hold.
func (hv *HomeView) Samples() int {
	return hv.tempSpark.Count()
}

// Offset returns the index of the first visible history row.
func (hv *HomeView) Offset() int {
	return hv.table.Offset
}

// HistoryRows formats readings as table rows, oldest first.
func HistoryRows(readings []sensor.Reading) [][]string {
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, []string{
			strconv.Itoa(r.Sequence),
			r.Timestamp,
			fmt.Sprintf("%.1f°C", r.TemperatureC),
			fmt.Sprintf("%.1f%%", r.HumidityPct),
		})
	}
	return rows
}

// Draw renders the summary block and the history table.
func (hv *HomeView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, hv)
	row := 0
	lineCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})

	live := hv.source.Live()
	temp, hum := hv.source.Ranges()

	// === Live summary ===
	gauges := []struct {
		gauge *widgets.Gauge
		spark *widgets.Sparkline
	}{
		{&widgets.Gauge{Label: "TEMP", Value: live.TemperatureC, Min: temp.Min, Max: temp.Max,
			Unit: "°C", BarWidth: gaugeBarWidth, Color: vaxis.IndexColor(3)}, hv.tempSpark},
		{&widgets.Gauge{Label: "HUM", Value: live.HumidityPct, Min: hum.Min, Max: hum.Max,
			Unit: "%", BarWidth: gaugeBarWidth, Color: vaxis.IndexColor(6)}, hv.humSpark},
	}
	for _, g := range gauges {
		if row >= int(ctx.Max.Height) {
			return s, nil
		}
		gaugeSurf, err := g.gauge.Draw(lineCtx)
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, gaugeSurf)

		// Sparkline after the gauge
		sparkWidth := int(ctx.Max.Width) - gaugeWidth - 2
		if g.spark.Count() > 0 && sparkWidth > 0 {
			sparkSurf, err := g.spark.Draw(ctx.WithMax(vxfw.Size{Width: uint16(sparkWidth), Height: 1}))
			if err != nil {
				return vxfw.Surface{}, err
			}
			s.AddChild(gaugeWidth+2, row, sparkSurf)
		}
		row++
	}

	// === Blank separator ===
	row++

	// === Table title ===
	readings := hv.source.History()
	if row >= int(ctx.Max.Height) {
		return s, nil
	}
	title := richtext.New([]vaxis.Segment{
		{Text: " Recent Sensor Readings", Style: vaxis.Style{Attribute: vaxis.AttrBold}},
		{Text: fmt.Sprintf("  Last %s records", humanize.Comma(int64(len(readings)))),
			Style: vaxis.Style{Attribute: vaxis.AttrDim}},
	})
	titleSurf, err := title.Draw(lineCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, row, titleSurf)
	row++

	// === History table ===
	remaining := int(ctx.Max.Height) - row
	if remaining <= 0 {
		return s, nil
	}
	newest := len(readings) - 1
	hv.table.Rows = HistoryRows(readings)
	hv.table.Highlight = func(i int) bool { return i == newest }
	hv.tableHeight = remaining
	tableSurf, err := hv.table.Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: uint16(remaining)}))
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, row, tableSurf)

	return s, nil
}

// HandleEvent scrolls the history table.
func (hv *HomeView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok {
		return nil, nil
	}
	page := max(hv.table.VisibleRows(hv.tableHeight), 1)
	switch {
	case key.Matches('j'), key.Matches(vaxis.KeyDown):
		hv.table.Offset++
	case key.Matches('k'), key.Matches(vaxis.KeyUp):
		hv.table.Offset--
	case key.Matches(vaxis.KeyPgDown):
		hv.table.Offset += page
	case key.Matches(vaxis.KeyPgUp):
		hv.table.Offset -= page
	case key.Matches('g'), key.Matches(vaxis.KeyHome):
		hv.table.Offset = 0
	case key.Matches('G'), key.Matches(vaxis.KeyEnd):
		hv.table.Offset = len(hv.table.Rows)
	default:
		return nil, nil
	}
	if hv.tableHeight > 0 {
		hv.table.ClampOffset(hv.tableHeight)
	}
	return vxfw.ConsumeAndRedraw(), nil
}

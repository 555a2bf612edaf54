package app

import (
	"context"
	"strings"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/richtext"
	"github.com/deevus/sensordash/internal/dashboard"
	"github.com/deevus/sensordash/internal/schedule"
	"github.com/deevus/sensordash/views"
	"github.com/deevus/sensordash/widgets"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// Params holds configuration for creating an App.
type Params struct {
	Controller      *dashboard.Controller
	RefreshInterval time.Duration
	TimeLayout      string
	Logger          zerolog.Logger
}

// App is the root vxfw widget for the sensor dashboard.
type App struct {
	ctl        *dashboard.Controller
	interval   time.Duration
	timeLayout string
	logger     zerolog.Logger
	sidebar    *widgets.Sidebar
	home       *views.HomeView
	logout     *views.LogoutView
	comingSoon *views.PlaceholderView
	postEvent  func(vaxis.Event)
	ticker     *schedule.Handle
}

// Layout constants.
const (
	sidebarWidth = 24
	headerHeight = 3
	footerHeight = 3
	titleHeight  = 3
)

// New creates the root App widget around the given controller.
func New(p Params) *App {
	labels := make([]string, len(dashboard.Tabs))
	for i, info := range dashboard.Tabs {
		labels[i] = info.Label
	}
	interval := p.RefreshInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	layout := p.TimeLayout
	if layout == "" {
		layout = time.DateTime
	}
	a := &App{
		ctl:        p.Controller,
		interval:   interval,
		timeLayout: layout,
		logger:     p.Logger,
		sidebar:    widgets.NewSidebar(labels),
		home:       views.NewHomeView(views.HomeViewParams{Source: p.Controller}),
		logout:     views.NewLogoutView(p.Logger),
		comingSoon: views.NewPlaceholderView(),
	}
	a.syncSidebar()
	return a
}

// SetPostEvent sets the function used to post events to the vaxis event loop.
// Must be called before the app receives vxfw.Init.
func (a *App) SetPostEvent(fn func(vaxis.Event)) {
	a.postEvent = fn
}

// ActiveTab returns the selected tab.
func (a *App) ActiveTab() dashboard.Tab {
	return a.ctl.ActiveTab()
}

// SelectTab switches to the given tab. Unknown ids are accepted and render
// the placeholder panel.
func (a *App) SelectTab(tab dashboard.Tab) {
	a.ctl.SelectTab(tab)
	a.syncSidebar()
}

func (a *App) syncSidebar() {
	a.sidebar.SetActive(dashboard.IndexOf(a.ctl.ActiveTab()))
}

func (a *App) selectIndex(i int) {
	if i >= 0 && i < len(dashboard.Tabs) {
		a.SelectTab(dashboard.Tabs[i].ID)
	}
}

// Start begins the refresh schedule. Each tick is posted to the event loop
// rather than applied directly, so state only changes on the UI goroutine.
// Calling Start while running is a no-op.
func (a *App) Start(ctx context.Context) {
	if a.ticker != nil {
		return
	}
	a.ticker = schedule.Every(ctx, a.interval, a.logger, func(t time.Time) {
		if a.postEvent != nil {
			a.postEvent(views.Tick{At: t})
		}
	})
}

// Running reports whether the refresh schedule is active.
func (a *App) Running() bool {
	return a.ticker != nil
}

// Close stops the refresh schedule. No ticks are posted after it returns.
func (a *App) Close() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
}

// Content returns the widget for the active panel.
func (a *App) Content() vxfw.Widget {
	switch a.ctl.Panel() {
	case dashboard.PanelSummary:
		return a.home
	case dashboard.PanelLogout:
		return a.logout
	default:
		return a.comingSoon
	}
}

// Home returns the home panel.
func (a *App) Home() *views.HomeView {
	return a.home
}

// Logout returns the logout panel.
func (a *App) Logout() *views.LogoutView {
	return a.logout
}

// Draw renders the sidebar, header and active panel.
func (a *App) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, a)

	sideW := min(uint16(sidebarWidth), ctx.Max.Width)
	sideSurf, err := a.drawSidebar(ctx.WithMax(vxfw.Size{Width: sideW, Height: ctx.Max.Height}))
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, 0, sideSurf)

	if ctx.Max.Width <= sideW+1 {
		return s, nil
	}
	mainW := ctx.Max.Width - sideW - 1
	mainCol := int(sideW) + 1

	// Divider
	for row := uint16(0); row < ctx.Max.Height; row++ {
		for _, ch := range ctx.Characters("│") {
			s.WriteCell(sideW, row, vaxis.Cell{Character: ch, Style: vaxis.Style{Attribute: vaxis.AttrDim}})
		}
	}

	headH := min(uint16(headerHeight), ctx.Max.Height)
	headSurf, err := a.drawHeader(ctx.WithMax(vxfw.Size{Width: mainW, Height: headH}))
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(mainCol, 0, headSurf)

	if ctx.Max.Height <= headH {
		return s, nil
	}
	viewCtx := ctx.WithMax(vxfw.Size{Width: mainW, Height: ctx.Max.Height - headH})
	viewSurf, err := a.Content().Draw(viewCtx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(mainCol, int(headH), viewSurf)

	return s, nil
}

func (a *App) drawSidebar(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, a)
	lineCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})

	lines := [][]vaxis.Segment{
		{{Text: " IoT Dashboard", Style: vaxis.Style{Attribute: vaxis.AttrBold, Foreground: vaxis.IndexColor(5)}}},
		{{Text: " Sensor Monitoring", Style: vaxis.Style{Attribute: vaxis.AttrDim}}},
	}
	for row, segs := range lines {
		if row >= int(ctx.Max.Height) {
			return s, nil
		}
		surf, err := richtext.New(segs).Draw(lineCtx)
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, surf)
	}

	if int(ctx.Max.Height) <= titleHeight {
		return s, nil
	}
	navH := ctx.Max.Height - titleHeight
	navSurf, err := a.sidebar.Draw(ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: navH}))
	if err != nil {
		return vxfw.Surface{}, err
	}
	s.AddChild(0, titleHeight, navSurf)

	// Footer pinned to the bottom when there is room below the nav.
	footerRow := int(ctx.Max.Height) - footerHeight + 1
	if footerRow <= titleHeight+a.sidebar.Len() {
		return s, nil
	}
	footer := [][]vaxis.Segment{
		{
			{Text: " ● ", Style: vaxis.Style{Foreground: vaxis.IndexColor(2)}},
			{Text: "System Online", Style: vaxis.Style{Attribute: vaxis.AttrBold}},
		},
		{{Text: "   Last sync: " + humanize.RelTime(a.ctl.LastSync(), a.ctl.Now(), "ago", "from now"),
			Style: vaxis.Style{Attribute: vaxis.AttrDim}}},
	}
	for i, segs := range footer {
		surf, err := richtext.New(segs).Draw(lineCtx)
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, footerRow+i, surf)
	}
	return s, nil
}

func (a *App) drawHeader(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, a)
	lineCtx := ctx.WithMax(vxfw.Size{Width: ctx.Max.Width, Height: 1})

	tab := a.ctl.ActiveTab()
	subtitle := ""
	if info, ok := dashboard.Lookup(tab); ok {
		subtitle = info.Subtitle
	}

	lines := [][]vaxis.Segment{
		{
			{Text: " " + TabTitle(tab), Style: vaxis.Style{Attribute: vaxis.AttrBold}},
			{Text: "   ● ", Style: vaxis.Style{Foreground: vaxis.IndexColor(2)}},
			{Text: "Live  ", Style: vaxis.Style{Attribute: vaxis.AttrDim}},
			{Text: a.ctl.Now().Format(a.timeLayout), Style: vaxis.Style{Attribute: vaxis.AttrDim}},
		},
		{{Text: " " + subtitle, Style: vaxis.Style{Attribute: vaxis.AttrDim}}},
	}
	for row, segs := range lines {
		if row >= int(ctx.Max.Height) {
			break
		}
		surf, err := richtext.New(segs).Draw(lineCtx)
		if err != nil {
			return vxfw.Surface{}, err
		}
		s.AddChild(0, row, surf)
	}
	return s, nil
}

// TabTitle capitalizes a tab id for the header.
func TabTitle(tab dashboard.Tab) string {
	if tab == "" {
		return ""
	}
	r := []rune(string(tab))
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// CaptureEvent handles global keybindings before views process them.
func (a *App) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Key:
		switch {
		case ev.Matches('q'), ev.Matches('c', vaxis.ModCtrl):
			a.Close()
			return vxfw.QuitCmd{}, nil
		case ev.Matches('1'):
			a.selectIndex(0)
		case ev.Matches('2'):
			a.selectIndex(1)
		case ev.Matches('3'):
			a.selectIndex(2)
		case ev.Matches('4'):
			a.selectIndex(3)
		case ev.Matches(vaxis.KeyTab):
			a.sidebar.Next()
			a.selectIndex(a.sidebar.Active())
		case ev.Matches(vaxis.KeyTab, vaxis.ModShift):
			a.sidebar.Prev()
			a.selectIndex(a.sidebar.Active())
		default:
			return nil, nil
		}
		return vxfw.ConsumeAndRedraw(), nil
	}
	return nil, nil
}

// HandleEvent starts the schedule on init, applies ticks, and delegates
// everything else to the active panel.
func (a *App) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vxfw.Init:
		a.Start(context.Background())
		a.logger.Info().Dur("refresh", a.interval).Int("history", a.ctl.HistoryLen()).Msg("dashboard started")
		return vxfw.RedrawCmd{}, nil
	case views.Tick:
		if a.ticker == nil {
			return nil, nil
		}
		a.ctl.Tick()
		a.home.Observe()
		return vxfw.RedrawCmd{}, nil
	default:
		type handler interface {
			HandleEvent(vaxis.Event, vxfw.EventPhase) (vxfw.Command, error)
		}
		if h, ok := a.Content().(handler); ok {
			return h.HandleEvent(ev, phase)
		}
	}
	return nil, nil
}


package app_test

import (
	"sync"
	"testing"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/deevus/sensordash/app"
	"github.com/deevus/sensordash/internal/dashboard"
	"github.com/deevus/sensordash/internal/sensor"
	"github.com/deevus/sensordash/views"
	"github.com/rs/zerolog"
)

func testDrawContext(w, h uint16) vxfw.DrawContext {
	return vxfw.DrawContext{
		Max: vxfw.Size{Width: w, Height: h},
		Min: vxfw.Size{},
		Characters: func(s string) []vaxis.Character {
			chars := make([]vaxis.Character, 0, len(s))
			for _, r := range s {
				chars = append(chars, vaxis.Character{Grapheme: string(r), Width: 1})
			}
			return chars
		},
	}
}

var testNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newController() *dashboard.Controller {
	return dashboard.New(dashboard.Params{
		Sampler:        sensor.NewSampler(sensor.NewSource(1), sensor.TemperatureRange, sensor.HumidityRange),
		HistorySize:    sensor.DefaultHistorySize,
		HistorySpacing: sensor.DefaultHistorySpacing,
		Now:            func() time.Time { return testNow },
		Logger:         zerolog.Nop(),
	})
}

func newApp(interval time.Duration) *app.App {
	return app.New(app.Params{
		Controller:      newController(),
		RefreshInterval: interval,
		Logger:          zerolog.Nop(),
	})
}

// eventSink collects events posted by the app's schedule.
type eventSink struct {
	mu     sync.Mutex
	events []vaxis.Event
}

func (s *eventSink) post(ev vaxis.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *eventSink) ticks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.events {
		if _, ok := ev.(views.Tick); ok {
			n++
		}
	}
	return n
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestApp_New(t *testing.T) {
	a := newApp(time.Second)
	if a == nil {
		t.Fatal("expected non-nil app")
	}
	if a.ActiveTab() != dashboard.TabHome {
		t.Errorf("expected initial tab home, got %q", a.ActiveTab())
	}
	if a.Running() {
		t.Error("expected schedule not to run before Init")
	}
}

func TestApp_Content(t *testing.T) {
	a := newApp(time.Second)

	a.SelectTab(dashboard.TabSettings)
	if _, ok := a.Content().(*views.PlaceholderView); !ok {
		t.Errorf("settings: expected placeholder, got %T", a.Content())
	}

	a.SelectTab(dashboard.TabHome)
	if _, ok := a.Content().(*views.HomeView); !ok {
		t.Errorf("home: expected home view, got %T", a.Content())
	}

	a.SelectTab(dashboard.TabAnalytics)
	if _, ok := a.Content().(*views.PlaceholderView); !ok {
		t.Errorf("analytics: expected placeholder, got %T", a.Content())
	}

	a.SelectTab(dashboard.TabLogout)
	if _, ok := a.Content().(*views.LogoutView); !ok {
		t.Errorf("logout: expected logout view, got %T", a.Content())
	}

	a.SelectTab("bogus-id")
	if a.ActiveTab() != "bogus-id" {
		t.Errorf("expected unknown id to be stored, got %q", a.ActiveTab())
	}
	if _, ok := a.Content().(*views.PlaceholderView); !ok {
		t.Errorf("bogus-id: expected placeholder, got %T", a.Content())
	}
}

func TestApp_Draw(t *testing.T) {
	a := newApp(time.Second)
	s, err := a.Draw(testDrawContext(120, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Size.Width != 120 {
		t.Errorf("expected width=120, got %d", s.Size.Width)
	}
	if s.Size.Height != 40 {
		t.Errorf("expected height=40, got %d", s.Size.Height)
	}
}

func TestApp_Draw_AllTabs(t *testing.T) {
	a := newApp(time.Second)
	tabs := []dashboard.Tab{dashboard.TabHome, dashboard.TabAnalytics, dashboard.TabSettings, dashboard.TabLogout, "bogus-id"}
	for _, tab := range tabs {
		a.SelectTab(tab)
		if _, err := a.Draw(testDrawContext(100, 30)); err != nil {
			t.Fatalf("tab %q: unexpected error: %v", tab, err)
		}
	}
}

func TestApp_Draw_SmallTerminal(t *testing.T) {
	a := newApp(time.Second)
	sizes := [][2]uint16{{0, 0}, {10, 2}, {24, 10}, {25, 3}, {40, 5}}
	for _, sz := range sizes {
		if _, err := a.Draw(testDrawContext(sz[0], sz[1])); err != nil {
			t.Fatalf("%dx%d: unexpected error: %v", sz[0], sz[1], err)
		}
	}
}

func TestApp_CaptureEvent_Quit(t *testing.T) {
	a := newApp(time.Second)
	cmd, err := a.CaptureEvent(vaxis.Key{Keycode: 'q'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cmd.(vxfw.QuitCmd); !ok {
		t.Errorf("expected QuitCmd, got %T", cmd)
	}
}

func TestApp_CaptureEvent_NumberKeys(t *testing.T) {
	a := newApp(time.Second)
	tests := []struct {
		key      rune
		expected dashboard.Tab
	}{
		{'2', dashboard.TabAnalytics},
		{'3', dashboard.TabSettings},
		{'4', dashboard.TabLogout},
		{'1', dashboard.TabHome},
	}
	for _, tc := range tests {
		cmd, err := a.CaptureEvent(vaxis.Key{Keycode: tc.key})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd == nil {
			t.Errorf("key '%c': expected command", tc.key)
		}
		if a.ActiveTab() != tc.expected {
			t.Errorf("key '%c': expected tab %q, got %q", tc.key, tc.expected, a.ActiveTab())
		}
	}
}

func TestApp_CaptureEvent_Tab(t *testing.T) {
	a := newApp(time.Second)
	if _, err := a.CaptureEvent(vaxis.Key{Keycode: vaxis.KeyTab}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ActiveTab() != dashboard.TabAnalytics {
		t.Errorf("expected analytics after Tab, got %q", a.ActiveTab())
	}
}

func TestApp_CaptureEvent_ShiftTab(t *testing.T) {
	a := newApp(time.Second)
	if _, err := a.CaptureEvent(vaxis.Key{Keycode: vaxis.KeyTab, Modifiers: vaxis.ModShift}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ActiveTab() != dashboard.TabLogout {
		t.Errorf("expected logout after Shift+Tab, got %q", a.ActiveTab())
	}
}

func TestApp_CaptureEvent_TabFromUnknown(t *testing.T) {
	a := newApp(time.Second)
	a.SelectTab("bogus-id")
	if _, err := a.CaptureEvent(vaxis.Key{Keycode: vaxis.KeyTab}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ActiveTab() != dashboard.TabHome {
		t.Errorf("expected home after Tab from unknown tab, got %q", a.ActiveTab())
	}
}

func TestApp_CaptureEvent_UnhandledKey(t *testing.T) {
	a := newApp(time.Second)
	cmd, err := a.CaptureEvent(vaxis.Key{Keycode: 'x'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != nil {
		t.Errorf("expected nil command for unhandled key, got %T", cmd)
	}
}

func TestApp_CaptureEvent_NonKeyEvent(t *testing.T) {
	a := newApp(time.Second)
	cmd, err := a.CaptureEvent(vaxis.Redraw{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != nil {
		t.Errorf("expected nil command for non-key event, got %T", cmd)
	}
}

func TestApp_HandleEvent_DelegatesToPanel(t *testing.T) {
	a := newApp(time.Second)
	if _, err := a.Draw(testDrawContext(120, 30)); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if _, err := a.HandleEvent(vaxis.Key{Keycode: 'j'}, vxfw.EventPhase(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Home().Offset() != 1 {
		t.Errorf("expected home table to scroll, offset %d", a.Home().Offset())
	}

	a.SelectTab(dashboard.TabLogout)
	if _, err := a.HandleEvent(vaxis.Key{Keycode: vaxis.KeyEnter}, vxfw.EventPhase(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Logout().Confirmed() != 1 {
		t.Errorf("expected logout confirm stub to run once, got %d", a.Logout().Confirmed())
	}

	// Placeholder has no handler.
	a.SelectTab(dashboard.TabSettings)
	cmd, err := a.HandleEvent(vaxis.Key{Keycode: 'j'}, vxfw.EventPhase(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != nil {
		t.Errorf("expected nil command on placeholder, got %T", cmd)
	}
}

func TestApp_Tick_ReplacesLiveOnly(t *testing.T) {
	a := newApp(time.Hour)
	if _, err := a.HandleEvent(vxfw.Init{}, vxfw.EventPhase(0)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer a.Close()

	samples := a.Home().Samples()
	cmd, err := a.HandleEvent(views.Tick{At: testNow}, vxfw.EventPhase(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cmd.(vxfw.RedrawCmd); !ok {
		t.Errorf("expected RedrawCmd, got %T", cmd)
	}
	if a.Home().Samples() != samples+1 {
		t.Errorf("expected a new sparkline sample, got %d", a.Home().Samples())
	}
}

func TestApp_Tick_IgnoredWhenStopped(t *testing.T) {
	a := newApp(time.Hour)
	samples := a.Home().Samples()
	cmd, err := a.HandleEvent(views.Tick{At: testNow}, vxfw.EventPhase(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != nil {
		t.Errorf("expected nil command for tick without schedule, got %T", cmd)
	}
	if a.Home().Samples() != samples {
		t.Error("expected tick to be ignored when schedule is not running")
	}
}

func TestApp_Init_StartsSchedule(t *testing.T) {
	sink := &eventSink{}
	a := newApp(2 * time.Millisecond)
	a.SetPostEvent(sink.post)

	cmd, err := a.HandleEvent(vxfw.Init{}, vxfw.EventPhase(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cmd.(vxfw.RedrawCmd); !ok {
		t.Errorf("expected RedrawCmd, got %T", cmd)
	}
	defer a.Close()

	if !a.Running() {
		t.Fatal("expected schedule to run after Init")
	}
	waitFor(t, func() bool { return sink.ticks() >= 2 })
}

func TestApp_Close_StopsTicks(t *testing.T) {
	sink := &eventSink{}
	a := newApp(2 * time.Millisecond)
	a.SetPostEvent(sink.post)
	_, _ = a.HandleEvent(vxfw.Init{}, vxfw.EventPhase(0))

	waitFor(t, func() bool { return sink.ticks() >= 3 })
	a.Close()
	if a.Running() {
		t.Error("expected schedule to stop after Close")
	}
	after := sink.ticks()

	time.Sleep(20 * time.Millisecond)
	if got := sink.ticks(); got != after {
		t.Errorf("expected no ticks after Close, got %d more", got-after)
	}

	// Closing twice is harmless.
	a.Close()
}

func TestApp_Quit_StopsSchedule(t *testing.T) {
	a := newApp(time.Hour)
	_, _ = a.HandleEvent(vxfw.Init{}, vxfw.EventPhase(0))
	if _, err := a.CaptureEvent(vaxis.Key{Keycode: 'q'}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Running() {
		t.Error("expected quit to stop the schedule")
	}
}

func TestTabTitle(t *testing.T) {
	tests := []struct {
		tab  dashboard.Tab
		want string
	}{
		{dashboard.TabHome, "Home"},
		{dashboard.TabAnalytics, "Analytics"},
		{"", ""},
		{"ünknown", "Ünknown"},
	}
	for _, tt := range tests {
		if got := app.TabTitle(tt.tab); got != tt.want {
			t.Errorf("TabTitle(%q) = %q, want %q", tt.tab, got, tt.want)
		}
	}
}

// Package dashboard holds the view state of the sensor dashboard: the
// selected tab, the live reading and the seeded history.
//
// A Controller is not safe for concurrent use. All calls are expected to
// come from the UI event loop.
package dashboard

import (
	"time"

	"github.com/deevus/sensordash/internal/sensor"
	"github.com/rs/zerolog"
)

// Params holds configuration for creating a Controller.
type Params struct {
	Sampler        *sensor.Sampler
	HistorySize    int
	HistorySpacing time.Duration
	TimeLayout     string
	Now            func() time.Time
	Logger         zerolog.Logger
}

// Controller owns the dashboard view state.
type Controller struct {
	sampler  *sensor.Sampler
	now      func() time.Time
	logger   zerolog.Logger
	active   Tab
	live     *sensor.LiveReading
	history  *sensor.History
	lastSync time.Time
	ticks    int
}

// New creates a Controller on the home tab and seeds its history.
func New(p Params) *Controller {
	now := p.Now
	if now == nil {
		now = time.Now
	}
	initial := sensor.InitialLive
	c := &Controller{
		sampler: p.Sampler,
		now:     now,
		logger:  p.Logger,
		active:  TabHome,
		live:    &initial,
	}
	c.initializeHistory(p)
	return c
}

func (c *Controller) initializeHistory(p Params) {
	at := c.now()
	c.history = sensor.Seed(sensor.SeedParams{
		Now:     at,
		Size:    p.HistorySize,
		Spacing: p.HistorySpacing,
		Layout:  p.TimeLayout,
		Sampler: c.sampler,
	})
	c.lastSync = at
	c.logger.Debug().Int("readings", c.history.Len()).Msg("history seeded")
}

// ActiveTab returns the selected tab.
func (c *Controller) ActiveTab() Tab {
	return c.active
}

// SelectTab switches to tab without validating it.
func (c *Controller) SelectTab(tab Tab) {
	if tab == c.active {
		return
	}
	c.logger.Debug().Str("from", string(c.active)).Str("to", string(tab)).Msg("tab selected")
	c.active = tab
}

// Panel returns the panel for the selected tab.
func (c *Controller) Panel() Panel {
	return PanelFor(c.active)
}

// Tick replaces the live reading with a fresh sample and returns it.
// History is left untouched.
func (c *Controller) Tick() *sensor.LiveReading {
	c.live = c.sampler.Live()
	c.lastSync = c.now()
	c.ticks++
	c.logger.Debug().
		Float64("temperature", c.live.TemperatureC).
		Float64("humidity", c.live.HumidityPct).
		Int("tick", c.ticks).
		Msg("live reading updated")
	return c.live
}

// Live returns the current live reading.
func (c *Controller) Live() *sensor.LiveReading {
	return c.live
}

// History returns the seeded readings, oldest first.
func (c *Controller) History() []sensor.Reading {
	return c.history.Readings()
}

// HistoryLen returns the number of seeded readings.
func (c *Controller) HistoryLen() int {
	return c.history.Len()
}

// LastSync returns when the live reading was last refreshed.
func (c *Controller) LastSync() time.Time {
	return c.lastSync
}

// Ticks returns how many times Tick has run.
func (c *Controller) Ticks() int {
	return c.ticks
}

// Ranges returns the temperature and humidity ranges samples are drawn from.
func (c *Controller) Ranges() (temperature, humidity sensor.Range) {
	return c.sampler.Temperature(), c.sampler.Humidity()
}

// Now returns the controller's notion of the current time.
func (c *Controller) Now() time.Time {
	return c.now()
}

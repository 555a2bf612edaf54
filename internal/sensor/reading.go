// Package sensor generates simulated temperature and humidity samples.
package sensor

import (
	"fmt"
	"math"
	"time"
)

// DefaultTimeLayout renders timestamps the way a US-locale browser would.
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// Range is an inclusive interval that samples are drawn from.
type Range struct {
	Min float64 `toml:"min" yaml:"min"`
	Max float64 `toml:"max" yaml:"max"`
}

var (
	// TemperatureRange is the default temperature range in °C.
	TemperatureRange = Range{Min: 20.0, Max: 35.0}
	// HumidityRange is the default relative humidity range in percent.
	HumidityRange = Range{Min: 40.0, Max: 80.0}
)

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Sample draws a uniformly distributed value from r, rounded to one decimal.
func (r Range) Sample(src Source) float64 {
	return Round1(r.Min + src.Float64()*(r.Max-r.Min))
}

// Round1 rounds v to one fractional digit.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Reading is one sample in the history table.
type Reading struct {
	Sequence     int
	Time         time.Time
	Timestamp    string // Time rendered with the configured layout
	TemperatureC float64
	HumidityPct  float64
}

// String implements fmt.Stringer.
func (r Reading) String() string {
	return fmt.Sprintf("#%d %s %.1f°C %.1f%%", r.Sequence, r.Timestamp, r.TemperatureC, r.HumidityPct)
}

// LiveReading is the latest sample shown in the summary cards.
type LiveReading struct {
	TemperatureC float64
	HumidityPct  float64
}

// InitialLive is shown until the first tick replaces it.
var InitialLive = LiveReading{TemperatureC: 24.5, HumidityPct: 65.2}

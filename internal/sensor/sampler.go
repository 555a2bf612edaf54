package sensor

import (
	"math/rand/v2"
	"time"
)

// Source yields uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed Source. A zero seed seeds from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sampler draws readings from a Source within fixed ranges.
type Sampler struct {
	src         Source
	temperature Range
	humidity    Range
}

// NewSampler creates a Sampler. Zero ranges fall back to the defaults.
func NewSampler(src Source, temperature, humidity Range) *Sampler {
	if temperature == (Range{}) {
		temperature = TemperatureRange
	}
	if humidity == (Range{}) {
		humidity = HumidityRange
	}
	return &Sampler{src: src, temperature: temperature, humidity: humidity}
}

// Temperature returns the configured temperature range.
func (s *Sampler) Temperature() Range {
	return s.temperature
}

// Humidity returns the configured humidity range.
func (s *Sampler) Humidity() Range {
	return s.humidity
}

// Live draws a new live reading. Temperature is sampled before humidity.
func (s *Sampler) Live() *LiveReading {
	return &LiveReading{
		TemperatureC: s.temperature.Sample(s.src),
		HumidityPct:  s.humidity.Sample(s.src),
	}
}

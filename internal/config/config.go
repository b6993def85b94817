// Package config loads the playground's named defaults from YAML.
//
// A missing file yields Default(); a partial file overrides only the keys
// it sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/frameplay/internal/oscillator"
	"github.com/olivier-w/frameplay/internal/resolve"
	"github.com/olivier-w/frameplay/internal/spring"
)

// Config holds every tunable default of the playground.
type Config struct {
	MaxSafeFrames    int              `yaml:"max_safe_frames"`
	CompareMaxFrames int              `yaml:"compare_max_frames"`
	TickInterval     time.Duration    `yaml:"tick_interval"`
	Explicit         ExplicitConfig   `yaml:"explicit"`
	Oscillator       OscillatorConfig `yaml:"oscillator"`
	Spring           SpringConfig     `yaml:"spring"`
	Vectors          VectorsConfig    `yaml:"vectors"`
	Sonify           SonifyConfig     `yaml:"sonify"`
}

// ExplicitConfig seeds the explicit functions screen.
type ExplicitConfig struct {
	N        float64 `yaml:"n"`
	From     float64 `yaml:"from"`
	Function string  `yaml:"function"`
	X1       float64 `yaml:"x1"`
	Y1       float64 `yaml:"y1"`
	X2       float64 `yaml:"x2"`
	Y2       float64 `yaml:"y2"`
	Base     float64 `yaml:"base"`
	Exponent float64 `yaml:"exponent"`
}

// OscillatorConfig is both the initial oscillator and the fallback for
// invalid oscillator input.
type OscillatorConfig struct {
	Damping      float64 `yaml:"damping"`
	Stiffness    float64 `yaml:"stiffness"`
	Mass         float64 `yaml:"mass"`
	InitPosition float64 `yaml:"init_position"`
	InitSpeed    float64 `yaml:"init_speed"`
	HalfPeriods  float64 `yaml:"half_periods"`
}

// SpringConfig configures the cascaded spring simulator.
type SpringConfig struct {
	FPS    int `yaml:"fps"`
	Stages int `yaml:"stages"`
}

// VectorsConfig seeds the vectors screen.
type VectorsConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// SonifyConfig configures audition of a sampled range.
type SonifyConfig struct {
	SampleRate int           `yaml:"sample_rate"`
	CarrierHz  float64       `yaml:"carrier_hz"`
	Duration   time.Duration `yaml:"duration"`
}

// Default returns the built-in configuration.
func Default() Config {
	osc := resolve.DefaultLimits().Oscillator
	return Config{
		MaxSafeFrames:    resolve.DefaultLimits().MaxSafeFrames,
		CompareMaxFrames: 2000,
		TickInterval:     time.Second / 60,
		Explicit: ExplicitConfig{
			N:        120,
			Function: "linear",
			X1:       1,
			Y1:       0,
			X2:       0,
			Y2:       1,
			Base:     2.718281828459045,
			Exponent: 2,
		},
		Oscillator: OscillatorConfig{
			Damping:      osc.Damping,
			Stiffness:    osc.Stiffness,
			Mass:         osc.Mass,
			InitPosition: osc.InitPosition,
			InitSpeed:    osc.InitSpeed,
			HalfPeriods:  osc.HalfPeriods,
		},
		Spring:  SpringConfig{FPS: 60, Stages: spring.DefaultStages},
		Vectors: VectorsConfig{X: 100, Y: 200, A: 200, B: 100},
		Sonify: SonifyConfig{
			SampleRate: 44100,
			CarrierHz:  440,
			Duration:   2 * time.Second,
		},
	}
}

// Load reads path over Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// OscillatorParams returns the configured oscillator.
func (c Config) OscillatorParams() oscillator.Params {
	o := c.Oscillator
	return oscillator.Params{
		Damping:      o.Damping,
		Stiffness:    o.Stiffness,
		Mass:         o.Mass,
		InitPosition: o.InitPosition,
		InitSpeed:    o.InitSpeed,
		HalfPeriods:  o.HalfPeriods,
	}
}

// Limits returns the resolver limits the configuration implies.
func (c Config) Limits() resolve.Limits {
	return resolve.Limits{
		MaxSafeFrames: c.MaxSafeFrames,
		Oscillator:    c.OscillatorParams(),
	}
}

// SpringParams returns the spring parameters of the configured oscillator.
func (c Config) SpringParams() spring.Params {
	return spring.Params{
		Stiffness: c.Oscillator.Stiffness,
		Damping:   c.Oscillator.Damping,
		Mass:      c.Oscillator.Mass,
	}
}

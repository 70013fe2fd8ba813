package config

import (
	"fmt"

	"tickface/face"
	"tickface/hal"

	"github.com/kelseyhightower/envconfig"
)

const maxSide = 1024

// Config is read from TICKFACE_* environment variables. Command-line flags
// take their defaults from it.
type Config struct {
	Shape     string `envconfig:"SHAPE" default:"rect"`
	Width     int    `envconfig:"WIDTH" default:"144"`
	Height    int    `envconfig:"HEIGHT" default:"168"`
	Scale     int    `envconfig:"SCALE" default:"2"`
	Headless  bool   `envconfig:"HEADLESS" default:"false"`
	Hz        int    `envconfig:"HZ" default:"60"`
	Ticks     uint64 `envconfig:"TICKS" default:"0"`
	PeekEvery int    `envconfig:"PEEK_EVERY" default:"0"`
	Verbose   bool   `envconfig:"VERBOSE" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("tickface", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings and squares round screens.
func (c *Config) Validate() error {
	shape, ok := face.ParseShape(c.Shape)
	if !ok {
		return fmt.Errorf("config: unknown shape %q (want rect or round)", c.Shape)
	}
	if c.Width < 1 || c.Width > maxSide {
		return fmt.Errorf("config: width %d out of range 1..%d", c.Width, maxSide)
	}
	if shape == face.ShapeRound {
		c.Height = c.Width
	}
	if c.Height < 1 || c.Height > maxSide {
		return fmt.Errorf("config: height %d out of range 1..%d", c.Height, maxSide)
	}
	if c.Scale < 1 || c.Scale > 8 {
		return fmt.Errorf("config: scale %d out of range 1..8", c.Scale)
	}
	if c.Hz < 1 {
		return fmt.Errorf("config: hz must be positive, got %d", c.Hz)
	}
	if c.PeekEvery < 0 {
		return fmt.Errorf("config: peek interval must not be negative, got %d", c.PeekEvery)
	}
	return nil
}

// FaceShape returns the parsed shape; call Validate first.
func (c *Config) FaceShape() face.Shape {
	shape, _ := face.ParseShape(c.Shape)
	return shape
}

func (c *Config) Screen() hal.Screen {
	return hal.Screen{Width: c.Width, Height: c.Height, Round: c.FaceShape() == face.ShapeRound}
}
